package store

import (
	"github.com/shopspring/decimal"

	"github.com/gordonmurray/cloud-rosetta/core/types"
)

// Seed populates a store with the built-in reference dataset: instance
// specs, regions, resource-type categories and OS images for OVH, AWS,
// Hetzner, Azure and GCP. Prices are advisory and never drive matching.
func Seed(w Writer) error {
	for _, spec := range seedInstances {
		if err := w.PutInstanceSpec(spec); err != nil {
			return err
		}
	}
	for _, region := range seedRegions {
		if err := w.PutRegion(region); err != nil {
			return err
		}
	}
	for _, mapping := range seedResourceTypes {
		if err := w.PutResourceType(mapping); err != nil {
			return err
		}
	}
	for _, image := range seedImages {
		if err := w.PutImage(image); err != nil {
			return err
		}
	}
	return nil
}

func inst(provider types.Provider, name string, vcpu int, memGB float64, family, netPerf, storageType string, storageGB int, price float64) types.InstanceSpec {
	return types.InstanceSpec{
		Provider:           provider,
		InstanceType:       name,
		VCPU:               vcpu,
		MemoryGB:           memGB,
		Family:             family,
		Generation:         "current",
		NetworkPerformance: netPerf,
		StorageType:        storageType,
		StorageGB:          storageGB,
		HourlyPrice:        decimal.NewFromFloat(price),
	}
}

var seedInstances = []types.InstanceSpec{
	// OVH d2 series (flex/development)
	inst(types.ProviderOVH, "d2-2", 1, 2, "general", "", "ssd", 20, 0.0084),
	inst(types.ProviderOVH, "d2-4", 2, 4, "general", "", "ssd", 40, 0.0168),
	inst(types.ProviderOVH, "d2-8", 4, 8, "general", "", "ssd", 80, 0.0337),
	// OVH b2 series (balanced)
	inst(types.ProviderOVH, "b2-7", 2, 7, "general", "moderate", "ssd", 50, 0.0278),
	inst(types.ProviderOVH, "b2-15", 4, 15, "general", "high", "ssd", 100, 0.0556),
	inst(types.ProviderOVH, "b2-30", 8, 30, "general", "high", "ssd", 200, 0.1111),
	inst(types.ProviderOVH, "b2-60", 16, 60, "general", "high", "ssd", 400, 0.2222),
	inst(types.ProviderOVH, "b2-120", 32, 120, "general", "very-high", "ssd", 400, 0.4444),
	// OVH c2 series (compute optimized)
	inst(types.ProviderOVH, "c2-7", 2, 7, "compute", "moderate", "ssd", 50, 0.0417),
	inst(types.ProviderOVH, "c2-15", 4, 15, "compute", "high", "ssd", 100, 0.0833),
	inst(types.ProviderOVH, "c2-30", 8, 30, "compute", "high", "ssd", 200, 0.1667),
	inst(types.ProviderOVH, "c2-60", 16, 60, "compute", "very-high", "ssd", 400, 0.3333),
	// OVH r2 series (memory optimized)
	inst(types.ProviderOVH, "r2-15", 2, 15, "memory", "moderate", "ssd", 50, 0.0556),
	inst(types.ProviderOVH, "r2-30", 4, 30, "memory", "high", "ssd", 100, 0.1111),
	inst(types.ProviderOVH, "r2-60", 8, 60, "memory", "high", "ssd", 200, 0.2222),
	inst(types.ProviderOVH, "r2-120", 16, 120, "memory", "very-high", "ssd", 400, 0.4444),

	// AWS t3 series (burstable)
	inst(types.ProviderAWS, "t3.nano", 2, 0.5, "burstable", "low", "ebs", 0, 0.0052),
	inst(types.ProviderAWS, "t3.micro", 2, 1, "burstable", "low", "ebs", 0, 0.0104),
	inst(types.ProviderAWS, "t3.small", 2, 2, "burstable", "low", "ebs", 0, 0.0208),
	inst(types.ProviderAWS, "t3.medium", 2, 4, "burstable", "moderate", "ebs", 0, 0.0416),
	inst(types.ProviderAWS, "t3.large", 2, 8, "burstable", "moderate", "ebs", 0, 0.0832),
	// AWS m5 series (general purpose)
	inst(types.ProviderAWS, "m5.large", 2, 8, "general", "moderate", "ebs", 0, 0.096),
	inst(types.ProviderAWS, "m5.xlarge", 4, 16, "general", "high", "ebs", 0, 0.192),
	inst(types.ProviderAWS, "m5.2xlarge", 8, 32, "general", "high", "ebs", 0, 0.384),
	inst(types.ProviderAWS, "m5.4xlarge", 16, 64, "general", "very-high", "ebs", 0, 0.768),
	inst(types.ProviderAWS, "m5.8xlarge", 32, 128, "general", "10gbps", "ebs", 0, 1.536),
	// AWS c5 series (compute optimized)
	inst(types.ProviderAWS, "c5.large", 2, 4, "compute", "moderate", "ebs", 0, 0.085),
	inst(types.ProviderAWS, "c5.xlarge", 4, 8, "compute", "high", "ebs", 0, 0.17),
	inst(types.ProviderAWS, "c5.2xlarge", 8, 16, "compute", "high", "ebs", 0, 0.34),
	inst(types.ProviderAWS, "c5.4xlarge", 16, 32, "compute", "very-high", "ebs", 0, 0.68),
	// AWS r5 series (memory optimized)
	inst(types.ProviderAWS, "r5.large", 2, 16, "memory", "moderate", "ebs", 0, 0.126),
	inst(types.ProviderAWS, "r5.xlarge", 4, 32, "memory", "high", "ebs", 0, 0.252),
	inst(types.ProviderAWS, "r5.2xlarge", 8, 64, "memory", "high", "ebs", 0, 0.504),
	inst(types.ProviderAWS, "r5.4xlarge", 16, 128, "memory", "very-high", "ebs", 0, 1.008),

	// Hetzner cx series (shared general purpose)
	inst(types.ProviderHetzner, "cx11", 1, 2, "general", "20TB", "ssd", 20, 0.0052),
	inst(types.ProviderHetzner, "cx21", 2, 4, "general", "20TB", "ssd", 40, 0.0089),
	inst(types.ProviderHetzner, "cx31", 2, 8, "general", "20TB", "ssd", 80, 0.0137),
	inst(types.ProviderHetzner, "cx41", 4, 16, "general", "20TB", "ssd", 160, 0.0274),
	inst(types.ProviderHetzner, "cx51", 8, 32, "general", "20TB", "ssd", 240, 0.0548),
	// Hetzner cpx series (AMD)
	inst(types.ProviderHetzner, "cpx11", 2, 2, "general", "20TB", "ssd", 40, 0.0068),
	inst(types.ProviderHetzner, "cpx21", 3, 4, "general", "20TB", "ssd", 80, 0.0116),
	inst(types.ProviderHetzner, "cpx31", 4, 8, "general", "20TB", "ssd", 160, 0.0219),
	inst(types.ProviderHetzner, "cpx41", 8, 16, "general", "20TB", "ssd", 240, 0.0438),

	// Azure B-series (burstable)
	inst(types.ProviderAzure, "Standard_B1ms", 1, 2, "burstable", "moderate", "ssd", 4, 0.0104),
	inst(types.ProviderAzure, "Standard_B2s", 2, 4, "burstable", "moderate", "ssd", 8, 0.0208),
	inst(types.ProviderAzure, "Standard_B2ms", 2, 8, "burstable", "moderate", "ssd", 16, 0.0416),
	inst(types.ProviderAzure, "Standard_B4ms", 4, 16, "burstable", "moderate", "ssd", 32, 0.0832),
	// Azure D-series v4 (general purpose)
	inst(types.ProviderAzure, "Standard_D2s_v4", 2, 8, "general", "moderate", "ssd", 75, 0.096),
	inst(types.ProviderAzure, "Standard_D4s_v4", 4, 16, "general", "high", "ssd", 150, 0.192),
	inst(types.ProviderAzure, "Standard_D8s_v4", 8, 32, "general", "high", "ssd", 300, 0.384),
	// Azure F-series (compute optimized)
	inst(types.ProviderAzure, "Standard_F2s_v2", 2, 4, "compute", "moderate", "ssd", 16, 0.085),
	inst(types.ProviderAzure, "Standard_F4s_v2", 4, 8, "compute", "high", "ssd", 32, 0.169),
	inst(types.ProviderAzure, "Standard_F8s_v2", 8, 16, "compute", "high", "ssd", 64, 0.338),
	// Azure E-series v4 (memory optimized)
	inst(types.ProviderAzure, "Standard_E2s_v4", 2, 16, "memory", "moderate", "ssd", 32, 0.126),
	inst(types.ProviderAzure, "Standard_E4s_v4", 4, 32, "memory", "high", "ssd", 64, 0.252),
	inst(types.ProviderAzure, "Standard_E8s_v4", 8, 64, "memory", "high", "ssd", 128, 0.504),

	// GCP e2 series (cost-optimized)
	inst(types.ProviderGCP, "e2-micro", 2, 1, "burstable", "low", "pd-standard", 0, 0.00628),
	inst(types.ProviderGCP, "e2-small", 2, 2, "burstable", "low", "pd-standard", 0, 0.01256),
	inst(types.ProviderGCP, "e2-medium", 2, 4, "burstable", "moderate", "pd-standard", 0, 0.02512),
	// GCP n2 series (general purpose)
	inst(types.ProviderGCP, "n2-standard-2", 2, 8, "general", "moderate", "pd-standard", 0, 0.0971),
	inst(types.ProviderGCP, "n2-standard-4", 4, 16, "general", "high", "pd-standard", 0, 0.1943),
	inst(types.ProviderGCP, "n2-standard-8", 8, 32, "general", "high", "pd-standard", 0, 0.3886),
	// GCP c2 series (compute optimized)
	inst(types.ProviderGCP, "c2-standard-4", 4, 16, "compute", "high", "pd-standard", 0, 0.2088),
	inst(types.ProviderGCP, "c2-standard-8", 8, 32, "compute", "high", "pd-standard", 0, 0.4176),
	// GCP m1/n2-highmem (memory optimized)
	inst(types.ProviderGCP, "n2-highmem-2", 2, 16, "memory", "moderate", "pd-standard", 0, 0.131),
	inst(types.ProviderGCP, "n2-highmem-4", 4, 32, "memory", "high", "pd-standard", 0, 0.262),
}

func region(provider types.Provider, code, name, country, continent string, lat, lon float64) types.Region {
	return types.Region{
		Provider:  provider,
		Code:      code,
		Name:      name,
		Country:   country,
		Continent: continent,
		Latitude:  lat,
		Longitude: lon,
	}
}

var seedRegions = []types.Region{
	region(types.ProviderOVH, "GRA9", "Gravelines, France", "France", "Europe", 50.987, 2.762),
	region(types.ProviderOVH, "GRA11", "Gravelines, France", "France", "Europe", 50.987, 2.762),
	region(types.ProviderOVH, "SBG5", "Strasbourg, France", "France", "Europe", 48.573, 7.752),
	region(types.ProviderOVH, "RBX", "Roubaix, France", "France", "Europe", 50.694, 3.174),
	region(types.ProviderOVH, "DE1", "Frankfurt, Germany", "Germany", "Europe", 50.110, 8.682),
	region(types.ProviderOVH, "UK1", "London, UK", "UK", "Europe", 51.507, -0.127),
	region(types.ProviderOVH, "WAW1", "Warsaw, Poland", "Poland", "Europe", 52.229, 21.012),
	region(types.ProviderOVH, "BHS5", "Beauharnois, Canada", "Canada", "North America", 45.315, -73.874),
	region(types.ProviderOVH, "SGP1", "Singapore", "Singapore", "Asia", 1.352, 103.819),
	region(types.ProviderOVH, "SYD1", "Sydney, Australia", "Australia", "Oceania", -33.868, 151.209),

	region(types.ProviderAWS, "us-east-1", "N. Virginia, USA", "USA", "North America", 38.747, -77.517),
	region(types.ProviderAWS, "us-west-2", "Oregon, USA", "USA", "North America", 45.523, -122.676),
	region(types.ProviderAWS, "eu-west-1", "Ireland", "Ireland", "Europe", 53.349, -6.260),
	region(types.ProviderAWS, "eu-west-2", "London, UK", "UK", "Europe", 51.507, -0.127),
	region(types.ProviderAWS, "eu-west-3", "Paris, France", "France", "Europe", 48.856, 2.352),
	region(types.ProviderAWS, "eu-central-1", "Frankfurt, Germany", "Germany", "Europe", 50.110, 8.682),
	region(types.ProviderAWS, "ap-southeast-1", "Singapore", "Singapore", "Asia", 1.352, 103.819),
	region(types.ProviderAWS, "ap-southeast-2", "Sydney, Australia", "Australia", "Oceania", -33.868, 151.209),
	region(types.ProviderAWS, "ca-central-1", "Montreal, Canada", "Canada", "North America", 45.501, -73.567),

	region(types.ProviderHetzner, "nbg1", "Nuremberg, Germany", "Germany", "Europe", 49.452, 11.077),
	region(types.ProviderHetzner, "fsn1", "Falkenstein, Germany", "Germany", "Europe", 50.478, 12.337),
	region(types.ProviderHetzner, "hel1", "Helsinki, Finland", "Finland", "Europe", 60.169, 24.938),
	region(types.ProviderHetzner, "ash", "Ashburn, USA", "USA", "North America", 39.043, -77.487),

	region(types.ProviderAzure, "eastus", "Virginia, USA", "USA", "North America", 37.371, -79.817),
	region(types.ProviderAzure, "westus2", "Washington, USA", "USA", "North America", 47.233, -119.852),
	region(types.ProviderAzure, "northeurope", "Ireland", "Ireland", "Europe", 53.349, -6.260),
	region(types.ProviderAzure, "westeurope", "Netherlands", "Netherlands", "Europe", 52.367, 4.900),
	region(types.ProviderAzure, "uksouth", "London, UK", "UK", "Europe", 51.507, -0.127),
	region(types.ProviderAzure, "southeastasia", "Singapore", "Singapore", "Asia", 1.352, 103.819),

	region(types.ProviderGCP, "us-central1", "Iowa, USA", "USA", "North America", 41.262, -95.861),
	region(types.ProviderGCP, "us-east1", "South Carolina, USA", "USA", "North America", 33.196, -79.976),
	region(types.ProviderGCP, "europe-west1", "Belgium", "Belgium", "Europe", 50.449, 3.819),
	region(types.ProviderGCP, "europe-west2", "London, UK", "UK", "Europe", 51.507, -0.127),
	region(types.ProviderGCP, "europe-west3", "Frankfurt, Germany", "Germany", "Europe", 50.110, 8.682),
	region(types.ProviderGCP, "asia-southeast1", "Singapore", "Singapore", "Asia", 1.352, 103.819),
}

func rt(provider types.Provider, category, nativeType string) types.ResourceTypeMapping {
	return types.ResourceTypeMapping{Provider: provider, Category: category, NativeType: nativeType}
}

var seedResourceTypes = []types.ResourceTypeMapping{
	rt(types.ProviderOVH, "compute", "openstack_compute_instance_v2"),
	rt(types.ProviderOVH, "keypair", "openstack_compute_keypair_v2"),
	rt(types.ProviderOVH, "volume", "openstack_blockstorage_volume_v3"),
	rt(types.ProviderOVH, "loadbalancer", "openstack_lb_loadbalancer_v2"),
	rt(types.ProviderOVH, "floating_ip", "openstack_networking_floatingip_v2"),
	rt(types.ProviderOVH, "network", "openstack_networking_network_v2"),
	rt(types.ProviderOVH, "subnet", "openstack_networking_subnet_v2"),
	rt(types.ProviderOVH, "security_group", "openstack_networking_secgroup_v2"),
	rt(types.ProviderOVH, "object_storage", "openstack_objectstorage_container_v1"),

	rt(types.ProviderAWS, "compute", "aws_instance"),
	rt(types.ProviderAWS, "keypair", "aws_key_pair"),
	rt(types.ProviderAWS, "volume", "aws_ebs_volume"),
	rt(types.ProviderAWS, "loadbalancer", "aws_lb"),
	rt(types.ProviderAWS, "floating_ip", "aws_eip"),
	rt(types.ProviderAWS, "network", "aws_vpc"),
	rt(types.ProviderAWS, "subnet", "aws_subnet"),
	rt(types.ProviderAWS, "security_group", "aws_security_group"),
	rt(types.ProviderAWS, "object_storage", "aws_s3_bucket"),

	rt(types.ProviderHetzner, "compute", "hcloud_server"),
	rt(types.ProviderHetzner, "keypair", "hcloud_ssh_key"),
	rt(types.ProviderHetzner, "volume", "hcloud_volume"),
	rt(types.ProviderHetzner, "loadbalancer", "hcloud_load_balancer"),
	rt(types.ProviderHetzner, "floating_ip", "hcloud_floating_ip"),
	rt(types.ProviderHetzner, "network", "hcloud_network"),
	rt(types.ProviderHetzner, "subnet", "hcloud_network_subnet"),

	rt(types.ProviderAzure, "compute", "azurerm_linux_virtual_machine"),
	rt(types.ProviderAzure, "keypair", "azurerm_ssh_public_key"),
	rt(types.ProviderAzure, "volume", "azurerm_managed_disk"),
	rt(types.ProviderAzure, "loadbalancer", "azurerm_lb"),
	rt(types.ProviderAzure, "floating_ip", "azurerm_public_ip"),
	rt(types.ProviderAzure, "network", "azurerm_virtual_network"),
	rt(types.ProviderAzure, "subnet", "azurerm_subnet"),
	rt(types.ProviderAzure, "security_group", "azurerm_network_security_group"),
	rt(types.ProviderAzure, "object_storage", "azurerm_storage_container"),

	rt(types.ProviderGCP, "compute", "google_compute_instance"),
	rt(types.ProviderGCP, "volume", "google_compute_disk"),
	rt(types.ProviderGCP, "loadbalancer", "google_compute_forwarding_rule"),
	rt(types.ProviderGCP, "floating_ip", "google_compute_address"),
	rt(types.ProviderGCP, "network", "google_compute_network"),
	rt(types.ProviderGCP, "subnet", "google_compute_subnetwork"),
	rt(types.ProviderGCP, "security_group", "google_compute_firewall"),
	rt(types.ProviderGCP, "object_storage", "google_storage_bucket"),
}

func img(provider types.Provider, name, family, version string) types.ImageMapping {
	return types.ImageMapping{
		Provider:     provider,
		ImageName:    name,
		OSFamily:     family,
		OSVersion:    version,
		Architecture: "x86_64",
	}
}

var seedImages = []types.ImageMapping{
	img(types.ProviderOVH, "Ubuntu 24.04", "ubuntu", "24.04"),
	img(types.ProviderOVH, "Ubuntu 22.04", "ubuntu", "22.04"),
	img(types.ProviderOVH, "Ubuntu 20.04", "ubuntu", "20.04"),
	img(types.ProviderOVH, "Debian 12", "debian", "12"),
	img(types.ProviderOVH, "Debian 11", "debian", "11"),
	img(types.ProviderOVH, "CentOS 8", "centos", "8"),
	img(types.ProviderOVH, "Rocky Linux 8", "rocky", "8"),
	img(types.ProviderOVH, "AlmaLinux 8", "almalinux", "8"),

	img(types.ProviderAWS, "ami-ubuntu-24.04", "ubuntu", "24.04"),
	img(types.ProviderAWS, "ami-ubuntu-22.04", "ubuntu", "22.04"),
	img(types.ProviderAWS, "ami-ubuntu-20.04", "ubuntu", "20.04"),
	img(types.ProviderAWS, "ami-debian-12", "debian", "12"),
	img(types.ProviderAWS, "ami-debian-11", "debian", "11"),
	img(types.ProviderAWS, "ami-centos-8", "centos", "8"),

	img(types.ProviderHetzner, "ubuntu-24.04", "ubuntu", "24.04"),
	img(types.ProviderHetzner, "ubuntu-22.04", "ubuntu", "22.04"),
	img(types.ProviderHetzner, "ubuntu-20.04", "ubuntu", "20.04"),
	img(types.ProviderHetzner, "debian-12", "debian", "12"),
	img(types.ProviderHetzner, "debian-11", "debian", "11"),
	img(types.ProviderHetzner, "centos-8", "centos", "8"),
	img(types.ProviderHetzner, "rocky-8", "rocky", "8"),
	img(types.ProviderHetzner, "almalinux-8", "almalinux", "8"),

	img(types.ProviderAzure, "Canonical:ubuntu-24_04-lts:server", "ubuntu", "24.04"),
	img(types.ProviderAzure, "Canonical:0001-com-ubuntu-server-jammy:22_04-lts", "ubuntu", "22.04"),
	img(types.ProviderAzure, "Debian:debian-12:12", "debian", "12"),

	img(types.ProviderGCP, "ubuntu-os-cloud/ubuntu-2404-lts", "ubuntu", "24.04"),
	img(types.ProviderGCP, "ubuntu-os-cloud/ubuntu-2204-lts", "ubuntu", "22.04"),
	img(types.ProviderGCP, "debian-cloud/debian-12", "debian", "12"),
}
