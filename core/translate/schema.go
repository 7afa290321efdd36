package translate

import "github.com/gordonmurray/cloud-rosetta/core/types"

// valueSchema describes how one provider names the compute fields the
// translator reads and writes. The source schema is resolved once at
// detection time instead of re-sniffing key names per resource; an
// unknown source falls back to probing every known field name in a
// fixed order.
type valueSchema struct {
	// instanceFields are the keys that may carry the instance identity,
	// probed in order; the first present wins
	instanceFields []string

	// locationFields are the keys that may carry the region/zone
	locationFields []string

	// imageFields are the keys that may carry the OS image
	imageFields []string

	// ownedFields are the fields specific to this provider's resource
	// schemas. They drive both the source-keyed cleanup and the
	// catch-all prune: a field owned by a non-target provider and not by
	// the target never survives into the output.
	ownedFields map[string]bool
}

func fieldSet(names ...string) map[string]bool {
	out := make(map[string]bool, len(names))
	for _, name := range names {
		out[name] = true
	}
	return out
}

var schemas = map[types.Provider]valueSchema{
	types.ProviderOVH: {
		instanceFields: []string{"flavor_name"},
		locationFields: []string{"region"},
		imageFields:    []string{"image_name"},
		ownedFields: fieldSet(
			"flavor_name", "image_name", "region", "network", "metadata",
			"power_state", "admin_pass", "personality", "vendor_options",
			"scheduler_hints", "network_mode", "config_drive",
			"availability_zone_hints", "block_device", "force_delete",
			"stop_before_destroy",
		),
	},
	types.ProviderAWS: {
		instanceFields: []string{"instance_type"},
		locationFields: []string{"availability_zone", "region"},
		// ami is write-only: an AMI id carries no portable OS identity,
		// so it is never read as a source key
		imageFields: nil,
		ownedFields: fieldSet(
			"instance_type", "ami", "availability_zone", "tags",
			"key_name", "associate_public_ip_address",
			"vpc_security_group_ids",
		),
	},
	types.ProviderHetzner: {
		instanceFields: []string{"server_type"},
		locationFields: []string{"location"},
		imageFields:    []string{"image"},
		ownedFields: fieldSet(
			"server_type", "image", "location", "ssh_keys",
			"datacenter", "firewall_ids", "placement_group_id",
		),
	},
	types.ProviderAzure: {
		instanceFields: []string{"size"},
		locationFields: []string{"location"},
		imageFields:    []string{"source_image_reference"},
		ownedFields: fieldSet(
			"size", "location", "source_image_reference",
			"resource_group_name", "admin_username", "os_disk",
			"network_interface_ids",
		),
	},
	types.ProviderGCP: {
		instanceFields: []string{"machine_type"},
		locationFields: []string{"zone", "region"},
		imageFields:    []string{"image_name"},
		ownedFields: fieldSet(
			"machine_type", "zone", "region", "image_name", "boot_disk",
			"network_interface", "labels", "project",
		),
	},
}

// genericSchema probes every known field name, in the order the
// original shape-sniffing checked them. Used when the source provider
// could not be detected.
var genericSchema = valueSchema{
	instanceFields: []string{"flavor_name", "instance_type", "server_type", "size", "machine_type"},
	locationFields: []string{"region", "location", "availability_zone", "zone"},
	imageFields:    []string{"image_name", "image"},
	ownedFields:    map[string]bool{},
}

// schemaFor resolves the value schema for a source provider
func schemaFor(provider types.Provider) valueSchema {
	if schema, ok := schemas[provider]; ok {
		return schema
	}
	return genericSchema
}

// instanceFieldFor is the field the instance identity is written into
// per target provider
var instanceFieldFor = map[types.Provider]string{
	types.ProviderAWS:     "instance_type",
	types.ProviderHetzner: "server_type",
	types.ProviderOVH:     "flavor_name",
	types.ProviderAzure:   "size",
	types.ProviderGCP:     "machine_type",
}

// locationFieldFor is the field the resolved region is written into per
// target provider. AWS is handled separately: it receives a synthesized
// availability zone, not a bare region.
var locationFieldFor = map[types.Provider]string{
	types.ProviderHetzner: "location",
	types.ProviderAzure:   "location",
	types.ProviderOVH:     "region",
	types.ProviderGCP:     "region",
}

// imageFieldFor is the field the resolved image is written into per
// target provider
var imageFieldFor = map[types.Provider]string{
	types.ProviderAWS:     "ami",
	types.ProviderHetzner: "image",
	types.ProviderOVH:     "image_name",
	types.ProviderAzure:   "source_image_reference",
	types.ProviderGCP:     "image_name",
}
