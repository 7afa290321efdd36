// Package types contains the shared domain types for cloud-rosetta.
package types

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Provider identifies a cloud provider
type Provider string

const (
	// ProviderOVH is OVH public cloud (OpenStack-based)
	ProviderOVH Provider = "ovh"

	// ProviderAWS is Amazon Web Services
	ProviderAWS Provider = "aws"

	// ProviderHetzner is Hetzner Cloud
	ProviderHetzner Provider = "hetzner"

	// ProviderAzure is Microsoft Azure
	ProviderAzure Provider = "azure"

	// ProviderGCP is Google Cloud Platform
	ProviderGCP Provider = "gcp"

	// ProviderUnknown is the sentinel for undetectable sources.
	// Translation proceeds; every lookup for it simply misses.
	ProviderUnknown Provider = "unknown"
)

// AllProviders lists every supported provider in stable order
var AllProviders = []Provider{
	ProviderOVH,
	ProviderAWS,
	ProviderHetzner,
	ProviderAzure,
	ProviderGCP,
}

// ParseProvider validates a provider selector from the CLI
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllProviders {
		if p == known {
			return p, nil
		}
	}
	return ProviderUnknown, fmt.Errorf("unknown provider %q (expected one of: ovh, aws, hetzner, azure, gcp)", s)
}

// Known reports whether the provider is a supported provider
func (p Provider) Known() bool {
	for _, known := range AllProviders {
		if p == known {
			return true
		}
	}
	return false
}

// String returns the provider identifier
func (p Provider) String() string {
	return string(p)
}

// InstanceSpec describes one instance type of one provider.
// (Provider, InstanceType) is unique across the store.
type InstanceSpec struct {
	Provider     Provider `json:"provider"`
	InstanceType string   `json:"instance_type"`

	// VCPU is the vCPU count (positive)
	VCPU int `json:"vcpu"`

	// MemoryGB is the RAM in GiB (positive)
	MemoryGB float64 `json:"memory_gb"`

	// Family is the workload class (general, compute, memory, burstable, gpu, storage)
	Family string `json:"family"`

	Generation         string `json:"generation,omitempty"`
	NetworkPerformance string `json:"network_performance,omitempty"`
	StorageType        string `json:"storage_type,omitempty"`
	StorageGB          int    `json:"storage_gb,omitempty"`
	GPUCount           int    `json:"gpu_count,omitempty"`
	GPUType            string `json:"gpu_type,omitempty"`

	// HourlyPrice is advisory only; never used for matching
	HourlyPrice decimal.Decimal `json:"hourly_price,omitempty"`
}

// Region describes one region of one provider.
// Coordinates are plain decimal degrees; distance math is planar.
type Region struct {
	Provider  Provider `json:"provider"`
	Code      string   `json:"region_code"`
	Name      string   `json:"region_name"`
	Country   string   `json:"country,omitempty"`
	Continent string   `json:"continent,omitempty"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
}

// ResourceTypeMapping links a provider's native Terraform resource type
// to a provider-neutral category. Several native types may share a
// (provider, category) pair; Seq is the store's insertion sequence and
// the documented tie-break order.
type ResourceTypeMapping struct {
	Provider   Provider `json:"provider"`
	Category   string   `json:"resource_category"`
	NativeType string   `json:"native_type"`
	Seq        int64    `json:"-"`
}

// ImageMapping describes one OS image of one provider.
// (OSFamily, OSVersion) is the cross-provider equivalence key.
type ImageMapping struct {
	Provider     Provider `json:"provider"`
	ImageName    string   `json:"image_name"`
	OSFamily     string   `json:"os_family"`
	OSVersion    string   `json:"os_version"`
	Architecture string   `json:"architecture,omitempty"`
}
