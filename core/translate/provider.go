// Package translate rewrites Terraform plan documents from one cloud
// provider's vocabulary into another's, using the mapping store through
// the resolve package.
package translate

import (
	"strings"

	"github.com/gordonmurray/cloud-rosetta/core/types"
	"github.com/gordonmurray/cloud-rosetta/internal/config"
)

// providerPrefix maps a native resource-type prefix to its provider.
// Order matters for deterministic detection.
var providerPrefixes = []struct {
	prefix   string
	provider types.Provider
}{
	{"openstack_", types.ProviderOVH},
	{"aws_", types.ProviderAWS},
	{"hcloud_", types.ProviderHetzner},
	{"azurerm_", types.ProviderAzure},
	{"google_", types.ProviderGCP},
}

// providerConfigKeys maps configuration.provider_config keys to
// providers, checked in this order. OVH plans carry either a plain
// "openstack" block or an aliased "openstack.ovh" one.
var providerConfigKeys = []struct {
	keys     []string
	provider types.Provider
}{
	{[]string{"openstack", "openstack.ovh"}, types.ProviderOVH},
	{[]string{"aws"}, types.ProviderAWS},
	{[]string{"hcloud"}, types.ProviderHetzner},
	{[]string{"azurerm"}, types.ProviderAzure},
	{[]string{"google"}, types.ProviderGCP},
}

// DetectSource inspects the provider_config block, falling back to the
// native-type prefix of the first resource, and returns the source
// provider. Undetectable input yields ProviderUnknown; translation
// still proceeds, with every lookup missing.
func DetectSource(doc types.PlanDocument) types.Provider {
	if configuration := doc.Map("configuration"); configuration != nil {
		if providerConfig, ok := configuration["provider_config"].(map[string]interface{}); ok {
			for _, entry := range providerConfigKeys {
				for _, key := range entry.keys {
					if _, present := providerConfig[key]; present {
						return entry.provider
					}
				}
			}
		}
	}

	for _, resourceType := range documentResourceTypes(doc) {
		for _, entry := range providerPrefixes {
			if strings.HasPrefix(resourceType, entry.prefix) {
				return entry.provider
			}
		}
	}

	return types.ProviderUnknown
}

// documentResourceTypes yields the native types of every resource in
// document order: resource_changes first, then planned_values.
func documentResourceTypes(doc types.PlanDocument) []string {
	var out []string
	if changes, ok := doc["resource_changes"].([]interface{}); ok {
		for _, raw := range changes {
			if change, ok := raw.(map[string]interface{}); ok {
				if t, ok := change["type"].(string); ok {
					out = append(out, t)
				}
			}
		}
	}
	for _, resource := range plannedResources(doc) {
		if t, ok := resource["type"].(string); ok {
			out = append(out, t)
		}
	}
	return out
}

// plannedResources returns planned_values.root_module.resources entries
func plannedResources(doc types.PlanDocument) []map[string]interface{} {
	planned := doc.Map("planned_values")
	if planned == nil {
		return nil
	}
	rootModule, _ := planned["root_module"].(map[string]interface{})
	if rootModule == nil {
		return nil
	}
	rawResources, _ := rootModule["resources"].([]interface{})
	var out []map[string]interface{}
	for _, raw := range rawResources {
		if resource, ok := raw.(map[string]interface{}); ok {
			out = append(out, resource)
		}
	}
	return out
}

// registryAddresses are the Terraform registry addresses written into
// provider_name fields and provider_config blocks per target.
var registryAddresses = map[types.Provider]string{
	types.ProviderAWS:     "registry.terraform.io/hashicorp/aws",
	types.ProviderHetzner: "registry.terraform.io/hetznercloud/hcloud",
	types.ProviderOVH:     "registry.terraform.io/terraform-provider-openstack/openstack",
	types.ProviderAzure:   "registry.terraform.io/hashicorp/azurerm",
	types.ProviderGCP:     "registry.terraform.io/hashicorp/google",
}

// translateProviderName rewrites a resource's provider_name to the
// target's registry address. Names that do not look like any supported
// provider pass through untouched.
func translateProviderName(providerName string, target types.Provider) string {
	lower := strings.ToLower(providerName)
	for _, fragment := range []string{"openstack", "aws", "hcloud", "azurerm", "google"} {
		if strings.Contains(lower, fragment) {
			if address, ok := registryAddresses[target]; ok {
				return address
			}
			return providerName
		}
	}
	return providerName
}

func constant(value interface{}) map[string]interface{} {
	return map[string]interface{}{"constant_value": value}
}

// providerConfigBlock returns the static provider_config block for the
// target. This is a fixed template, never derived from the source
// configuration; region/project expressions come from local config.
func providerConfigBlock(target types.Provider) map[string]interface{} {
	cfg := config.Get()

	switch target {
	case types.ProviderAWS:
		return map[string]interface{}{
			"aws": map[string]interface{}{
				"name":               "aws",
				"full_name":          registryAddresses[types.ProviderAWS],
				"version_constraint": "~> 5.0",
				"expressions": map[string]interface{}{
					"region": constant(cfg.AWS.DefaultRegion),
				},
			},
		}
	case types.ProviderHetzner:
		return map[string]interface{}{
			"hcloud": map[string]interface{}{
				"name":               "hcloud",
				"full_name":          registryAddresses[types.ProviderHetzner],
				"version_constraint": "~> 1.42",
				"expressions":        map[string]interface{}{},
			},
		}
	case types.ProviderOVH:
		return map[string]interface{}{
			"openstack": map[string]interface{}{
				"name":               "openstack",
				"full_name":          registryAddresses[types.ProviderOVH],
				"version_constraint": "~> 1.49",
				"expressions": map[string]interface{}{
					"auth_url":    constant("https://auth.cloud.ovh.net/v3"),
					"domain_name": constant("Default"),
				},
			},
		}
	case types.ProviderAzure:
		return map[string]interface{}{
			"azurerm": map[string]interface{}{
				"name":               "azurerm",
				"full_name":          registryAddresses[types.ProviderAzure],
				"version_constraint": "~> 3.0",
				"expressions": map[string]interface{}{
					"features": constant(map[string]interface{}{}),
				},
			},
		}
	case types.ProviderGCP:
		return map[string]interface{}{
			"google": map[string]interface{}{
				"name":               "google",
				"full_name":          registryAddresses[types.ProviderGCP],
				"version_constraint": "~> 5.0",
				"expressions": map[string]interface{}{
					"project": constant(cfg.GCP.Project),
					"region":  constant(cfg.GCP.DefaultRegion),
				},
			},
		}
	}
	return nil
}
