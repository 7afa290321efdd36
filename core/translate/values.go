package translate

import (
	"strings"

	"go.uber.org/zap"

	"github.com/gordonmurray/cloud-rosetta/core/types"
)

// computeLike reports whether a native resource type carries instance
// values worth translating
func computeLike(nativeType string) bool {
	return strings.Contains(nativeType, "compute") ||
		strings.Contains(nativeType, "instance") ||
		strings.Contains(nativeType, "server")
}

// translateInstanceValues builds a fresh value map for a compute
// resource. Only fields covered by a rule survive; everything else is
// dropped rather than copied, so no source-schema field leaks through.
func (t *Translator) translateInstanceValues(values map[string]interface{}) map[string]interface{} {
	translated := make(map[string]interface{})

	if field, sourceType := firstString(values, t.schema.instanceFields); field != "" {
		mapped, ok, err := t.instances.Resolve(t.source, sourceType, t.target)
		if err != nil {
			t.log.Warn("instance lookup failed", zap.String("instance_type", sourceType), zap.Error(err))
		} else if ok {
			if targetField, has := instanceFieldFor[t.target]; has {
				translated[targetField] = mapped
				t.log.Info("mapped instance type",
					zap.String("from", sourceType), zap.String("to", mapped))
			}
		} else {
			t.log.Warn("no equivalent instance type", zap.String("instance_type", sourceType))
		}
	}

	if field, sourceRegion := firstString(values, t.schema.locationFields); field != "" {
		lookup := sourceRegion
		// AWS availability zones carry a trailing zone letter; the store
		// keys regions, so strip it before lookup.
		if t.source == types.ProviderAWS && len(lookup) > 1 {
			last := lookup[len(lookup)-1]
			if last >= 'a' && last <= 'd' {
				lookup = lookup[:len(lookup)-1]
			}
		}

		mapped, ok, err := t.regions.Resolve(t.source, lookup, t.target)
		if err != nil {
			t.log.Warn("region lookup failed", zap.String("region", sourceRegion), zap.Error(err))
		} else if ok {
			if t.target == types.ProviderAWS {
				translated["availability_zone"] = mapped + "a"
			} else if targetField, has := locationFieldFor[t.target]; has {
				translated[targetField] = mapped
			}
			t.log.Info("mapped region",
				zap.String("from", sourceRegion), zap.String("to", mapped))
		} else {
			t.log.Warn("no equivalent region", zap.String("region", sourceRegion))
		}
	}

	if field, sourceImage := firstString(values, t.schema.imageFields); field != "" {
		mapped, ok, err := t.images.Resolve(t.source, sourceImage, t.target)
		if err != nil {
			t.log.Warn("image lookup failed", zap.String("image", sourceImage), zap.Error(err))
		} else if ok {
			if targetField, has := imageFieldFor[t.target]; has {
				translated[targetField] = mapped
				t.log.Info("mapped image",
					zap.String("from", sourceImage), zap.String("to", mapped))
			}
		} else {
			t.log.Warn("no equivalent image", zap.String("image", sourceImage))
		}
	}

	if name, ok := values["name"]; ok {
		if t.target == types.ProviderAWS {
			translated["tags"] = map[string]interface{}{"Name": name}
		} else {
			translated["name"] = name
		}
	}

	if keyPair, ok := values["key_pair"]; ok {
		switch t.target {
		case types.ProviderAWS:
			translated["key_name"] = keyPair
		case types.ProviderHetzner:
			translated["ssh_keys"] = []interface{}{keyPair}
		}
	}

	if userData, ok := values["user_data"]; ok {
		translated["user_data"] = userData
	}

	if network, ok := values["network"].([]interface{}); ok && len(network) > 0 {
		if t.target == types.ProviderAWS {
			translated["associate_public_ip_address"] = true
		}
	}

	if securityGroups, ok := values["security_groups"]; ok && t.target == types.ProviderAWS {
		translated["vpc_security_group_ids"] = securityGroups
	}

	return translated
}

// firstString probes keys in order and returns the first present
// string-valued field with its value
func firstString(values map[string]interface{}, keys []string) (string, string) {
	for _, key := range keys {
		if value, ok := values[key].(string); ok {
			return key, value
		}
	}
	return "", ""
}

// cleanupValues removes the source provider's schema fields from a
// value map. Keyed by source, not target; fields in protect were just
// written by the rewrite and must survive even when the source schema
// happens to use the same name (OVH and GCP both call the location
// field "region").
func (t *Translator) cleanupValues(values map[string]interface{}, protect map[string]interface{}) {
	if len(values) == 0 {
		return
	}
	for field := range t.schema.ownedFields {
		if protect != nil {
			if _, written := protect[field]; written {
				continue
			}
		}
		delete(values, field)
	}
}

// pruneValues removes any field owned by a known provider other than
// the target, unless the target owns it too. Catches leftovers the
// source-keyed cleanup cannot see, such as fields from providers with
// no blacklist of their own.
func (t *Translator) pruneValues(values map[string]interface{}) {
	if len(values) == 0 {
		return
	}
	targetOwned := schemas[t.target].ownedFields
	for field := range values {
		if targetOwned[field] {
			continue
		}
		for provider, schema := range schemas {
			if provider == t.target {
				continue
			}
			if schema.ownedFields[field] {
				delete(values, field)
				break
			}
		}
	}
}
