package types_test

import (
	"testing"

	"github.com/gordonmurray/cloud-rosetta/core/types"
)

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in      string
		want    types.Provider
		wantErr bool
	}{
		{"aws", types.ProviderAWS, false},
		{"OVH", types.ProviderOVH, false},
		{"  hetzner ", types.ProviderHetzner, false},
		{"Azure", types.ProviderAzure, false},
		{"gcp", types.ProviderGCP, false},
		{"digitalocean", types.ProviderUnknown, true},
		{"", types.ProviderUnknown, true},
		{"unknown", types.ProviderUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := types.ParseProvider(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProvider(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseProvider(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestProviderKnown(t *testing.T) {
	for _, p := range types.AllProviders {
		if !p.Known() {
			t.Errorf("%q should be known", p)
		}
	}
	if types.ProviderUnknown.Known() {
		t.Error("unknown sentinel must not be known")
	}
}

func TestPlanDocumentDeepCopy(t *testing.T) {
	doc := types.PlanDocument{
		"planned_values": map[string]interface{}{
			"root_module": map[string]interface{}{
				"resources": []interface{}{
					map[string]interface{}{"type": "aws_instance"},
				},
			},
		},
	}

	copied, err := doc.DeepCopy()
	if err != nil {
		t.Fatalf("DeepCopy returned error: %v", err)
	}

	// Mutating the copy must not touch the original
	planned := copied.Map("planned_values")
	root, _ := planned["root_module"].(map[string]interface{})
	resources, _ := root["resources"].([]interface{})
	resource, _ := resources[0].(map[string]interface{})
	resource["type"] = "hcloud_server"

	origPlanned := doc.Map("planned_values")
	origRoot, _ := origPlanned["root_module"].(map[string]interface{})
	origResources, _ := origRoot["resources"].([]interface{})
	origResource, _ := origResources[0].(map[string]interface{})
	if origResource["type"] != "aws_instance" {
		t.Errorf("original mutated: %v", origResource["type"])
	}
}

func TestPlanDocumentMap(t *testing.T) {
	doc := types.PlanDocument{
		"configuration": map[string]interface{}{"x": 1},
		"not_a_map":     "text",
	}

	if doc.Map("configuration") == nil {
		t.Error("Map returned nil for a present map")
	}
	if doc.Map("not_a_map") != nil {
		t.Error("Map returned non-nil for a non-map value")
	}
	if doc.Map("absent") != nil {
		t.Error("Map returned non-nil for an absent key")
	}
}
