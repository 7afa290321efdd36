package mappings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gordonmurray/cloud-rosetta/adapters/mappings"
	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
	"github.com/gordonmurray/cloud-rosetta/internal/errors"
)

func writeOverlay(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.hcl")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeOverlay(t, `
instance "aws" "t4g.medium" {
  vcpu         = 2
  memory_gb    = 4
  family       = "burstable"
  hourly_price = 0.0336
}

region "aws" "eu-north-1" {
  name      = "Stockholm, Sweden"
  country   = "Sweden"
  continent = "Europe"
  latitude  = 59.329
  longitude = 18.068
}

resource_type "aws" "aws_db_instance" {
  category = "database"
}

image "aws" "ami-rocky-9" {
  os_family  = "rocky"
  os_version = "9"
}
`)

	s := store.NewMemory()
	if err := mappings.NewLoader().LoadFile(path, s); err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	spec, err := s.GetInstanceSpec(types.ProviderAWS, "t4g.medium")
	if err != nil || spec == nil {
		t.Fatalf("instance not loaded: %v, %v", spec, err)
	}
	if spec.VCPU != 2 || spec.MemoryGB != 4 || spec.Family != "burstable" {
		t.Errorf("instance fields wrong: %+v", spec)
	}

	region, err := s.GetRegion(types.ProviderAWS, "eu-north-1")
	if err != nil || region == nil {
		t.Fatalf("region not loaded: %v, %v", region, err)
	}
	if region.Continent != "Europe" || region.Latitude != 59.329 {
		t.Errorf("region fields wrong: %+v", region)
	}

	category, ok, err := s.GetResourceCategory("aws_db_instance")
	if err != nil || !ok || category != "database" {
		t.Errorf("resource type not loaded: %q, %v, %v", category, ok, err)
	}

	image, err := s.GetImage(types.ProviderAWS, "ami-rocky-9")
	if err != nil || image == nil {
		t.Fatalf("image not loaded: %v, %v", image, err)
	}
	if image.OSFamily != "rocky" || image.OSVersion != "9" {
		t.Errorf("image fields wrong: %+v", image)
	}
}

// TestLoadFileOverridesSeed verifies an overlay replaces seeded rows in
// place instead of appending duplicates.
func TestLoadFileOverridesSeed(t *testing.T) {
	s := store.NewMemory()
	if err := store.Seed(s); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	path := writeOverlay(t, `
instance "aws" "t3.micro" {
  vcpu      = 2
  memory_gb = 2
  family    = "general"
}
`)
	if err := mappings.NewLoader().LoadFile(path, s); err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	spec, err := s.GetInstanceSpec(types.ProviderAWS, "t3.micro")
	if err != nil || spec == nil {
		t.Fatalf("instance missing: %v, %v", spec, err)
	}
	if spec.MemoryGB != 2 || spec.Family != "general" {
		t.Errorf("override not applied: %+v", spec)
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		wantType errors.Type
	}{
		{
			name:     "invalid HCL",
			src:      `instance "aws" {`,
			wantType: errors.TypeParsing,
		},
		{
			name: "unknown provider label",
			src: `instance "digitalocean" "s-1vcpu-1gb" {
  vcpu      = 1
  memory_gb = 1
}`,
			wantType: errors.TypeParsing,
		},
		{
			name: "instance without sizes",
			src: `instance "aws" "broken" {
  family = "general"
}`,
			wantType: errors.TypeParsing,
		},
		{
			name:     "resource type without category",
			src:      `resource_type "aws" "aws_thing" {}`,
			wantType: errors.TypeParsing,
		},
		{
			name: "image without version",
			src: `image "aws" "ami-x" {
  os_family = "ubuntu"
}`,
			wantType: errors.TypeParsing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeOverlay(t, tt.src)
			err := mappings.NewLoader().LoadFile(path, store.NewMemory())
			if err == nil {
				t.Fatal("LoadFile accepted invalid overlay")
			}
			if !errors.IsType(err, tt.wantType) {
				t.Errorf("error = %v, want type %s", err, tt.wantType)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	err := mappings.NewLoader().LoadFile(filepath.Join(t.TempDir(), "nope.hcl"), store.NewMemory())
	if !errors.IsType(err, errors.TypeInput) {
		t.Errorf("error = %v, want input error", err)
	}
}
