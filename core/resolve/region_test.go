package resolve_test

import (
	"testing"

	"github.com/gordonmurray/cloud-rosetta/core/resolve"
	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
)

func TestRegionResolve(t *testing.T) {
	r := resolve.NewRegions(seededStore(t))

	tests := []struct {
		name   string
		source types.Provider
		in     string
		target types.Provider
		want   string
		wantOK bool
	}{
		{
			name:   "UK1 to aws lands on London",
			source: types.ProviderOVH,
			in:     "UK1",
			target: types.ProviderAWS,
			want:   "eu-west-2",
			wantOK: true,
		},
		{
			name:   "GRA9 to hetzner picks nearest German site",
			source: types.ProviderOVH,
			in:     "GRA9",
			target: types.ProviderHetzner,
			want:   "nbg1",
			wantOK: true,
		},
		{
			name:   "Canadian site stays in North America",
			source: types.ProviderOVH,
			in:     "BHS5",
			target: types.ProviderHetzner,
			want:   "ash",
			wantOK: true,
		},
		{
			name:   "no same-continent candidate falls back to nearest",
			source: types.ProviderOVH,
			in:     "SGP1",
			target: types.ProviderHetzner,
			want:   "hel1",
			wantOK: true,
		},
		{
			name:   "azure London maps to gcp London",
			source: types.ProviderAzure,
			in:     "uksouth",
			target: types.ProviderGCP,
			want:   "europe-west2",
			wantOK: true,
		},
		{
			name:   "unknown region misses",
			source: types.ProviderOVH,
			in:     "MARS1",
			target: types.ProviderAWS,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := r.Resolve(tt.source, tt.in, tt.target)
			if err != nil {
				t.Fatalf("Resolve returned error: %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("Resolve ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestRegionContinentBeatsDistance verifies that a same-continent region
// wins over a geographically closer one on another continent.
func TestRegionContinentBeatsDistance(t *testing.T) {
	s := store.NewMemory()
	regions := []types.Region{
		{Provider: types.ProviderOVH, Code: "src", Continent: "Europe", Latitude: 48.0, Longitude: 2.0},
		{Provider: types.ProviderAWS, Code: "near-other-continent", Continent: "Africa", Latitude: 47.0, Longitude: 2.0},
		{Provider: types.ProviderAWS, Code: "far-same-continent", Continent: "Europe", Latitude: 60.0, Longitude: 25.0},
	}
	for _, region := range regions {
		if err := s.PutRegion(region); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}

	got, ok, err := resolve.NewRegions(s).Resolve(types.ProviderOVH, "src", types.ProviderAWS)
	if err != nil || !ok {
		t.Fatalf("Resolve = %v, %v", ok, err)
	}
	if got != "far-same-continent" {
		t.Errorf("Resolve = %q, want %q", got, "far-same-continent")
	}
}

// TestRegionEmptyTarget verifies a target with no regions misses rather
// than erroring.
func TestRegionEmptyTarget(t *testing.T) {
	s := store.NewMemory()
	err := s.PutRegion(types.Region{
		Provider: types.ProviderOVH, Code: "GRA9", Continent: "Europe", Latitude: 50.9, Longitude: 2.7,
	})
	if err != nil {
		t.Fatalf("put failed: %v", err)
	}

	_, ok, err := resolve.NewRegions(s).Resolve(types.ProviderOVH, "GRA9", types.ProviderHetzner)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if ok {
		t.Error("Resolve matched against an empty target")
	}
}
