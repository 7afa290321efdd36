package resolve_test

import (
	"testing"

	"github.com/gordonmurray/cloud-rosetta/core/resolve"
	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
)

func TestResourceTypeResolve(t *testing.T) {
	r := resolve.NewResourceTypes(seededStore(t))

	tests := []struct {
		name   string
		in     string
		target types.Provider
		want   string
		wantOK bool
	}{
		{
			name:   "aws instance to hetzner server",
			in:     "aws_instance",
			target: types.ProviderHetzner,
			want:   "hcloud_server",
			wantOK: true,
		},
		{
			name:   "openstack instance to aws",
			in:     "openstack_compute_instance_v2",
			target: types.ProviderAWS,
			want:   "aws_instance",
			wantOK: true,
		},
		{
			name:   "load balancer crosses to gcp forwarding rule",
			in:     "openstack_lb_loadbalancer_v2",
			target: types.ProviderGCP,
			want:   "google_compute_forwarding_rule",
			wantOK: true,
		},
		{
			name:   "category absent on target misses",
			in:     "aws_key_pair",
			target: types.ProviderGCP,
			wantOK: false,
		},
		{
			name:   "unmapped native type misses",
			in:     "aws_sqs_queue",
			target: types.ProviderHetzner,
			wantOK: false,
		},
		{
			name:   "same provider round-trips",
			in:     "aws_instance",
			target: types.ProviderAWS,
			want:   "aws_instance",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := r.Resolve(tt.in, tt.target)
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

// TestResourceTypeDeterministicTieBreak verifies that when a category
// holds several target types the first inserted always wins.
func TestResourceTypeDeterministicTieBreak(t *testing.T) {
	s := store.NewMemory()
	mappings := []types.ResourceTypeMapping{
		{Provider: types.ProviderAWS, Category: "loadbalancer", NativeType: "aws_lb"},
		{Provider: types.ProviderAWS, Category: "loadbalancer", NativeType: "aws_lb_listener"},
		{Provider: types.ProviderOVH, Category: "loadbalancer", NativeType: "openstack_lb_loadbalancer_v2"},
	}
	for _, mapping := range mappings {
		if err := s.PutResourceType(mapping); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}

	r := resolve.NewResourceTypes(s)
	for i := 0; i < 10; i++ {
		got, ok, err := r.Resolve("openstack_lb_loadbalancer_v2", types.ProviderAWS)
		if err != nil || !ok {
			t.Fatalf("Resolve = %v, %v", ok, err)
		}
		if got != "aws_lb" {
			t.Fatalf("Resolve = %q, want %q", got, "aws_lb")
		}
	}
}
