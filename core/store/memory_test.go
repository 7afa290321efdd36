package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
)

func TestMemoryInstanceSpecs(t *testing.T) {
	s := store.NewMemory()

	spec := types.InstanceSpec{
		Provider:     types.ProviderAWS,
		InstanceType: "t3.micro",
		VCPU:         2,
		MemoryGB:     1,
		Family:       "burstable",
	}
	require.NoError(t, s.PutInstanceSpec(spec))

	got, err := s.GetInstanceSpec(types.ProviderAWS, "t3.micro")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 2, got.VCPU)
	assert.Equal(t, "burstable", got.Family)

	// A miss is nil, not an error
	missing, err := s.GetInstanceSpec(types.ProviderAWS, "t3.mega")
	require.NoError(t, err)
	assert.Nil(t, missing)

	missing, err = s.GetInstanceSpec(types.ProviderHetzner, "t3.micro")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryPutReplacesInPlace(t *testing.T) {
	s := store.NewMemory()

	require.NoError(t, s.PutInstanceSpec(types.InstanceSpec{
		Provider: types.ProviderAWS, InstanceType: "a", VCPU: 1, MemoryGB: 1,
	}))
	require.NoError(t, s.PutInstanceSpec(types.InstanceSpec{
		Provider: types.ProviderAWS, InstanceType: "b", VCPU: 2, MemoryGB: 2,
	}))
	// Replace the first row; it must keep its position
	require.NoError(t, s.PutInstanceSpec(types.InstanceSpec{
		Provider: types.ProviderAWS, InstanceType: "a", VCPU: 4, MemoryGB: 4,
	}))

	specs, err := s.ListInstanceSpecs(types.ProviderAWS)
	require.NoError(t, err)
	require.Len(t, specs, 2)
	assert.Equal(t, "a", specs[0].InstanceType)
	assert.Equal(t, 4, specs[0].VCPU)
	assert.Equal(t, "b", specs[1].InstanceType)
}

func TestMemoryResourceTypeOrder(t *testing.T) {
	s := store.NewMemory()

	mappings := []types.ResourceTypeMapping{
		{Provider: types.ProviderAWS, Category: "loadbalancer", NativeType: "aws_lb"},
		{Provider: types.ProviderAWS, Category: "loadbalancer", NativeType: "aws_lb_listener"},
		{Provider: types.ProviderAWS, Category: "compute", NativeType: "aws_instance"},
	}
	for _, m := range mappings {
		require.NoError(t, s.PutResourceType(m))
	}

	rows, err := s.ListResourceTypes(types.ProviderAWS, "loadbalancer")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "aws_lb", rows[0].NativeType)
	assert.Equal(t, "aws_lb_listener", rows[1].NativeType)
	assert.Less(t, rows[0].Seq, rows[1].Seq)

	category, ok, err := s.GetResourceCategory("aws_instance")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "compute", category)

	_, ok, err = s.GetResourceCategory("aws_sqs_queue")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryImages(t *testing.T) {
	s := store.NewMemory()

	require.NoError(t, s.PutImage(types.ImageMapping{
		Provider: types.ProviderAWS, ImageName: "ami-1", OSFamily: "ubuntu", OSVersion: "22.04",
	}))
	require.NoError(t, s.PutImage(types.ImageMapping{
		Provider: types.ProviderAWS, ImageName: "ami-2", OSFamily: "ubuntu", OSVersion: "22.04",
	}))

	// First matching row wins
	got, err := s.FindImageEquivalent(types.ProviderAWS, "ubuntu", "22.04")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ami-1", got.ImageName)

	missing, err := s.FindImageEquivalent(types.ProviderAWS, "ubuntu", "20.04")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryProviders(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, store.Seed(s))

	providers, err := s.Providers()
	require.NoError(t, err)
	assert.Equal(t, types.AllProviders, providers)
}

func TestSeedCoverage(t *testing.T) {
	s := store.NewMemory()
	require.NoError(t, store.Seed(s))

	for _, provider := range types.AllProviders {
		instances, err := s.ListInstanceSpecs(provider)
		require.NoError(t, err)
		assert.NotEmpty(t, instances, "no instances for %s", provider)

		regions, err := s.ListRegions(provider)
		require.NoError(t, err)
		assert.NotEmpty(t, regions, "no regions for %s", provider)

		resourceTypes, err := s.ListAllResourceTypes(provider)
		require.NoError(t, err)
		assert.NotEmpty(t, resourceTypes, "no resource types for %s", provider)

		images, err := s.ListImages(provider)
		require.NoError(t, err)
		assert.NotEmpty(t, images, "no images for %s", provider)
	}

	// Every provider carries a compute mapping; it is the anchor of
	// cross-provider translation.
	for _, provider := range types.AllProviders {
		rows, err := s.ListResourceTypes(provider, "compute")
		require.NoError(t, err)
		require.NotEmpty(t, rows, "no compute mapping for %s", provider)
	}

	// Seeding twice must not duplicate rows
	before, err := s.ListInstanceSpecs(types.ProviderAWS)
	require.NoError(t, err)
	require.NoError(t, store.Seed(s))
	after, err := s.ListInstanceSpecs(types.ProviderAWS)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}
