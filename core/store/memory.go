package store

import (
	"sync"

	"github.com/gordonmurray/cloud-rosetta/core/types"
)

// Memory is an in-memory store backend. Rows are kept in slices so
// insertion order survives, which is what gives List* its stable order.
// Reads are safe to share across the translation path; writes happen
// only during seeding and overlay loading, before translation starts.
type Memory struct {
	mu            sync.RWMutex
	instances     []types.InstanceSpec
	regions       []types.Region
	resourceTypes []types.ResourceTypeMapping
	images        []types.ImageMapping
	nextSeq       int64
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{nextSeq: 1}
}

// PutInstanceSpec inserts or replaces an instance spec
func (m *Memory) PutInstanceSpec(spec types.InstanceSpec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.instances {
		if existing.Provider == spec.Provider && existing.InstanceType == spec.InstanceType {
			m.instances[i] = spec
			return nil
		}
	}
	m.instances = append(m.instances, spec)
	return nil
}

// PutRegion inserts or replaces a region
func (m *Memory) PutRegion(region types.Region) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.regions {
		if existing.Provider == region.Provider && existing.Code == region.Code {
			m.regions[i] = region
			return nil
		}
	}
	m.regions = append(m.regions, region)
	return nil
}

// PutResourceType inserts or replaces a resource-type mapping
func (m *Memory) PutResourceType(mapping types.ResourceTypeMapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.resourceTypes {
		if existing.Provider == mapping.Provider && existing.NativeType == mapping.NativeType {
			mapping.Seq = existing.Seq
			m.resourceTypes[i] = mapping
			return nil
		}
	}
	mapping.Seq = m.nextSeq
	m.nextSeq++
	m.resourceTypes = append(m.resourceTypes, mapping)
	return nil
}

// PutImage inserts or replaces an image
func (m *Memory) PutImage(image types.ImageMapping) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, existing := range m.images {
		if existing.Provider == image.Provider && existing.ImageName == image.ImageName {
			m.images[i] = image
			return nil
		}
	}
	m.images = append(m.images, image)
	return nil
}

// GetInstanceSpec returns the spec for (provider, instanceType), or nil
func (m *Memory) GetInstanceSpec(provider types.Provider, instanceType string) (*types.InstanceSpec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, spec := range m.instances {
		if spec.Provider == provider && spec.InstanceType == instanceType {
			out := spec
			return &out, nil
		}
	}
	return nil, nil
}

// ListInstanceSpecs returns every instance spec for a provider
func (m *Memory) ListInstanceSpecs(provider types.Provider) ([]types.InstanceSpec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []types.InstanceSpec
	for _, spec := range m.instances {
		if spec.Provider == provider {
			out = append(out, spec)
		}
	}
	return out, nil
}

// GetRegion returns the region for (provider, code), or nil
func (m *Memory) GetRegion(provider types.Provider, code string) (*types.Region, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, region := range m.regions {
		if region.Provider == provider && region.Code == code {
			out := region
			return &out, nil
		}
	}
	return nil, nil
}

// ListRegions returns every region for a provider
func (m *Memory) ListRegions(provider types.Provider) ([]types.Region, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []types.Region
	for _, region := range m.regions {
		if region.Provider == provider {
			out = append(out, region)
		}
	}
	return out, nil
}

// GetResourceCategory returns the category of a native type, any provider
func (m *Memory) GetResourceCategory(nativeType string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, mapping := range m.resourceTypes {
		if mapping.NativeType == nativeType {
			return mapping.Category, true, nil
		}
	}
	return "", false, nil
}

// ListResourceTypes returns the mappings for (provider, category)
func (m *Memory) ListResourceTypes(provider types.Provider, category string) ([]types.ResourceTypeMapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []types.ResourceTypeMapping
	for _, mapping := range m.resourceTypes {
		if mapping.Provider == provider && mapping.Category == category {
			out = append(out, mapping)
		}
	}
	return out, nil
}

// ListAllResourceTypes returns every mapping for a provider
func (m *Memory) ListAllResourceTypes(provider types.Provider) ([]types.ResourceTypeMapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []types.ResourceTypeMapping
	for _, mapping := range m.resourceTypes {
		if mapping.Provider == provider {
			out = append(out, mapping)
		}
	}
	return out, nil
}

// GetImage returns the image for (provider, imageName), or nil
func (m *Memory) GetImage(provider types.Provider, imageName string) (*types.ImageMapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, image := range m.images {
		if image.Provider == provider && image.ImageName == imageName {
			out := image
			return &out, nil
		}
	}
	return nil, nil
}

// FindImageEquivalent returns the provider's first image with the exact
// (osFamily, osVersion) pair, or nil
func (m *Memory) FindImageEquivalent(provider types.Provider, osFamily, osVersion string) (*types.ImageMapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, image := range m.images {
		if image.Provider == provider && image.OSFamily == osFamily && image.OSVersion == osVersion {
			out := image
			return &out, nil
		}
	}
	return nil, nil
}

// ListImages returns every image for a provider
func (m *Memory) ListImages(provider types.Provider) ([]types.ImageMapping, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []types.ImageMapping
	for _, image := range m.images {
		if image.Provider == provider {
			out = append(out, image)
		}
	}
	return out, nil
}

// Providers returns the providers present in the store, first-seen order
func (m *Memory) Providers() ([]types.Provider, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	seen := make(map[types.Provider]bool)
	var out []types.Provider
	for _, spec := range m.instances {
		if !seen[spec.Provider] {
			seen[spec.Provider] = true
			out = append(out, spec.Provider)
		}
	}
	for _, region := range m.regions {
		if !seen[region.Provider] {
			seen[region.Provider] = true
			out = append(out, region.Provider)
		}
	}
	for _, mapping := range m.resourceTypes {
		if !seen[mapping.Provider] {
			seen[mapping.Provider] = true
			out = append(out, mapping.Provider)
		}
	}
	return out, nil
}

// Close is a no-op for the in-memory backend
func (m *Memory) Close() error {
	return nil
}
