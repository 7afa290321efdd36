// Package store provides the read-only mapping store the resolvers
// query: instance specs, regions, resource-type categories and OS
// images, keyed by provider.
package store

import (
	"github.com/gordonmurray/cloud-rosetta/core/types"
)

// Store is the query surface consumed by the resolvers. A query with no
// result returns a nil record (or empty slice), never an error; absence
// is a normal outcome handled by the resolver layer. Errors are reserved
// for backend failures.
//
// List methods return rows in insertion order. That order is the
// documented tie-break wherever a resolver has to pick among otherwise
// equal candidates.
type Store interface {
	// GetInstanceSpec returns the spec for (provider, instanceType), or nil
	GetInstanceSpec(provider types.Provider, instanceType string) (*types.InstanceSpec, error)

	// ListInstanceSpecs returns every instance spec for a provider
	ListInstanceSpecs(provider types.Provider) ([]types.InstanceSpec, error)

	// GetRegion returns the region for (provider, code), or nil
	GetRegion(provider types.Provider, code string) (*types.Region, error)

	// ListRegions returns every region for a provider
	ListRegions(provider types.Provider) ([]types.Region, error)

	// GetResourceCategory returns the category of a native resource type,
	// searching across all providers. ok is false when unmapped.
	GetResourceCategory(nativeType string) (category string, ok bool, err error)

	// ListResourceTypes returns the mappings for (provider, category)
	ListResourceTypes(provider types.Provider, category string) ([]types.ResourceTypeMapping, error)

	// ListAllResourceTypes returns every mapping for a provider
	ListAllResourceTypes(provider types.Provider) ([]types.ResourceTypeMapping, error)

	// GetImage returns the image for (provider, imageName), or nil
	GetImage(provider types.Provider, imageName string) (*types.ImageMapping, error)

	// FindImageEquivalent returns the first image of the provider with the
	// exact (osFamily, osVersion) pair, or nil
	FindImageEquivalent(provider types.Provider, osFamily, osVersion string) (*types.ImageMapping, error)

	// ListImages returns every image for a provider
	ListImages(provider types.Provider) ([]types.ImageMapping, error)

	// Providers returns the providers present in the store, stable order
	Providers() ([]types.Provider, error)

	// Close releases the backend
	Close() error
}

// Writer is the population surface used by seeding and mapping
// overlays. Inserting an existing key replaces the record in place,
// keeping its original sequence position.
type Writer interface {
	PutInstanceSpec(spec types.InstanceSpec) error
	PutRegion(region types.Region) error
	PutResourceType(mapping types.ResourceTypeMapping) error
	PutImage(image types.ImageMapping) error
}

// ReadWriter combines the query and population surfaces
type ReadWriter interface {
	Store
	Writer
}
