package resolve

import (
	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
)

// ResourceTypes maps native Terraform resource types across providers
// through their shared category
type ResourceTypes struct {
	store store.Store
}

// NewResourceTypes creates a resource-type mapper
func NewResourceTypes(s store.Store) *ResourceTypes {
	return &ResourceTypes{store: s}
}

// Resolve returns the target provider's native type for the category of
// sourceNativeType. Category equality is the sole criterion, which is
// deliberately coarse: a load balancer listener may land on a load
// balancer pool when the target has nothing finer. When the category
// holds several target types the first in store insertion order wins --
// a documented tie-break, not an arbitrary row.
func (r *ResourceTypes) Resolve(sourceNativeType string, target types.Provider) (string, bool, error) {
	category, ok, err := r.store.GetResourceCategory(sourceNativeType)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	mappings, err := r.store.ListResourceTypes(target, category)
	if err != nil {
		return "", false, err
	}
	if len(mappings) == 0 {
		return "", false, nil
	}

	return mappings[0].NativeType, true, nil
}
