package resolve

import (
	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
)

// Images resolves OS images across providers by (os_family, os_version)
type Images struct {
	store store.Store
}

// NewImages creates an image resolver
func NewImages(s store.Store) *Images {
	return &Images{store: s}
}

// Resolve returns the target provider's image equivalent to
// (sourceProvider, imageName). The equivalence key is the exact
// (os_family, os_version) pair; there is no fuzzy version matching, so
// a target lacking that precise version is a miss.
func (r *Images) Resolve(sourceProvider types.Provider, imageName string, target types.Provider) (string, bool, error) {
	src, err := r.store.GetImage(sourceProvider, imageName)
	if err != nil {
		return "", false, err
	}
	if src == nil {
		return "", false, nil
	}

	equivalent, err := r.store.FindImageEquivalent(target, src.OSFamily, src.OSVersion)
	if err != nil {
		return "", false, err
	}
	if equivalent == nil {
		return "", false, nil
	}

	return equivalent.ImageName, true, nil
}
