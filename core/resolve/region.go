package resolve

import (
	"sort"

	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
)

// Regions resolves regions across providers by geographic proximity
type Regions struct {
	store store.Store
}

// NewRegions creates a region resolver
func NewRegions(s store.Store) *Regions {
	return &Regions{store: s}
}

type regionCandidate struct {
	region         types.Region
	distSq         float64
	continentMatch bool
}

// Resolve returns the target provider's nearest region to
// (sourceProvider, sourceRegion). Same-continent candidates always beat
// cross-continent ones, however close; within a continent the smallest
// squared planar distance wins. Plain (lat, lon) degrees with no
// geodesic correction -- good enough at country/continent granularity.
func (r *Regions) Resolve(sourceProvider types.Provider, sourceRegion string, target types.Provider) (string, bool, error) {
	src, err := r.store.GetRegion(sourceProvider, sourceRegion)
	if err != nil {
		return "", false, err
	}
	if src == nil {
		return "", false, nil
	}

	regions, err := r.store.ListRegions(target)
	if err != nil {
		return "", false, err
	}
	if len(regions) == 0 {
		return "", false, nil
	}

	candidates := make([]regionCandidate, 0, len(regions))
	for _, region := range regions {
		dLat := region.Latitude - src.Latitude
		dLon := region.Longitude - src.Longitude
		candidates = append(candidates, regionCandidate{
			region:         region,
			distSq:         dLat*dLat + dLon*dLon,
			continentMatch: region.Continent == src.Continent,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].continentMatch != candidates[j].continentMatch {
			return candidates[i].continentMatch
		}
		return candidates[i].distSq < candidates[j].distSq
	})

	return candidates[0].region.Code, true, nil
}
