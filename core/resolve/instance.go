// Package resolve implements the cross-provider equivalence resolvers.
// Every resolver is a pure read over the mapping store: a miss is a
// normal outcome reported as ok=false, never an error.
package resolve

import (
	"math"
	"sort"

	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
)

// Instances resolves instance types across providers
type Instances struct {
	store store.Store
}

// NewInstances creates an instance resolver
func NewInstances(s store.Store) *Instances {
	return &Instances{store: s}
}

type instanceCandidate struct {
	spec        types.InstanceSpec
	score       float64
	familyMatch bool
}

// Resolve returns the best-matching instance type of the target
// provider for (sourceProvider, sourceType).
//
// Candidates are restricted to the [0.5x, 2x] window on both vCPU and
// memory so a 1-vCPU source can never match a 64-vCPU target, then
// ranked by family equality first and closeness score second:
//
//	score = |vcpu - src.vcpu| + 0.5 * |memory_gb - src.memory_gb|
//
// Family wins over raw closeness: an r5.large (memory) prefers another
// memory-optimized type even when a general-purpose one scores better.
// Ties keep store insertion order.
func (r *Instances) Resolve(sourceProvider types.Provider, sourceType string, target types.Provider) (string, bool, error) {
	src, err := r.store.GetInstanceSpec(sourceProvider, sourceType)
	if err != nil {
		return "", false, err
	}
	if src == nil {
		return "", false, nil
	}

	specs, err := r.store.ListInstanceSpecs(target)
	if err != nil {
		return "", false, err
	}

	srcVCPU := float64(src.VCPU)
	var candidates []instanceCandidate
	for _, spec := range specs {
		vcpu := float64(spec.VCPU)
		if vcpu < 0.5*srcVCPU || vcpu > 2*srcVCPU {
			continue
		}
		if spec.MemoryGB < 0.5*src.MemoryGB || spec.MemoryGB > 2*src.MemoryGB {
			continue
		}
		candidates = append(candidates, instanceCandidate{
			spec:        spec,
			score:       math.Abs(vcpu-srcVCPU) + 0.5*math.Abs(spec.MemoryGB-src.MemoryGB),
			familyMatch: spec.Family == src.Family,
		})
	}

	if len(candidates) == 0 {
		return "", false, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].familyMatch != candidates[j].familyMatch {
			return candidates[i].familyMatch
		}
		return candidates[i].score < candidates[j].score
	})

	return candidates[0].spec.InstanceType, true, nil
}
