package translate

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gordonmurray/cloud-rosetta/core/resolve"
	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
	"github.com/gordonmurray/cloud-rosetta/internal/errors"
	"github.com/gordonmurray/cloud-rosetta/internal/logging"
)

// State tracks the translator's single-pass progress. No cycles, no
// backtracking: a document moves through each state exactly once.
type State int

const (
	// StateInit is the starting state
	StateInit State = iota

	// StateProviderDetected follows source-provider detection
	StateProviderDetected

	// StateResourcesRewritten follows the resource walk
	StateResourcesRewritten

	// StateProviderConfigRewritten follows the provider_config swap
	StateProviderConfigRewritten

	// StateDone is the terminal state
	StateDone
)

// Translator rewrites a plan document into a target provider's
// vocabulary. It is the sole caller of the four resolvers; all of them
// share one read-only store handle. Strictly sequential: one document,
// one pass, no concurrency.
type Translator struct {
	store         store.Store
	instances     *resolve.Instances
	regions       *resolve.Regions
	resourceTypes *resolve.ResourceTypes
	images        *resolve.Images

	target types.Provider
	source types.Provider
	schema valueSchema
	state  State

	runID string
	log   *zap.Logger
}

// New creates a translator for a target provider over a mapping store
func New(s store.Store, target types.Provider) *Translator {
	runID := uuid.NewString()
	return &Translator{
		store:         s,
		instances:     resolve.NewInstances(s),
		regions:       resolve.NewRegions(s),
		resourceTypes: resolve.NewResourceTypes(s),
		images:        resolve.NewImages(s),
		target:        target,
		state:         StateInit,
		runID:         runID,
		log: logging.With(
			zap.String("run_id", runID),
			zap.String("target", target.String()),
		),
	}
}

// Source returns the detected source provider; meaningful after Translate
func (t *Translator) Source() types.Provider {
	return t.source
}

// State returns the translator's current state
func (t *Translator) State() State {
	return t.state
}

// Translate rewrites a deep copy of the document and returns it; the
// input is never mutated. Resolver misses leave the affected resource
// or field untranslated and never fail the run; only an unusable input
// document is an error.
func (t *Translator) Translate(doc types.PlanDocument) (types.PlanDocument, error) {
	if doc == nil {
		return nil, errors.Input("plan document is empty")
	}

	out, err := doc.DeepCopy()
	if err != nil {
		return nil, errors.Internal("failed to copy plan document", err)
	}

	t.source = DetectSource(out)
	t.schema = schemaFor(t.source)
	t.state = StateProviderDetected
	t.log = t.log.With(zap.String("source", t.source.String()))
	t.log.Info("starting translation")

	for _, resource := range plannedResources(out) {
		originalType, _ := resource["type"].(string)
		if t.rewriteEntryType(resource) {
			t.rewriteValues(resource, "values", originalType)
		}
	}
	if changes, ok := out["resource_changes"].([]interface{}); ok {
		for _, raw := range changes {
			change, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			originalType, _ := change["type"].(string)
			if t.rewriteEntryType(change) {
				if inner, ok := change["change"].(map[string]interface{}); ok {
					t.rewriteValues(inner, "after", originalType)
				}
			}
		}
	}
	t.state = StateResourcesRewritten

	t.rewriteProviderConfig(out)
	t.state = StateProviderConfigRewritten

	t.log.Info("translation complete")
	t.state = StateDone
	return out, nil
}

// rewriteEntryType maps an entry's native type and provider_name to
// the target. Returns false when the type could not be mapped, in
// which case the entry stays untouched entirely -- a miss, not an
// error.
func (t *Translator) rewriteEntryType(entry map[string]interface{}) bool {
	originalType, ok := entry["type"].(string)
	if !ok {
		return false
	}

	newType, ok, err := t.resourceTypes.Resolve(originalType, t.target)
	if err != nil {
		t.log.Warn("resource type lookup failed",
			zap.String("type", originalType), zap.Error(err))
		return false
	}
	if !ok {
		t.log.Warn("no equivalent resource type, leaving untouched",
			zap.String("type", originalType))
		return false
	}

	entry["type"] = newType
	if providerName, ok := entry["provider_name"].(string); ok {
		entry["provider_name"] = translateProviderName(providerName, t.target)
	}

	address, _ := entry["address"].(string)
	t.log.Info("mapped resource type",
		zap.String("address", address),
		zap.String("from", originalType),
		zap.String("to", newType))
	return true
}

// rewriteValues translates holder[key] for a mapped resource. Compute
// resources get a freshly built value map; everything else keeps its
// values minus the source-schema fields. Cleanup and prune always run.
func (t *Translator) rewriteValues(holder map[string]interface{}, key, originalType string) {
	values, ok := holder[key].(map[string]interface{})
	if !ok {
		return
	}
	if computeLike(originalType) {
		translated := t.translateInstanceValues(values)
		t.cleanupValues(translated, translated)
		t.pruneValues(translated)
		holder[key] = translated
	} else {
		t.cleanupValues(values, nil)
		t.pruneValues(values)
	}
}

// rewriteProviderConfig swaps configuration.provider_config wholesale
// for the target's static template. Absent configuration passes through.
func (t *Translator) rewriteProviderConfig(doc types.PlanDocument) {
	configuration := doc.Map("configuration")
	if configuration == nil {
		return
	}
	if _, ok := configuration["provider_config"]; !ok {
		return
	}
	if block := providerConfigBlock(t.target); block != nil {
		configuration["provider_config"] = block
	}
}
