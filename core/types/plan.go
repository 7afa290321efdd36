package types

import "encoding/json"

// PlanDocument is a Terraform plan JSON tree. It stays a raw map so
// fields the translator does not understand pass through untouched.
type PlanDocument map[string]interface{}

// DeepCopy returns an independent copy of the document. The translator
// only ever mutates copies; the input document is never touched.
func (d PlanDocument) DeepCopy() (PlanDocument, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	var out PlanDocument
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Map returns a nested object, or nil when absent or not an object
func (d PlanDocument) Map(key string) map[string]interface{} {
	m, _ := d[key].(map[string]interface{})
	return m
}
