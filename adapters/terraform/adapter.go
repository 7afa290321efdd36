// Package terraform reads and writes Terraform plan JSON documents.
// Plans are handled as generic documents so that fields the translator
// does not understand pass through byte-for-byte semantics intact.
package terraform

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/gordonmurray/cloud-rosetta/core/types"
	"github.com/gordonmurray/cloud-rosetta/internal/errors"
)

// LoadPlanFile reads and parses a plan JSON file. A missing or
// unreadable file is an input error; malformed JSON is a parsing error.
func LoadPlanFile(path string) (types.PlanDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Input("plan file not found: " + path)
		}
		return nil, errors.Wrap(errors.TypeInput, "failed to read plan file", err).
			WithContext("path", path)
	}
	return ParsePlan(data)
}

// ParsePlan parses plan JSON bytes into a document. The top level must
// be a JSON object; anything else cannot be a Terraform plan.
func ParsePlan(data []byte) (types.PlanDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Parsing("plan document is empty", nil)
	}

	var doc types.PlanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Parsing("plan is not valid JSON", err)
	}
	if doc == nil {
		return nil, errors.Parsing("plan must be a JSON object", nil)
	}
	return doc, nil
}

// EncodePlan serializes a document with the given indent string. An
// empty indent produces compact output.
func EncodePlan(doc types.PlanDocument, indent string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if indent != "" {
		data, err = json.MarshalIndent(doc, "", indent)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, errors.Internal("failed to encode plan document", err)
	}
	return data, nil
}

// WritePlan writes an encoded document to a file, or to w when path is
// empty. Output always ends in a newline so it pipes cleanly.
func WritePlan(doc types.PlanDocument, path string, indent string, w io.Writer) error {
	data, err := EncodePlan(doc, indent)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "" {
		if _, err := w.Write(data); err != nil {
			return errors.Internal("failed to write plan document", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.TypeInternal, "failed to write plan file", err).
			WithContext("path", path)
	}
	return nil
}
