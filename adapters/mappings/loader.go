// Package mappings loads mapping overlay files written in HCL. An
// overlay adds to or replaces records in the store before translation,
// so users can extend the built-in dataset without touching it.
//
// Blocks carry two labels, provider and key:
//
//	instance "aws" "t3.micro" {
//	  vcpu      = 2
//	  memory_gb = 1
//	  family    = "burstable"
//	}
//
//	region "aws" "eu-west-2" {
//	  continent = "Europe"
//	  latitude  = 51.5
//	  longitude = -0.1
//	}
//
//	resource_type "aws" "aws_instance" {
//	  category = "compute"
//	}
//
//	image "aws" "ami-0abcdef" {
//	  os_family  = "ubuntu"
//	  os_version = "22.04"
//	}
package mappings

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/core/types"
	"github.com/gordonmurray/cloud-rosetta/internal/errors"
	"github.com/gordonmurray/cloud-rosetta/internal/logging"
)

// Loader parses overlay files and applies them to a store
type Loader struct {
	parser *hclparse.Parser
	log    *zap.Logger
}

// NewLoader creates an overlay loader
func NewLoader() *Loader {
	return &Loader{
		parser: hclparse.NewParser(),
		log:    logging.With(zap.String("component", "mappings")),
	}
}

var overlaySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "instance", LabelNames: []string{"provider", "type"}},
		{Type: "region", LabelNames: []string{"provider", "code"}},
		{Type: "resource_type", LabelNames: []string{"provider", "native_type"}},
		{Type: "image", LabelNames: []string{"provider", "name"}},
	},
}

// LoadFile parses one overlay file and writes its records into w.
// Records land in file order, after anything already in the store, so
// an overlay can both add new rows and replace seeded ones.
func (l *Loader) LoadFile(path string, w store.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Input("mappings file not found: " + path)
		}
		return errors.Wrap(errors.TypeInput, "failed to read mappings file", err).
			WithContext("path", path)
	}

	file, diags := l.parser.ParseHCL(src, path)
	if diags.HasErrors() {
		return errors.Parsing("invalid mappings file", diags).
			WithContext("path", path)
	}

	content, _, diags := file.Body.PartialContent(overlaySchema)
	if diags.HasErrors() {
		return errors.Parsing("invalid mappings file", diags).
			WithContext("path", path)
	}

	for _, block := range content.Blocks {
		provider, err := types.ParseProvider(block.Labels[0])
		if err != nil {
			return errors.Parsing(
				fmt.Sprintf("%s: %v", block.DefRange.String(), err), nil)
		}

		switch block.Type {
		case "instance":
			err = l.loadInstance(block, provider, w)
		case "region":
			err = l.loadRegion(block, provider, w)
		case "resource_type":
			err = l.loadResourceType(block, provider, w)
		case "image":
			err = l.loadImage(block, provider, w)
		}
		if err != nil {
			return err
		}
	}

	l.log.Info("loaded mapping overlay",
		zap.String("path", path), zap.Int("blocks", len(content.Blocks)))
	return nil
}

func (l *Loader) loadInstance(block *hcl.Block, provider types.Provider, w store.Writer) error {
	attrs, err := blockValues(block)
	if err != nil {
		return err
	}

	spec := types.InstanceSpec{
		Provider:     provider,
		InstanceType: block.Labels[1],
	}
	spec.VCPU = int(attrs.number("vcpu"))
	spec.MemoryGB = attrs.number("memory_gb")
	spec.Family = attrs.text("family")
	spec.Generation = attrs.text("generation")
	spec.NetworkPerformance = attrs.text("network_performance")
	spec.StorageType = attrs.text("storage_type")
	spec.StorageGB = int(attrs.number("storage_gb"))
	spec.GPUCount = int(attrs.number("gpu_count"))
	spec.GPUType = attrs.text("gpu_type")
	if price := attrs.number("hourly_price"); price > 0 {
		spec.HourlyPrice = decimal.NewFromFloat(price)
	}

	if spec.VCPU <= 0 || spec.MemoryGB <= 0 {
		return errors.Parsing(
			fmt.Sprintf("%s: instance needs positive vcpu and memory_gb", block.DefRange.String()), nil)
	}
	return w.PutInstanceSpec(spec)
}

func (l *Loader) loadRegion(block *hcl.Block, provider types.Provider, w store.Writer) error {
	attrs, err := blockValues(block)
	if err != nil {
		return err
	}

	return w.PutRegion(types.Region{
		Provider:  provider,
		Code:      block.Labels[1],
		Name:      attrs.text("name"),
		Country:   attrs.text("country"),
		Continent: attrs.text("continent"),
		Latitude:  attrs.number("latitude"),
		Longitude: attrs.number("longitude"),
	})
}

func (l *Loader) loadResourceType(block *hcl.Block, provider types.Provider, w store.Writer) error {
	attrs, err := blockValues(block)
	if err != nil {
		return err
	}

	category := attrs.text("category")
	if category == "" {
		return errors.Parsing(
			fmt.Sprintf("%s: resource_type needs a category", block.DefRange.String()), nil)
	}
	return w.PutResourceType(types.ResourceTypeMapping{
		Provider:   provider,
		Category:   category,
		NativeType: block.Labels[1],
	})
}

func (l *Loader) loadImage(block *hcl.Block, provider types.Provider, w store.Writer) error {
	attrs, err := blockValues(block)
	if err != nil {
		return err
	}

	family := attrs.text("os_family")
	version := attrs.text("os_version")
	if family == "" || version == "" {
		return errors.Parsing(
			fmt.Sprintf("%s: image needs os_family and os_version", block.DefRange.String()), nil)
	}
	return w.PutImage(types.ImageMapping{
		Provider:     provider,
		ImageName:    block.Labels[1],
		OSFamily:     family,
		OSVersion:    version,
		Architecture: attrs.text("architecture"),
	})
}

// values holds the evaluated attributes of one block. Overlay files are
// static data, so expressions evaluate with no variables or functions.
type values map[string]cty.Value

func blockValues(block *hcl.Block) (values, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.Parsing(
			fmt.Sprintf("%s: invalid attributes", block.DefRange.String()), diags)
	}

	out := make(values, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Parsing(
				fmt.Sprintf("%s: attribute %q must be a literal value", block.DefRange.String(), name), diags)
		}
		out[name] = val
	}
	return out, nil
}

func (v values) text(name string) string {
	val, ok := v[name]
	if !ok || val.IsNull() || val.Type() != cty.String {
		return ""
	}
	return val.AsString()
}

func (v values) number(name string) float64 {
	val, ok := v[name]
	if !ok || val.IsNull() || val.Type() != cty.Number {
		return 0
	}
	f, _ := val.AsBigFloat().Float64()
	return f
}
