// Package cmd - translate command
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gordonmurray/cloud-rosetta/adapters/mappings"
	"github.com/gordonmurray/cloud-rosetta/adapters/terraform"
	"github.com/gordonmurray/cloud-rosetta/core/translate"
	"github.com/gordonmurray/cloud-rosetta/core/types"
	"github.com/gordonmurray/cloud-rosetta/internal/config"
)

var (
	translateTarget   string
	translateOutput   string
	translateMappings []string
	translateCompact  bool
)

// translateCmd represents the translate command
var translateCmd = &cobra.Command{
	Use:   "translate [plan.json]",
	Short: "Translate a Terraform plan to another provider",
	Long: `Rewrite a Terraform plan JSON document into the target provider's
vocabulary. Reads from stdin when no file is given; writes to stdout
unless --output is set.

Unmappable resources and fields are left untouched and reported in the
log; only an unreadable or malformed input document fails the run.

Examples:
  cloud-rosetta translate --target aws plan.json
  terraform show -json plan.tfplan | cloud-rosetta translate --target hetzner
  cloud-rosetta translate --target gcp --mappings extra.hcl --output out.json plan.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVarP(&translateTarget, "target", "t", "", "target provider (ovh, aws, hetzner, azure, gcp) [REQUIRED]")
	translateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "write the translated plan to a file instead of stdout")
	translateCmd.Flags().StringArrayVarP(&translateMappings, "mappings", "m", nil, "mapping overlay file (HCL), may be repeated")
	translateCmd.Flags().BoolVar(&translateCompact, "compact", false, "emit compact JSON")
	translateCmd.MarkFlagRequired("target")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	target, err := types.ParseProvider(translateTarget)
	if err != nil {
		return err
	}

	var doc types.PlanDocument
	if len(args) > 0 {
		doc, err = terraform.LoadPlanFile(args[0])
	} else {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read plan from stdin: %w", readErr)
		}
		doc, err = terraform.ParsePlan(data)
	}
	if err != nil {
		return err
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open mapping store: %w", err)
	}
	defer s.Close()

	loader := mappings.NewLoader()
	for _, path := range translateMappings {
		if err := loader.LoadFile(path, s); err != nil {
			return err
		}
	}

	translated, err := translate.New(s, target).Translate(doc)
	if err != nil {
		return err
	}

	indent := config.Get().Output.Indent
	if translateCompact {
		indent = ""
	}
	return terraform.WritePlan(translated, translateOutput, indent, cmd.OutOrStdout())
}
