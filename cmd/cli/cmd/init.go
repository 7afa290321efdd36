// Package cmd - init command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gordonmurray/cloud-rosetta/adapters/mappings"
	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/internal/config"
)

var initMappings []string

// initCmd seeds the mapping store database
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create and seed the mapping store",
	Long: `Create the mapping store database and populate it with the built-in
dataset of instance types, regions, resource types and OS images.

Running init on an existing database refreshes the built-in records in
place; user-added records are kept.

Examples:
  cloud-rosetta init
  cloud-rosetta init --store ./rosetta.db
  cloud-rosetta init --mappings company.hcl`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringArrayVarP(&initMappings, "mappings", "m", nil, "mapping overlay file (HCL) to load after seeding, may be repeated")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return fmt.Errorf("failed to open mapping store: %w", err)
	}
	defer s.Close()

	if err := store.Seed(s); err != nil {
		return fmt.Errorf("failed to seed mapping store: %w", err)
	}

	loader := mappings.NewLoader()
	for _, path := range initMappings {
		if err := loader.LoadFile(path, s); err != nil {
			return err
		}
	}

	providers, err := s.Providers()
	if err != nil {
		return err
	}

	cfg := config.Get()
	fmt.Fprintf(cmd.OutOrStdout(), "Mapping store ready: %s\n", cfg.Store.Path)
	fmt.Fprintf(cmd.OutOrStdout(), "Providers: %d\n", len(providers))
	return nil
}
