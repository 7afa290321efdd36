// Package cmd - map command and subcommands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gordonmurray/cloud-rosetta/core/resolve"
	"github.com/gordonmurray/cloud-rosetta/core/types"
)

var (
	mapFrom string
	mapTo   string
)

// mapCmd groups the single-value lookup commands
var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Look up a single equivalence",
	Long: `Resolve one value through the mapping store without a plan document.

Examples:
  cloud-rosetta map instance --from ovh --to aws b2-7
  cloud-rosetta map region --from aws --to hetzner eu-west-2
  cloud-rosetta map resource --to gcp aws_instance
  cloud-rosetta map image --from hetzner --to aws ubuntu-22.04`,
}

var mapInstanceCmd = &cobra.Command{
	Use:   "instance <type>",
	Short: "Find the equivalent instance type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMapLookup(cmd, func(source, target types.Provider) (string, bool, error) {
			s, err := openStore()
			if err != nil {
				return "", false, err
			}
			defer s.Close()
			return resolve.NewInstances(s).Resolve(source, args[0], target)
		})
	},
}

var mapRegionCmd = &cobra.Command{
	Use:   "region <code>",
	Short: "Find the equivalent region",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMapLookup(cmd, func(source, target types.Provider) (string, bool, error) {
			s, err := openStore()
			if err != nil {
				return "", false, err
			}
			defer s.Close()
			return resolve.NewRegions(s).Resolve(source, args[0], target)
		})
	},
}

var mapResourceCmd = &cobra.Command{
	Use:   "resource <native-type>",
	Short: "Find the equivalent resource type",
	Long: `Find the target provider's resource type in the same category as the
given native type. The source provider is implied by the type itself,
so --from is not needed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := types.ParseProvider(mapTo)
		if err != nil {
			return err
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		mapped, ok, err := resolve.NewResourceTypes(s).Resolve(args[0], target)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no equivalent for %s on %s", args[0], target)
		}
		fmt.Fprintln(cmd.OutOrStdout(), mapped)
		return nil
	},
}

var mapImageCmd = &cobra.Command{
	Use:   "image <name>",
	Short: "Find the equivalent OS image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMapLookup(cmd, func(source, target types.Provider) (string, bool, error) {
			s, err := openStore()
			if err != nil {
				return "", false, err
			}
			defer s.Close()
			return resolve.NewImages(s).Resolve(source, args[0], target)
		})
	},
}

func init() {
	mapCmd.PersistentFlags().StringVar(&mapFrom, "from", "", "source provider")
	mapCmd.PersistentFlags().StringVar(&mapTo, "to", "", "target provider [REQUIRED]")

	mapCmd.AddCommand(mapInstanceCmd)
	mapCmd.AddCommand(mapRegionCmd)
	mapCmd.AddCommand(mapResourceCmd)
	mapCmd.AddCommand(mapImageCmd)
	rootCmd.AddCommand(mapCmd)
}

// runMapLookup handles the shared from/to plumbing of the lookups that
// need an explicit source provider
func runMapLookup(cmd *cobra.Command, lookup func(source, target types.Provider) (string, bool, error)) error {
	source, err := types.ParseProvider(mapFrom)
	if err != nil {
		return fmt.Errorf("--from: %w", err)
	}
	target, err := types.ParseProvider(mapTo)
	if err != nil {
		return fmt.Errorf("--to: %w", err)
	}

	mapped, ok, err := lookup(source, target)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no equivalent found on %s", target)
	}
	fmt.Fprintln(cmd.OutOrStdout(), mapped)
	return nil
}
