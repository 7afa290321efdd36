// Package cmd - stats and providers commands
package cmd

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/gordonmurray/cloud-rosetta/core/types"
	"github.com/gordonmurray/cloud-rosetta/internal/config"
)

var statsFormat string

// statsCmd summarizes the mapping store contents
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mapping store statistics",
	Long: `Summarize the mapping store: record counts per provider and the
instance family distribution.

Examples:
  cloud-rosetta stats
  cloud-rosetta stats --format markdown`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

// providersCmd lists the providers present in the store
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List providers in the mapping store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		providers, err := s.Providers()
		if err != nil {
			return err
		}
		for _, p := range providers {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "", "output format (table, markdown); default from config")
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(providersCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	providers, err := s.Providers()
	if err != nil {
		return err
	}

	format := statsFormat
	if format == "" {
		format = config.Get().Output.Format
	}
	markdown := format == "markdown"

	counts := table.NewWriter()
	counts.SetOutputMirror(cmd.OutOrStdout())
	counts.AppendHeader(table.Row{"Provider", "Instances", "Regions", "Resource Types", "Images"})

	families := make(map[string]map[types.Provider]int)
	for _, provider := range providers {
		instances, err := s.ListInstanceSpecs(provider)
		if err != nil {
			return err
		}
		regions, err := s.ListRegions(provider)
		if err != nil {
			return err
		}
		resourceTypes, err := s.ListAllResourceTypes(provider)
		if err != nil {
			return err
		}
		images, err := s.ListImages(provider)
		if err != nil {
			return err
		}

		counts.AppendRow(table.Row{
			provider, len(instances), len(regions), len(resourceTypes), len(images),
		})

		for _, spec := range instances {
			if spec.Family == "" {
				continue
			}
			if families[spec.Family] == nil {
				families[spec.Family] = make(map[types.Provider]int)
			}
			families[spec.Family][provider]++
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Mapping store contents:")
	render(counts, markdown)

	if len(families) > 0 {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Instance families:")
		renderFamilies(cmd, families, providers, markdown)
	}
	return nil
}

func renderFamilies(cmd *cobra.Command, families map[string]map[types.Provider]int, providers []types.Provider, markdown bool) {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())

	header := table.Row{"Family"}
	for _, p := range providers {
		header = append(header, p)
	}
	t.AppendHeader(header)

	for _, name := range names {
		row := table.Row{name}
		for _, p := range providers {
			row = append(row, families[name][p])
		}
		t.AppendRow(row)
	}
	render(t, markdown)
}

func render(t table.Writer, markdown bool) {
	if markdown {
		t.RenderMarkdown()
		return
	}
	t.Render()
}
