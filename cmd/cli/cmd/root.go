// Package cmd provides the CLI commands for cloud-rosetta.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gordonmurray/cloud-rosetta/core/store"
	"github.com/gordonmurray/cloud-rosetta/internal/config"
	"github.com/gordonmurray/cloud-rosetta/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	storePath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cloud-rosetta",
	Short: "Translate Terraform plans between cloud providers",
	Long: `cloud-rosetta rewrites Terraform plan JSON from one cloud provider's
vocabulary into another's: instance types, regions, resource types and
OS images are swapped for their closest equivalents on the target.

Examples:
  cloud-rosetta init
  cloud-rosetta translate --target aws plan.json
  cloud-rosetta map instance --from ovh --to hetzner b2-7
  cloud-rosetta stats`,
}

// Execute runs the CLI
func Execute() error {
	defer logging.Sync()
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.cloud-rosetta/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "mapping store database file (overrides config)")

	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if storePath != "" {
		cfg.Store.Path = storePath
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// openStore opens the configured mapping store. The memory backend is
// always seeded; the sqlite backend is populated by the init command.
func openStore() (store.ReadWriter, error) {
	cfg := config.Get()

	switch cfg.Store.Backend {
	case "memory":
		s := store.NewMemory()
		if err := store.Seed(s); err != nil {
			return nil, err
		}
		return s, nil
	default:
		return store.OpenSQLite(cfg.Store.Path)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("cloud-rosetta version 0.1.0")
	},
}
