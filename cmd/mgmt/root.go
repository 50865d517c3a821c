// Root command and store plumbing for the mgmt CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/slr71/mgmt/internal/paths"
	"github.com/slr71/mgmt/internal/store"
	"github.com/slr71/mgmt/pkg/mgmt"
	"github.com/slr71/mgmt/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagDatabase  string
)

// Values loaded from config.yaml by PersistentPreRunE so every subcommand
// can resolve the store location.
var (
	configDataDir  string
	configDatabase string
)

var rootCmd = &cobra.Command{
	Use:   "mgmt",
	Short: "mgmt manages deployment configuration values",
	Long: `mgmt stores configuration sections, defaults, and per-environment
values in a local database and renders them to YAML for deployments.`,
	Version: mgmt.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configDatabase = cfg.GetString(cfgKeyDatabase)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.mgmt-db)")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "database file name (default: mgmt.db)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(valuesCmd)
	rootCmd.AddCommand(defaultsCmd)
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(renderCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > MGMT_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > MGMT_DATA_DIR env > $(CWD)/.mgmt-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// openStore opens the configuration store at the resolved location.
// Callers are responsible for closing it.
func openStore() (*store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}

	database := flagDatabase
	if database == "" {
		database = configDatabase
	}

	return store.Open(types.Config{DataDir: dataDir, Database: database})
}
