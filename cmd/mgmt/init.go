package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	DataDir  string `yaml:"data_dir,omitempty"`
	Database string `yaml:"database,omitempty"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration store",
	Long:  "Create the configuration and data directories, then create the database schema and seed the value types.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, configFileExt)
	if err := writeConfigIfMissing(configPath, dataDir); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	s, err := openStore()
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	path := s.Path()
	if err := s.Close(); err != nil {
		return fmt.Errorf("finalize store: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized configuration store at %s\n", path)
	return nil
}

// writeConfigIfMissing creates config.yaml with the resolved data directory
// if the file does not exist. If it already exists, the function returns nil.
func writeConfigIfMissing(path, dataDir string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	cfg := configFile{DataDir: dataDir}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
