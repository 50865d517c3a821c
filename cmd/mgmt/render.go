package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/slr71/mgmt/internal/store"
)

// Flag values for the render subcommands.
var (
	renderEnv    string
	renderOutput string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render configuration values to YAML",
}

var renderDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Render every section's default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderTo(cmd, func(s *store.Store, w io.Writer) error {
			return s.RenderDefaults(w)
		})
	},
}

var renderValuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Render the merged configuration for an environment",
	Long:  "Render every section's defaults overlaid with the values linked to the environment.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderTo(cmd, func(s *store.Store, w io.Writer) error {
			return s.RenderValues(w, renderEnv)
		})
	},
}

// renderTo opens the store and runs fn against the flagged output file, or
// stdout when --output is unset.
func renderTo(cmd *cobra.Command, fn func(*store.Store, io.Writer) error) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if renderOutput == "" {
		return fn(s, cmd.OutOrStdout())
	}

	f, err := os.Create(renderOutput)
	if err != nil {
		return fmt.Errorf("creating %s: %w", renderOutput, err)
	}
	if err := fn(s, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func init() {
	renderDefaultsCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default: stdout)")

	renderValuesCmd.Flags().StringVarP(&renderEnv, "env", "e", "", "environment name")
	renderValuesCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default: stdout)")
	renderValuesCmd.MarkFlagRequired("env")

	renderCmd.AddCommand(renderDefaultsCmd)
	renderCmd.AddCommand(renderValuesCmd)
}
