package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// envNamespace is set by the --namespace flag on env create.
var envNamespace string

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Manage deployment environments",
}

var envCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create or update an environment",
	Long:  "Create an environment with the given namespace. Creating an existing environment updates its namespace.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.UpsertEnvironment(args[0], envNamespace)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "environment %s (id %d)\n", args[0], id)
		return nil
	},
}

var envListCmd = &cobra.Command{
	Use:   "list",
	Short: "List environments",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		envs, err := s.ListEnvironments()
		if err != nil {
			return err
		}
		for _, e := range envs {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", e.Name, e.Namespace)
		}
		return nil
	},
}

var envDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an environment",
	Long:  "Delete an environment by name. Its links to config values are removed; the values stay.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteEnvironment(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted environment %s\n", args[0])
		return nil
	},
}

var envLinkCmd = &cobra.Command{
	Use:   "link <env> <value-id>",
	Short: "Link a configuration value into an environment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		valueID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("parsing value id %q: %w", args[1], err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		envID, err := s.EnvironmentID(args[0])
		if err != nil {
			return err
		}
		if err := s.AddEnvironmentValue(envID, valueID); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "linked value %d to %s\n", valueID, args[0])
		return nil
	},
}

func init() {
	envCreateCmd.Flags().StringVarP(&envNamespace, "namespace", "n", "default", "deployment namespace")

	envCmd.AddCommand(envCreateCmd)
	envCmd.AddCommand(envListCmd)
	envCmd.AddCommand(envDeleteCmd)
	envCmd.AddCommand(envLinkCmd)
}
