package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Flag values for the values subcommands.
var (
	valueSection string
	valueKey     string
	valueText    string
	valueType    string
	valueEnv     string
)

var valuesCmd = &cobra.Command{
	Use:   "values",
	Short: "Manage configuration values",
}

var valuesSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a configuration value",
	Long: `Set a configuration value for a section. The section, value type, and the
default for the section/key pair must already exist. With --env, the new
value is also linked into the environment.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.SetValue(valueSection, valueKey, valueText, valueType)
		if err != nil {
			return err
		}

		if valueEnv != "" {
			envID, err := s.EnvironmentID(valueEnv)
			if err != nil {
				return err
			}
			if err := s.AddEnvironmentValue(envID, id); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "value %s.%s (id %d)\n", valueSection, valueKey, id)
		return nil
	},
}

var valuesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Get a configuration value by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parsing value id %q: %w", args[0], err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		v, err := s.GetValue(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", v.ID, v.Key, v.Value)
		return nil
	},
}

var valuesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a section's configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		values, err := s.ListValues(valueSection)
		if err != nil {
			return err
		}
		for _, v := range values {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", v.ID, v.Key, v.Value)
		}
		return nil
	},
}

var valuesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a configuration value by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("parsing value id %q: %w", args[0], err)
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteValue(id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted value %d\n", id)
		return nil
	},
}

func init() {
	valuesSetCmd.Flags().StringVarP(&valueSection, "section", "s", "", "section name")
	valuesSetCmd.Flags().StringVarP(&valueKey, "key", "k", "", "configuration key")
	valuesSetCmd.Flags().StringVarP(&valueText, "value", "v", "", "configuration value")
	valuesSetCmd.Flags().StringVarP(&valueType, "type", "t", "string", "value type name")
	valuesSetCmd.Flags().StringVarP(&valueEnv, "env", "e", "", "environment to link the value into")
	valuesSetCmd.MarkFlagRequired("section")
	valuesSetCmd.MarkFlagRequired("key")
	valuesSetCmd.MarkFlagRequired("value")

	valuesListCmd.Flags().StringVarP(&valueSection, "section", "s", "", "section name")
	valuesListCmd.MarkFlagRequired("section")

	valuesCmd.AddCommand(valuesSetCmd)
	valuesCmd.AddCommand(valuesGetCmd)
	valuesCmd.AddCommand(valuesListCmd)
	valuesCmd.AddCommand(valuesDeleteCmd)
}
