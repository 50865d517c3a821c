package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Flag values for the defaults subcommands.
var (
	defaultSection string
	defaultKey     string
	defaultText    string
	defaultType    string
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Manage default configuration values",
}

var defaultsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set the default value for a section/key pair",
	Long: `Set the fallback value for a configuration key within a section. Setting an
existing default replaces its value and type.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.SetDefault(defaultSection, defaultKey, defaultText, defaultType)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "default %s.%s (id %d)\n", defaultSection, defaultKey, id)
		return nil
	},
}

var defaultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a section's default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		defaults, err := s.ListDefaults(defaultSection)
		if err != nil {
			return err
		}
		for _, d := range defaults {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", d.ID, d.Key, d.Value)
		}
		return nil
	},
}

func init() {
	defaultsSetCmd.Flags().StringVarP(&defaultSection, "section", "s", "", "section name")
	defaultsSetCmd.Flags().StringVarP(&defaultKey, "key", "k", "", "configuration key")
	defaultsSetCmd.Flags().StringVarP(&defaultText, "value", "v", "", "default value")
	defaultsSetCmd.Flags().StringVarP(&defaultType, "type", "t", "string", "value type name")
	defaultsSetCmd.MarkFlagRequired("section")
	defaultsSetCmd.MarkFlagRequired("key")
	defaultsSetCmd.MarkFlagRequired("value")

	defaultsListCmd.Flags().StringVarP(&defaultSection, "section", "s", "", "section name")
	defaultsListCmd.MarkFlagRequired("section")

	defaultsCmd.AddCommand(defaultsSetCmd)
	defaultsCmd.AddCommand(defaultsListCmd)
}
