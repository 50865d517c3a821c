package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "Manage configuration sections",
}

var sectionsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a configuration section",
	Long:  "Add a named configuration section. Adding an existing section is a no-op.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := s.AddSection(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "section %s (id %d)\n", args[0], id)
		return nil
	},
}

var sectionsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a configuration section",
	Long:  "Delete a section by name. The section's config values and defaults are removed with it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.DeleteSection(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted section %s\n", args[0])
		return nil
	},
}

var sectionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configuration sections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		names, err := s.ListSections()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	sectionsCmd.AddCommand(sectionsAddCmd)
	sectionsCmd.AddCommand(sectionsDeleteCmd)
	sectionsCmd.AddCommand(sectionsListCmd)
}
