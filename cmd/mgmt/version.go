package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slr71/mgmt/pkg/mgmt"
)

const modulePath = "github.com/slr71/mgmt"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mgmt version",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "mgmt v%s\nmodule: %s\n", mgmt.Version, modulePath)
		return nil
	},
}
