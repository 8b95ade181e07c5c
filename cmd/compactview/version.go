package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/compactview/pkg/version"
)

func newVersionCmd(e env) *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "compactview version %s\n", version.Version)
			if !check {
				return nil
			}

			rel, err := e.updates().Check(cmd.Context(), version.Version)
			if err != nil {
				return fmt.Errorf("update check failed: %w", err)
			}
			if rel == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "up to date")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "update available: %s (%s)\n", rel.TagName, rel.HTMLURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "Check GitHub for a newer release")
	return cmd
}
