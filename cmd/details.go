package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brogergvhs/comicrev/internal/config"
)

var flagPretty bool

func init() {
	detailsCmd := &cobra.Command{
		Use:   "details <issue-url>",
		Short: "Print the details of a single issue page as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, config.Options{})
			if err != nil {
				return err
			}

			info, err := rt.engine.Details(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), info, flagPretty)
		},
	}

	issuesCmd := &cobra.Command{
		Use:   "issues <series-url>",
		Short: "Print the issue URLs of a series page as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd, config.Options{})
			if err != nil {
				return err
			}

			issues, err := rt.engine.Issues(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), issues, flagPretty)
		},
	}

	for _, c := range []*cobra.Command{detailsCmd, issuesCmd} {
		c.Flags().BoolVar(&flagPretty, "pretty", false, "indent JSON output")
		rootCmd.AddCommand(c)
	}
}
