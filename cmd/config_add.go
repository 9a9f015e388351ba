package cmd

import (
	"fmt"

	"github.com/brogergvhs/comicrev/internal/config"

	"github.com/spf13/cobra"
)

var flagFrom string

var configAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Create a new config from the defaults or from an existing file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.DefaultStore()

		var (
			path string
			err  error
		)
		if flagFrom != "" {
			path, err = store.Import(args[0], flagFrom)
		} else {
			path, err = store.Create(args[0])
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created new config: %s\n", path)
		return nil
	},
}

func init() {
	configAddCmd.Flags().StringVar(&flagFrom, "from", "", "copy an existing YAML file instead of the defaults")
	configCmd.AddCommand(configAddCmd)
}
