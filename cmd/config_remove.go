package cmd

import (
	"fmt"

	"github.com/brogergvhs/comicrev/internal/config"

	"github.com/spf13/cobra"
)

var forceRemove bool

var configRemoveCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a config (<config_label>)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.DefaultStore()
		label := args[0]
		out := cmd.OutOrStdout()

		active, _ := store.CurrentLabel()
		if label == active && !forceRemove {
			if !confirm(cmd, fmt.Sprintf("Config %q is currently active. Remove it anyway?", label)) {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		fellBack, err := store.Remove(label)
		if err != nil {
			return err
		}
		if fellBack {
			fmt.Fprintln(out, "Fallback switched to:", config.DefaultLabel)
		}

		fmt.Fprintf(out, "Removed configuration %q\n", label)
		return nil
	},
}

func init() {
	configRemoveCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "remove the active config without asking")
	configCmd.AddCommand(configRemoveCmd)
}
