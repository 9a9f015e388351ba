package cmd

import (
	"fmt"

	"github.com/brogergvhs/comicrev/internal/config"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var configSwitchCmd = &cobra.Command{
	Use:   "switch [label]",
	Short: "Switch to a different configuration profile",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.DefaultStore()

		var label string
		if len(args) == 1 {
			label = args[0]
		} else {
			list, err := store.List()
			if err != nil {
				return err
			}
			if len(list) == 0 {
				return fmt.Errorf("no configs available, run `comicrev config init` first")
			}

			items := make([]string, len(list))
			for i, c := range list {
				items[i] = c.Label
				if c.Active {
					items[i] += "  (active)"
				}
			}

			prompt := promptui.Select{
				Label: "Select config",
				Items: items,
			}

			idx, _, err := prompt.Run()
			if err != nil {
				return fmt.Errorf("selection cancelled")
			}
			label = list[idx].Label
		}

		if err := store.Switch(label); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Switched to:", label)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configSwitchCmd)
}
