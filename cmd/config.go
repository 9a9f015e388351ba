package cmd

import (
	"fmt"

	"github.com/brogergvhs/comicrev/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config profiles for comicrev",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, used, err := loadConfig(config.Options{})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Loaded config from:\n  %s\n\n", used)
		cfg.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
