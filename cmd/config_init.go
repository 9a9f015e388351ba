package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/comicrev/internal/config"

	"github.com/spf13/cobra"
)

var flagYes bool

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default config",
	RunE: func(cmd *cobra.Command, args []string) error {
		store := config.DefaultStore()
		out := cmd.OutOrStdout()
		defaultPath := store.PathFor(config.DefaultLabel)

		if _, err := os.Stat(defaultPath); err == nil {
			fmt.Fprintln(out, "Configuration already exists at:")
			fmt.Fprintln(out, "  ", defaultPath)
			fmt.Fprintln(out, "Use `comicrev config reset` to recreate it.")
			return nil
		}

		fmt.Fprintln(out, "Configuration file will be saved at:")
		fmt.Fprintln(out, "  ", defaultPath)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Default configuration:")
		config.DefaultConfig().Print(out)
		fmt.Fprintln(out)

		if !flagYes && !confirm(cmd, fmt.Sprintf("Create Default config at %s?", defaultPath)) {
			fmt.Fprintln(out, "Aborted.")
			return nil
		}

		path, err := store.Init()
		if err != nil && !errors.Is(err, config.ErrExists) {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Fprintln(out, "Config created at:", path)
		fmt.Fprintln(out, "This config is now active (label: Default).")
		return nil
	},
}

// confirm asks a y/N question on the command's input.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	resp, _ := reader.ReadString('\n')
	resp = strings.TrimSpace(strings.ToLower(resp))

	return resp == "y" || resp == "yes"
}

func init() {
	configInitCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "do not ask for confirmation")
	configCmd.AddCommand(configInitCmd)
}
