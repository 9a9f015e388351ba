package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/brogergvhs/comicrev/internal/config"
	"github.com/brogergvhs/comicrev/internal/roundup"
)

func init() {
	comicsCmd := &cobra.Command{
		Use:   "comics [publisher]",
		Short: "Print every series of a known publisher as JSON",
		Long: "Print every series of a known publisher as JSON.\n" +
			"Without an argument the publisher is picked interactively. Keys are case-sensitive, see `comicrev publishers`.",
		Args: cobra.MaximumNArgs(1),
		RunE: runComics,
	}
	comicsCmd.Flags().BoolVar(&flagPretty, "pretty", false, "indent JSON output")

	publishersCmd := &cobra.Command{
		Use:   "publishers",
		Short: "List the known publishers and their listing pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderPublishers(cmd.OutOrStdout(), roundup.DefaultRegistry().Publishers())
			return nil
		},
	}

	rootCmd.AddCommand(comicsCmd, publishersCmd)
}

func runComics(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd, config.Options{})
	if err != nil {
		return err
	}

	var name string
	if len(args) == 1 {
		name = args[0]
	} else {
		name, err = pickPublisher(rt.engine.Publishers())
		if err != nil {
			return err
		}
	}

	comics, err := rt.engine.Comics(cmd.Context(), name)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), comics, flagPretty)
}

func pickPublisher(pubs []roundup.Publisher) (string, error) {
	items := make([]string, len(pubs))
	for i, p := range pubs {
		items[i] = p.Name
	}

	prompt := promptui.Select{
		Label: "Select publisher",
		Items: items,
		Size:  10,
		Searcher: func(input string, index int) bool {
			return strings.Contains(items[index], strings.ToLower(input))
		},
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled")
	}
	return pubs[idx].Name, nil
}

func renderPublishers(w io.Writer, pubs []roundup.Publisher) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Publisher", "Listing"})

	for _, p := range pubs {
		t.AppendRow(table.Row{p.Name, p.URL})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d publishers", len(pubs))})
	t.Render()
}
