package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/brogergvhs/comicrev/internal/batch"
	"github.com/brogergvhs/comicrev/internal/config"
	"github.com/brogergvhs/comicrev/internal/roundup"
	"github.com/brogergvhs/comicrev/internal/selection"
	"github.com/brogergvhs/comicrev/internal/ui"
	"github.com/brogergvhs/comicrev/internal/util"
)

var (
	// selection
	flagRange string
	flagList  string

	// runtime
	flagWorkers    int
	flagSkipBroken bool
	flagDryRun     bool
	flagOutput     string
)

func init() {
	seriesCmd := &cobra.Command{
		Use:   "series <series-url>",
		Short: "Fetch the details of every issue in a series. Uses the defaults from the selected config, overwritten by CLI flags",
		Args:  cobra.ExactArgs(1),
		RunE:  runSeries,
	}

	// selection
	seriesCmd.Flags().StringVar(&flagRange, "range", "", "only issues in this 1-based range (e.g. 5-12)")
	seriesCmd.Flags().StringVar(&flagList, "list", "", "only these 1-based issue positions (e.g. 1,3,5)")

	// runtime
	seriesCmd.Flags().IntVar(&flagWorkers, "workers", 0, "parallel issue fetches (default from config)")
	seriesCmd.Flags().BoolVar(&flagSkipBroken, "skip-broken", false, "report failed issues instead of failing the run")
	seriesCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the selected issue URLs, don't fetch them")
	seriesCmd.Flags().StringVar(&flagOutput, "output", "", "write the JSON array to this file instead of stdout")
	seriesCmd.Flags().BoolVar(&flagPretty, "pretty", false, "indent JSON output")

	rootCmd.AddCommand(seriesCmd)
}

func runSeries(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd, config.Options{Workers: flagWorkers})
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()

	issues, err := rt.engine.Issues(ctx, args[0])
	if err != nil {
		return err
	}
	if flagRange == "" && flagList == "" {
		fmt.Fprintf(stderr, "Found %d issues on the page.\n\n", len(issues.URLs))
	}

	selected, err := selection.Filter(issues.URLs, flagRange, flagList)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return errors.New("no issues selected")
	}

	if flagDryRun {
		fmt.Fprintf(stderr, "Dry-run: %d issues selected.\n\n", len(selected))
		for i, u := range selected {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d) %s\n", i+1, u)
		}
		return nil
	}

	rt.log.Debug("fetching issues", slog.Int("selected", len(selected)), slog.Int("workers", rt.cfg.Workers))

	pm := ui.NewProgressManager(stderr)
	handle := pm.Register("Issues")
	stats := ui.NewStats()

	res, runErr := batch.New(rt.engine, rt.cfg.Workers, flagSkipBroken, rt.log).Run(ctx, selected, handle)
	pm.Close()

	stats.Issues.Add(int64(len(res.Details)))
	stats.Failed.Add(int64(len(res.Failures)))

	if runErr != nil {
		fmt.Fprintln(stderr)
		stats.Print(stderr)
		return runErr
	}

	if err := writeSeries(cmd, res.Details, stats); err != nil {
		return err
	}

	fmt.Fprintln(stderr)
	stats.Print(stderr)
	for _, f := range res.Failures {
		fmt.Fprintf(stderr, "  skipped %s: %v\n", f.URL, f.Err)
	}
	return nil
}

func writeSeries(cmd *cobra.Command, details []roundup.ComicInfo, stats *ui.Stats) error {
	var buf bytes.Buffer
	if err := printJSON(&buf, details, flagPretty); err != nil {
		return err
	}
	stats.Bytes.Add(int64(buf.Len()))

	if flagOutput == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if err := util.WriteFileAtomic(flagOutput, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", flagOutput, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", flagOutput)
	return nil
}
