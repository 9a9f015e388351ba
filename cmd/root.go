package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool

	// upstream
	flagOrigin     string
	flagTimeout    time.Duration
	flagUserAgent  string
	flagCookie     string
	flagCookieFile string
)

var rootCmd = &cobra.Command{
	Use:           "comicrev",
	Short:         "Comic Book Roundup scraper with a JSON HTTP API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	pf.BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only env and CLI flags")

	pf.StringVar(&flagOrigin, "origin", "", "site origin used to absolutize listing links")
	pf.DurationVar(&flagTimeout, "timeout", 0, "upstream request timeout (e.g. 30s)")
	pf.StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	pf.StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	pf.StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
}

// Execute runs the CLI. SIGINT and SIGTERM cancel the command context, which
// stops the server gracefully and aborts in-flight fetches.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
