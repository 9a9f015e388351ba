package cmd

import (
	"github.com/spf13/cobra"

	"github.com/brogergvhs/comicrev/internal/config"
	"github.com/brogergvhs/comicrev/internal/server"
)

var (
	flagListen   string
	flagJSONLogs bool
)

func init() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API (POST /details, /issues, /comics)",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}

	serveCmd.Flags().StringVar(&flagListen, "listen", "", "listen address (default 127.0.0.1:8080)")
	serveCmd.Flags().BoolVar(&flagJSONLogs, "json-logs", false, "write logs as JSON lines")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	rt, err := newRuntime(cmd, config.Options{
		Listen:   flagListen,
		JSONLogs: flagJSONLogs,
	})
	if err != nil {
		return err
	}

	srv := server.New(rt.engine, server.Options{
		Addr:           rt.cfg.Listen,
		RequestTimeout: rt.cfg.Timeout,
		Logger:         rt.log,
	})
	return srv.Run(cmd.Context())
}
