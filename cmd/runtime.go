package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/brogergvhs/comicrev/internal/config"
	"github.com/brogergvhs/comicrev/internal/fetch"
	"github.com/brogergvhs/comicrev/internal/roundup"
	"github.com/brogergvhs/comicrev/internal/ui"
	"github.com/brogergvhs/comicrev/internal/util"
)

// runtime is everything a command needs after config resolution.
type runtime struct {
	cfg    *config.Config
	used   string
	log    *slog.Logger
	engine *roundup.Engine
}

func loadConfig(extra config.Options) (*config.Config, string, error) {
	extra.IgnoreConfig = flagIgnoreConfig
	extra.Debug = extra.Debug || flagDebug
	extra.Origin = flagOrigin
	extra.Timeout = flagTimeout
	extra.UserAgent = flagUserAgent
	extra.Cookie = flagCookie
	extra.CookieFile = flagCookieFile

	return config.LoadMerged(extra)
}

func newRuntime(cmd *cobra.Command, extra config.Options) (*runtime, error) {
	cfg, used, err := loadConfig(extra)
	if err != nil {
		return nil, err
	}

	log := ui.NewLogger(ui.LoggerOptions{
		Debug:  cfg.Debug,
		JSON:   cfg.JSONLogs,
		Output: cmd.ErrOrStderr(),
	})
	log.Debug("config loaded", slog.String("source", used))

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:    cfg.Timeout,
		UserAgent:  util.PickUserAgent(cfg.UserAgent),
		Cookie:     cfg.Cookie,
		CookieFile: cfg.CookieFile,
		Logger:     log,
	})
	if err != nil {
		return nil, err
	}

	fetcher := fetch.New(fetch.Options{
		HTTPClient: client,
		Timeout:    cfg.Timeout,
		Logger:     log,
	})

	engine, err := roundup.NewEngine(fetcher, roundup.Options{Origin: cfg.Origin})
	if err != nil {
		return nil, err
	}

	return &runtime{cfg: cfg, used: used, log: log, engine: engine}, nil
}

func printJSON(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
