package roundup

import (
	"context"
	"errors"
	"strings"
)

// Fetcher returns the decoded body of a single GET.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type Options struct {
	// Origin is prefixed to every relative link found in listings.
	Origin   string
	Registry Registry
}

// Engine fetches pages and runs the extractors over them. It keeps no
// state besides what it was built with.
type Engine struct {
	fetcher  Fetcher
	origin   string
	registry Registry
}

func NewEngine(f Fetcher, opts Options) (*Engine, error) {
	if f == nil {
		return nil, errors.New("fetcher cannot be nil")
	}

	origin := strings.TrimSpace(opts.Origin)
	if origin == "" {
		origin = DefaultOrigin
	}

	reg := opts.Registry
	if reg.Len() == 0 {
		reg = DefaultRegistry()
	}

	return &Engine{fetcher: f, origin: origin, registry: reg}, nil
}

func (e *Engine) Origin() string { return e.origin }

func (e *Engine) Publishers() []Publisher { return e.registry.Publishers() }

func (e *Engine) Details(ctx context.Context, url string) (ComicInfo, error) {
	raw, err := e.fetch(ctx, url)
	if err != nil {
		return ComicInfo{}, err
	}
	return AssembleIssue(raw)
}

func (e *Engine) Issues(ctx context.Context, url string) (ComicIssues, error) {
	raw, err := e.fetch(ctx, url)
	if err != nil {
		return ComicIssues{}, err
	}
	return AssembleComicIssues(e.origin, raw)
}

// Comics resolves name through the registry before any network access.
func (e *Engine) Comics(ctx context.Context, name string) (PublisherComics, error) {
	u, err := e.registry.Lookup(name)
	if err != nil {
		return PublisherComics{}, err
	}

	raw, err := e.fetch(ctx, u)
	if err != nil {
		return PublisherComics{}, err
	}
	return AssemblePublisherComics(e.origin, raw)
}

func (e *Engine) fetch(ctx context.Context, url string) (string, error) {
	raw, err := e.fetcher.Fetch(ctx, url)
	if err != nil {
		if KindOf(err) != "" {
			return "", err
		}
		return "", newError(KindNetwork, "fetch "+url, err)
	}
	return raw, nil
}
