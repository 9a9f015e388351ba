package roundup

import (
	"fmt"
	"sort"
	"strings"
)

const DefaultOrigin = "https://comicbookroundup.com"

const listingPrefix = DefaultOrigin + "/comic-books/reviews/"

var knownPublishers = map[string]string{
	"marvel":     listingPrefix + "marvel-comics/all-series",
	"dc":         listingPrefix + "dc-comics/all-series",
	"image":      listingPrefix + "image-comics/all-series",
	"idw":        listingPrefix + "idw-publishing/all-series",
	"dark horse": listingPrefix + "dark-horse-comics/all-series",
	"boom":       listingPrefix + "boom-studios/all-series",
	"dynamite":   listingPrefix + "dynamite-entertainment/all-series",
	"valiant":    listingPrefix + "valiant-comics/all-series",
	"vertigo":    listingPrefix + "vertigo/all-series",
	"oni":        listingPrefix + "oni-press/all-series",
	"aftershock": listingPrefix + "aftershock-comics/all-series",
	"archie":     listingPrefix + "archie-comics/all-series",
	"titan":      listingPrefix + "titan-books/all-series",
	"zenescope":  listingPrefix + "zenescope-entertainment/all-series",
	"black mask": listingPrefix + "black-mask-studios/all-series",
	"red 5":      listingPrefix + "red-5-comics/all-series",
	"vault":      listingPrefix + "vault-comics/all-series",
}

// Registry maps a publisher key to its all-series listing page. It is
// read-only after construction.
type Registry struct {
	urls map[string]string
}

func NewRegistry(entries map[string]string) (Registry, error) {
	urls := make(map[string]string, len(entries))
	for key, u := range entries {
		if strings.TrimSpace(key) == "" {
			return Registry{}, fmt.Errorf("publisher key cannot be empty")
		}
		if strings.TrimSpace(u) == "" {
			return Registry{}, fmt.Errorf("publisher %q has no listing url", key)
		}
		urls[key] = u
	}

	return Registry{urls: urls}, nil
}

// DefaultRegistry holds the publishers known to Comic Book Roundup.
func DefaultRegistry() Registry {
	r, err := NewRegistry(knownPublishers)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup is an exact, case-sensitive match on key.
func (r Registry) Lookup(key string) (string, error) {
	u, ok := r.urls[key]
	if !ok {
		return "", newError(KindPublisherNotFound, "lookup "+key, ErrPublisherNotFound)
	}
	return u, nil
}

func (r Registry) Len() int { return len(r.urls) }

// Publishers lists every entry sorted by key.
func (r Registry) Publishers() []Publisher {
	out := make([]Publisher, 0, len(r.urls))
	for name, u := range r.urls {
		out = append(out, Publisher{Name: name, URL: u})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
