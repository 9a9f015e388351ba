package roundup

import (
	"fmt"
	"strings"
)

// AssemblePublisherComics reads a publisher's all-series page. Entries keep
// document order and every URL is origin + href.
func AssemblePublisherComics(origin, raw string) (PublisherComics, error) {
	doc, err := Parse(raw)
	if err != nil {
		return PublisherComics{}, err
	}

	anchors := doc.Query(seriesLinkPath)
	comics := make([]Comic, 0, len(anchors))
	for i, a := range anchors {
		href, ok := a.Attr("href")
		if !ok {
			return PublisherComics{}, missingHref("series", i)
		}
		name, _ := a.FirstSegment()
		comics = append(comics, Comic{Name: name, URL: absolute(origin, href)})
	}

	return PublisherComics{Comics: comics}, nil
}

// AssembleComicIssues reads a series page and lists its issue URLs.
func AssembleComicIssues(origin, raw string) (ComicIssues, error) {
	doc, err := Parse(raw)
	if err != nil {
		return ComicIssues{}, err
	}

	anchors := doc.Query(issueLinkPath)
	urls := make([]string, 0, len(anchors))
	for i, a := range anchors {
		href, ok := a.Attr("href")
		if !ok {
			return ComicIssues{}, missingHref("issue", i)
		}
		urls = append(urls, absolute(origin, href))
	}

	return ComicIssues{URLs: urls}, nil
}

func absolute(origin, href string) string {
	return strings.TrimRight(origin, "/") + href
}

func missingHref(column string, row int) error {
	return newError(KindStructureMissing, fmt.Sprintf("%s link %d", column, row+1), ErrMissingHref)
}
