package roundup

import (
	"regexp"
	"strings"
)

var (
	reCount = regexp.MustCompile(`\d+`)
	reScore = regexp.MustCompile(`\d+\.\d|\d+`)
)

// ValueFunc derives a field value from the elements at one structural
// location, using label to pick the element.
type ValueFunc func(elems []Element, label string) (string, bool)

// RawValue takes the last text segment of the first element whose text
// contains label.
func RawValue(elems []Element, label string) (string, bool) {
	for _, el := range elems {
		if !strings.Contains(el.Text(), label) {
			continue
		}
		return el.LastSegment()
	}
	return "", false
}

// CountValue takes the first digit run in the last text segment of the
// first labelled element that has one.
func CountValue(elems []Element, label string) (string, bool) {
	for _, el := range elems {
		if !strings.Contains(el.Text(), label) {
			continue
		}
		last, ok := el.LastSegment()
		if !ok {
			continue
		}
		if m := reCount.FindString(last); m != "" {
			return m, true
		}
	}
	return "", false
}

// ScoreValue takes the first numeric token in the full text of the first
// labelled element. A labelled element without a number scores "0".
func ScoreValue(elems []Element, label string) (string, bool) {
	for _, el := range elems {
		text := el.Text()
		if !strings.Contains(text, label) {
			continue
		}
		if m := reScore.FindString(text); m != "" {
			return m, true
		}
		return "0", true
	}
	return "", false
}

// Rule binds a structural location and a label to a value shape. Every
// selector/label pair used on an issue page is declared once below.
type Rule struct {
	Path  Path
	Label string
	Value ValueFunc
}

func (r Rule) Extract(doc *Document) *string {
	return optional(r.Value(doc.Query(r.Path), r.Label))
}

var (
	seriesButtonPath = MustPath("div.series-buttons a.series")
	issueHeaderPath  = MustPath(".issue div.container div.right h1 span")
	infoFieldPath    = MustPath(".issue div.container div.right div.left span")
	reviewTabPath    = MustPath(".divider div.container ul.tabs li")
	scoreBlockPath   = MustPath(".issue div.container div.right div.right div")
	seriesLinkPath   = MustPath("div.section > table > tbody > tr > td.series > a")
	issueLinkPath    = MustPath("div.section > table > tbody > tr > td.issue > a")
)

var (
	WriterRule       = Rule{Path: infoFieldPath, Label: "Writer", Value: RawValue}
	ArtistRule       = Rule{Path: infoFieldPath, Label: "Artist", Value: RawValue}
	PublisherRule    = Rule{Path: infoFieldPath, Label: "Publisher", Value: RawValue}
	ReleaseDateRule  = Rule{Path: infoFieldPath, Label: "Release Date", Value: RawValue}
	CoverPriceRule   = Rule{Path: infoFieldPath, Label: "Cover Price", Value: RawValue}
	CriticCountRule  = Rule{Path: reviewTabPath, Label: "Critic Reviews", Value: CountValue}
	UserCountRule    = Rule{Path: reviewTabPath, Label: "User Reviews", Value: CountValue}
	CriticRatingRule = Rule{Path: scoreBlockPath, Label: "Critic Rating", Value: ScoreValue}
	UserRatingRule   = Rule{Path: scoreBlockPath, Label: "User Rating", Value: ScoreValue}
)

const nameSeparator = ", "

func splitNames(raw *string) []string {
	if raw == nil {
		return nil
	}
	return strings.Split(*raw, nameSeparator)
}

// issueID is the trailing path segment of the series button's href.
func issueID(doc *Document) *string {
	el, ok := doc.First(seriesButtonPath)
	if !ok {
		return nil
	}
	href, ok := el.Attr("href")
	if !ok {
		return nil
	}

	id := href
	if i := strings.LastIndex(href, "/"); i >= 0 {
		id = href[i+1:]
	}
	return &id
}

func issueName(doc *Document) *string {
	el, ok := doc.First(issueHeaderPath)
	if !ok {
		return nil
	}
	name := el.Text()
	return &name
}
