package roundup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brogergvhs/comicrev/internal/roundup"
)

func query(t *testing.T, raw, expr string) []roundup.Element {
	t.Helper()

	doc, err := roundup.Parse(raw)
	require.NoError(t, err)
	p, err := roundup.CompilePath(expr)
	require.NoError(t, err)

	return doc.Query(p)
}

func TestRawValue(t *testing.T) {
	elems := query(t, `<div>
		<span><b>Artist:</b> Someone</span>
		<span><b>Writer:</b> Jane Doe, John Roe</span>
		<span><b>Writer:</b> Ignored</span>
	</div>`, "div span")

	v, ok := roundup.RawValue(elems, "Writer")
	require.True(t, ok)
	assert.Equal(t, "Jane Doe, John Roe", v)

	_, ok = roundup.RawValue(elems, "Colorist")
	assert.False(t, ok)
}

func TestCountValue(t *testing.T) {
	cases := []struct {
		name  string
		html  string
		label string
		want  string
		found bool
	}{
		{name: "digits in parentheses", html: `<ul><li>Critic Reviews (12)</li></ul>`, label: "Critic Reviews", want: "12", found: true},
		{name: "count in trailing node", html: `<ul><li><a>User Reviews</a> <span>7 total</span></li></ul>`, label: "User Reviews", want: "7", found: true},
		{name: "no digits", html: `<ul><li>Critic Reviews</li></ul>`, label: "Critic Reviews", found: false},
		{name: "label missing", html: `<ul><li>User Reviews (3)</li></ul>`, label: "Critic Reviews", found: false},
		{name: "first labelled tab with digits", html: `<ul><li>Critic Reviews</li><li>Critic Reviews (4)</li></ul>`, label: "Critic Reviews", want: "4", found: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := roundup.CountValue(query(t, tc.html, "ul li"), tc.label)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestScoreValue(t *testing.T) {
	cases := []struct {
		name  string
		html  string
		label string
		want  string
		found bool
	}{
		{name: "decimal", html: `<section><div>Critic Rating 8.5</div></section>`, label: "Critic Rating", want: "8.5", found: true},
		{name: "integer", html: `<section><div>User Rating <b>10</b></div></section>`, label: "User Rating", want: "10", found: true},
		{name: "one fractional digit kept", html: `<section><div>User Rating 7.25</div></section>`, label: "User Rating", want: "7.2", found: true},
		{name: "labelled without number", html: `<section><div>Critic Rating N/A</div></section>`, label: "Critic Rating", want: "0", found: true},
		{name: "label missing", html: `<section><div>User Rating 5</div></section>`, label: "Critic Rating", found: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := roundup.ScoreValue(query(t, tc.html, "section div"), tc.label)
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestQuery_NoMatchIsEmpty(t *testing.T) {
	assert.Empty(t, query(t, `<p>nothing here</p>`, "div.series-buttons a.series"))
}

func TestCompilePath_Invalid(t *testing.T) {
	_, err := roundup.CompilePath("div[")
	require.Error(t, err)
	assert.Equal(t, roundup.KindInternal, roundup.KindOf(err))

	assert.Panics(t, func() { roundup.MustPath("div[") })
}

func TestElement_Segments(t *testing.T) {
	elems := query(t, `<p><strong>Writer:</strong>
		Jane Doe <em> </em></p>`, "p")
	require.Len(t, elems, 1)

	assert.Equal(t, []string{"Writer:", "Jane Doe"}, elems[0].Segments())
	first, ok := elems[0].FirstSegment()
	require.True(t, ok)
	assert.Equal(t, "Writer:", first)
}
