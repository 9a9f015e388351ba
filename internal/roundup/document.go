package roundup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Path is a structural selector compiled ahead of use.
type Path struct {
	expr string
	sel  cascadia.Selector
}

// MustPath compiles expr and panics on a malformed expression. Paths are
// declared at package level so a typo fails at init, never per request.
func MustPath(expr string) Path {
	return Path{expr: expr, sel: cascadia.MustCompile(expr)}
}

func CompilePath(expr string) (Path, error) {
	sel, err := cascadia.Compile(expr)
	if err != nil {
		return Path{}, newError(KindInternal, "compile path "+expr, err)
	}
	return Path{expr: expr, sel: sel}, nil
}

func (p Path) String() string { return p.expr }

type Document struct {
	doc *goquery.Document
}

func Parse(raw string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, newError(KindInternal, "parse document", err)
	}
	return &Document{doc: doc}, nil
}

// Query returns every element matching p in document order.
func (d *Document) Query(p Path) []Element {
	if d == nil || d.doc == nil || p.sel == nil {
		return nil
	}

	found := d.doc.FindMatcher(p.sel)
	out := make([]Element, 0, found.Length())
	found.Each(func(_ int, s *goquery.Selection) {
		out = append(out, Element{sel: s})
	})

	return out
}

// First returns the first element matching p.
func (d *Document) First(p Path) (Element, bool) {
	els := d.Query(p)
	if len(els) == 0 {
		return Element{}, false
	}
	return els[0], true
}

type Element struct {
	sel *goquery.Selection
}

// Text is the concatenation of every descendant text node.
func (e Element) Text() string {
	if e.sel == nil {
		return ""
	}
	return e.sel.Text()
}

// Segments lists the descendant text nodes in document order, trimmed,
// skipping whitespace-only nodes.
func (e Element) Segments() []string {
	if e.sel == nil {
		return nil
	}

	var out []string
	for _, n := range e.sel.Nodes {
		collectText(n, &out)
	}
	return out
}

func (e Element) FirstSegment() (string, bool) {
	segs := e.Segments()
	if len(segs) == 0 {
		return "", false
	}
	return segs[0], true
}

func (e Element) LastSegment() (string, bool) {
	segs := e.Segments()
	if len(segs) == 0 {
		return "", false
	}
	return segs[len(segs)-1], true
}

func (e Element) Attr(name string) (string, bool) {
	if e.sel == nil {
		return "", false
	}
	return e.sel.Attr(name)
}

func collectText(n *html.Node, out *[]string) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		if s := strings.TrimSpace(n.Data); s != "" {
			*out = append(*out, s)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, out)
	}
}
