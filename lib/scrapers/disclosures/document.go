package disclosures

import (
	"io"
	"polstats-backend/lib/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document wraps one parsed filing page. Filing markup is inconsistent
// across years and filing types, so the accessors here are keyword and
// position based rather than tied to a fixed page structure. A Document is
// read-only; every extractor is a pure function over it.
type Document struct {
	doc *goquery.Document
}

// Parse reads a filing page into a Document. This is the only failure that
// aborts extraction outright; everything downstream degrades to empty
// values instead of erroring.
func Parse(r io.Reader) (Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Document{}, err
	}
	return Document{doc: doc}, nil
}

func (d Document) Title() string {
	return htmlutil.CleanText(d.doc.Find("title").First().Text())
}

// Labels returns every label element on the page in document order.
func (d Document) Labels() []*html.Node {
	var labels []*html.Node
	d.doc.Find("label").Each(func(_ int, sel *goquery.Selection) {
		labels = append(labels, sel.Nodes[0])
	})
	return labels
}

func labelText(n *html.Node) string {
	return htmlutil.NodeText(n)
}

// labelValue resolves a label's value from the text of its nearest div
// ancestor: the container text with the label's own text stripped off the
// front when it leads, the full container text otherwise. A label with no
// container resolves to nothing.
func labelValue(n *html.Node) string {
	container := htmlutil.ClosestAncestor(n, "div")
	if container == nil {
		return ""
	}
	full := htmlutil.NodeText(container)
	text := htmlutil.NodeText(n)
	if text != "" && strings.HasPrefix(full, text) {
		return strings.TrimSpace(strings.TrimPrefix(full, text))
	}
	return full
}

// HeadingContaining returns the first h1 whose text contains the keyword,
// case-insensitively, or nil when the page has no such heading.
func (d Document) HeadingContaining(keyword string) *html.Node {
	keyword = strings.ToLower(keyword)
	var found *html.Node
	d.doc.Find("h1").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), keyword) {
			found = sel.Nodes[0]
			return false
		}
		return true
	})
	return found
}

// TableAfter returns the first table following n in document order, which
// is how filings attach tables to their headings (there is no shared
// container to select on).
func (d Document) TableAfter(n *html.Node) *html.Node {
	return htmlutil.NextElement(n, "table")
}

// TransactionTable returns the first table whose header text contains
// `include` and, when `exclude` is non-empty, does not contain it. The
// contribution table needs the exclusion because expenditure headers also
// mention contributions on some layouts.
func (d Document) TransactionTable(include, exclude string) *goquery.Selection {
	var found *goquery.Selection
	d.doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		header := table.Find("thead").Text()
		if !strings.Contains(header, include) {
			return true
		}
		if exclude != "" && strings.Contains(header, exclude) {
			return true
		}
		found = table
		return false
	})
	return found
}

// BoldSpans returns spans styled bold inline. Officer and principal
// sections are delimited by these markers rather than by any container.
func (d Document) BoldSpans() []*html.Node {
	var spans []*html.Node
	d.doc.Find("span[style]").Each(func(_ int, sel *goquery.Selection) {
		if htmlutil.HasAttrContaining(sel.Nodes[0], "style", "font-weight: bold") {
			spans = append(spans, sel.Nodes[0])
		}
	})
	return spans
}

func cellText(sel *goquery.Selection) string {
	return htmlutil.CleanText(sel.Text())
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
