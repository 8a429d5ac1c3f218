package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) || unicode.IsSpace(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// CleanText collapses whitespace runs to a single space and strips
// non-printable characters, the normal form for label and cell text.
func CleanText(s string) string {
	s = removeNonPrintable(s)
	s = strings.Trim(s, " \t\n")
	return innerWhitespace.ReplaceAllString(s, " ")
}

// NodeText is GetText followed by CleanText.
func NodeText(node *html.Node) string {
	return CleanText(GetText(node))
}

// NextNode returns the node that follows n in document order: first child,
// then next sibling, then the next sibling of the closest ancestor that has
// one. Returns nil at the end of the tree.
func NextNode(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}

// NextElement returns the next element with the given tag after n in
// document order, or nil if none remains.
func NextElement(n *html.Node, tag string) *html.Node {
	for next := NextNode(n); next != nil; next = NextNode(next) {
		if next.Type == html.ElementNode && next.Data == tag {
			return next
		}
	}
	return nil
}

// ElementsWithin collects every element with the given tag in the subtree
// rooted at n, in document order. n itself is not included.
func ElementsWithin(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		for child := cur.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == html.ElementNode && child.Data == tag {
				out = append(out, child)
			}
			walk(child)
		}
	}
	walk(n)
	return out
}

// ClosestAncestor walks up the parent chain until it finds an element with
// the given tag, or returns nil at the document root.
func ClosestAncestor(n *html.Node, tag string) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == tag {
			return p
		}
	}
	return nil
}

// HasAttrContaining reports whether the node carries the attribute and its
// value contains the given substring.
func HasAttrContaining(n *html.Node, key, substr string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return strings.Contains(a.Val, substr)
		}
	}
	return false
}
