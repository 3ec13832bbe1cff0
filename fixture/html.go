package fixture

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attributes read from HTML fixtures.
const (
	attrExpectedWidth  = "data-expected-width"
	attrExpectedHeight = "data-expected-height"
	attrOffsetX        = "data-offset-x"
	attrOffsetY        = "data-offset-y"
	attrViewportWidth  = "data-viewport-width"
	attrViewportHeight = "data-viewport-height"
)

// ParseHTML reads a fixture from an HTML document. The element with
// id="test-root", or else the first element in <body>, is the root. The
// document <title> names the fixture.
func ParseHTML(r io.Reader) (*Fixture, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}

	root := findElement(doc, func(n *html.Node) bool { return attr(n, "id") == "test-root" })
	if root == nil {
		if body := findElement(doc, func(n *html.Node) bool { return n.DataAtom == atom.Body }); body != nil {
			root = firstElementChild(body)
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}

	fx := &Fixture{
		Viewport: Viewport{Width: attr(root, attrViewportWidth), Height: attr(root, attrViewportHeight)},
	}
	if title := findElement(doc, func(n *html.Node) bool { return n.DataAtom == atom.Title }); title != nil {
		fx.Name = strings.TrimSpace(textContent(title))
	}
	fx.Root, err = convertElement(root)
	if err != nil {
		return nil, err
	}
	return fx, nil
}

func convertElement(el *html.Node) (*Node, error) {
	n := &Node{ID: attr(el, "id"), Style: attr(el, "style")}
	if hasAttr(el, "hidden") {
		n.Style = "display: none; " + n.Style
	}

	expect, err := expectation(el)
	if err != nil {
		return nil, fmt.Errorf("<%s id=%q>: %w", el.Data, n.ID, err)
	}
	n.Expect = expect

	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			text := strings.TrimSpace(c.Data)
			if text == "" {
				continue
			}
			n.Children = append(n.Children, &Node{Text: text})
		case html.ElementNode:
			if c.DataAtom == atom.Script || c.DataAtom == atom.Style {
				continue
			}
			child, err := convertElement(c)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	}

	// An element holding only text is itself the measured leaf.
	if len(n.Children) == 1 && n.Children[0].ID == "" && n.Children[0].Text != "" && n.Children[0].Children == nil {
		n.Text = n.Children[0].Text
		n.Children = nil
	}
	return n, nil
}

func expectation(el *html.Node) (*Box, error) {
	var box Box
	found := false
	for _, f := range []struct {
		key string
		dst **float32
	}{
		{attrOffsetX, &box.X},
		{attrOffsetY, &box.Y},
		{attrExpectedWidth, &box.Width},
		{attrExpectedHeight, &box.Height},
	} {
		s, ok := lookupAttr(el, f.key)
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid number %q", f.key, s)
		}
		val := float32(v)
		*f.dst = &val
		found = true
	}
	if !found {
		return nil, nil
	}
	return &box, nil
}

func findElement(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, match); found != nil {
			return found
		}
	}
	return nil
}

func firstElementChild(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom != atom.Script && c.DataAtom != atom.Style {
			return c
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return sb.String()
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := lookupAttr(n, key)
	return ok
}
