package pipeline

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ElementKind identifies the kind of structural element located in
// rendered HTML.
type ElementKind int

const (
	// ElementTable is a <table> element.
	ElementTable ElementKind = iota
	// ElementCode is a <pre> code block (fenced or indented).
	ElementCode
)

// String returns the kind name used in output file names.
func (k ElementKind) String() string {
	if k == ElementTable {
		return "table"
	}
	return "code"
}

// Element is a structural element extracted from rendered HTML, ready to be
// wrapped in a standalone document and screenshotted.
type Element struct {
	Kind ElementKind
	HTML string // serialized outer HTML of the element
	// Units drives the viewport height estimate: table rows (tr count) for
	// tables, text lines for code blocks.
	Units int
}

// CollectElements parses rendered HTML and returns its <table> elements and
// <pre> code blocks in document order. Inline <code> outside a <pre> is not
// a block and is ignored.
func CollectElements(htmlContent string) ([]Element, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parsing rendered HTML: %w", err)
	}

	var elements []Element
	var walk func(n *html.Node) error
	walk = func(n *html.Node) error {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "table":
				serialized, err := renderNode(n)
				if err != nil {
					return err
				}
				elements = append(elements, Element{
					Kind:  ElementTable,
					HTML:  serialized,
					Units: countTag(n, "tr"),
				})
				return nil // table rows already counted, don't descend
			case "pre":
				serialized, err := renderNode(n)
				if err != nil {
					return err
				}
				text := textContent(n)
				elements = append(elements, Element{
					Kind:  ElementCode,
					HTML:  serialized,
					Units: strings.Count(text, "\n") + 1,
				})
				return nil
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(doc); err != nil {
		return nil, err
	}
	return elements, nil
}

// renderNode serializes a node back to HTML.
func renderNode(n *html.Node) (string, error) {
	var buf strings.Builder
	if err := html.Render(&buf, n); err != nil {
		return "", fmt.Errorf("serializing element: %w", err)
	}
	return buf.String(), nil
}

// countTag counts descendant elements with the given tag name.
func countTag(n *html.Node, tag string) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			count++
		}
		count += countTag(c, tag)
	}
	return count
}

// textContent concatenates the text nodes under n.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
