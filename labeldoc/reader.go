// Package labeldoc parses report documents whose content is carried entirely
// by positioned <label> elements.
package labeldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Reader provides access to the label elements of a report document.
type Reader struct {
	name   string
	labels []Label
}

// Open opens a report file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	r, err := OpenReader(f)
	if err != nil {
		return nil, err
	}
	r.name = filename
	return r, nil
}

// OpenReader parses a report from an io.Reader. The byte stream is decoded to
// UTF-8 first: legacy report generators emit windows-1252 and rely on the
// consumer to cope.
func OpenReader(r io.Reader) (*Reader, error) {
	decoded, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	doc, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{}
	reader.collectLabels(doc)
	return reader, nil
}

// Name returns the source filename, or "" when the Reader was built from a
// raw stream.
func (r *Reader) Name() string {
	return r.name
}

// Labels returns every label element in document order.
func (r *Reader) Labels() []Label {
	return r.labels
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close (no file handles kept)
	return nil
}

// collectLabels walks the DOM and records each <label> with its style
// attribute and text content.
func (r *Reader) collectLabels(n *html.Node) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "label" {
			r.labels = append(r.labels, Label{
				Style: attrValue(n, "style"),
				Text:  textContent(n),
			})
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectLabels(c)
	}
}

// shouldSkipElement returns true for elements whose subtree carries no
// report content.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "iframe", "object", "embed":
		return true
	}
	return false
}

// attrValue returns the value of the named attribute, or "" when absent.
func attrValue(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// textContent extracts the text of a node and its descendants. No trimming:
// leading and trailing whitespace, including non-breaking spaces, is
// meaningful to the header reconstruction downstream.
func textContent(n *html.Node) string {
	var sb strings.Builder
	textContentRecursive(n, &sb)
	return sb.String()
}

func textContentRecursive(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode && shouldSkipElement(n.Data) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContentRecursive(c, sb)
	}
}
