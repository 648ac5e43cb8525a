// Package feed turns parsed feed documents into the element trees the
// atomschema checks consume.
package feed

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/foomo/atomlint/atomschema"
)

type Attribute struct {
	Name  string
	Value string
}

// Element is a plain element tree node, field names follow html.Node.
// Attr keeps repeated attribute names in document order, Child only
// holds element nodes, Text collects the direct text content.
type Element struct {
	Data  string
	Text  string
	Attr  []Attribute
	Child []*Element
}

func (el *Element) Name() string {
	return el.Data
}

func (el *Element) Children() (children []atomschema.Element) {
	for _, child := range el.Child {
		children = append(children, child)
	}
	return children
}

func (el *Element) ChildrenByName(name string) (children []atomschema.Element) {
	for _, child := range el.Child {
		if child.Data == name {
			children = append(children, child)
		}
	}
	return children
}

func (el *Element) AttributeValues(name string) (values []string) {
	for _, attr := range el.Attr {
		if attr.Name == name {
			values = append(values, attr.Value)
		}
	}
	return values
}

// NewElementFromNode converts a html node into an Element, non element
// nodes yield nil.
func NewElementFromNode(n *html.Node) *Element {
	if n.Type != html.ElementNode {
		return nil
	}
	el := &Element{
		Data: n.Data,
	}
	for _, attr := range n.Attr {
		el.Attr = append(el.Attr, Attribute{Name: attr.Key, Value: attr.Val})
	}
	text := []string{}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			if trimmed := strings.TrimSpace(c.Data); trimmed != "" {
				text = append(text, trimmed)
			}
			continue
		}
		if childEl := NewElementFromNode(c); childEl != nil {
			el.Child = append(el.Child, childEl)
		}
	}
	el.Text = strings.Join(text, " ")
	return el
}
