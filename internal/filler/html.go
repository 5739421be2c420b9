package filler

import (
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// HTMLDocument is a parsed page. Writing a value sets the input's value
// attribute; dispatched events are recorded on each input.
type HTMLDocument struct {
	root   *html.Node
	inputs []*HTMLInput
}

// ParseHTML parses r and indexes its <input> elements.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc := &HTMLDocument{root: root}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && strings.EqualFold(n.Data, "input") {
			doc.inputs = append(doc.inputs, &HTMLInput{node: n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return doc, nil
}

// ParseHTMLString is ParseHTML over a string.
func ParseHTMLString(s string) (*HTMLDocument, error) {
	return ParseHTML(strings.NewReader(s))
}

func (d *HTMLDocument) Inputs(ctx context.Context) ([]Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]Element, len(d.inputs))
	for i, in := range d.inputs {
		out[i] = in
	}
	return out, nil
}

// Input returns the i-th input in document order.
func (d *HTMLDocument) Input(i int) *HTMLInput {
	if i < 0 || i >= len(d.inputs) {
		return nil
	}
	return d.inputs[i]
}

// Render writes the (possibly filled) document back out as HTML.
func (d *HTMLDocument) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document, returning "" if rendering fails.
func (d *HTMLDocument) String() string {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return ""
	}
	return b.String()
}

// HTMLInput is one <input> node of an HTMLDocument.
type HTMLInput struct {
	node    *html.Node
	focused bool
	events  []string
}

func (in *HTMLInput) Field() Field {
	return Field{
		Type:        in.attr("type"),
		Name:        in.attr("name"),
		ID:          in.attr("id"),
		Placeholder: in.attr("placeholder"),
		Class:       in.attr("class"),
		TestID:      in.attr("data-testid"),
		AriaLabel:   in.attr("aria-label"),
	}
}

// Value is the input's current value attribute.
func (in *HTMLInput) Value() string { return in.attr("value") }

// Events lists dispatched event types in order.
func (in *HTMLInput) Events() []string { return in.events }

func (in *HTMLInput) Focused() bool { return in.focused }

func (in *HTMLInput) Focus(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	in.focused = true
	return nil
}

func (in *HTMLInput) SetValue(ctx context.Context, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	in.setAttr("value", value)
	return nil
}

// SetNativeValue has no framework layer to bypass in a static tree; it is the
// same attribute write as SetValue.
func (in *HTMLInput) SetNativeValue(ctx context.Context, value string) error {
	return in.SetValue(ctx, value)
}

func (in *HTMLInput) Dispatch(ctx context.Context, event string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	in.events = append(in.events, event)
	return nil
}

func (in *HTMLInput) attr(key string) string {
	for _, a := range in.node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func (in *HTMLInput) setAttr(key, val string) {
	for i, a := range in.node.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, key) {
			in.node.Attr[i].Val = val
			return
		}
	}
	in.node.Attr = append(in.node.Attr, html.Attribute{Key: key, Val: val})
}
