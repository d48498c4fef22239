package doctree

import (
	"bytes"
	"fmt"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// EncodeHTML renders a document tree to a structural HTML string, the
// "straightforward structural encoding" spec.md §6 allows for persistence.
// This is sugar above the core: nothing in Path/Operation/Point/Range/
// Text/Node depends on it. Grounded on the teacher's dom.go, which built
// and rendered golang.org/x/net/html.Node trees the same way.
//
// Editor becomes a <div data-kind="editor">, each Element becomes a <span
// data-kind="..."> carrying its other Props as data-* attributes, and each
// Text leaf becomes a text node optionally wrapped in <b>/<i>/<u> for its
// mark bits and in a <span data-deco="..."> for its metadata tags.
func EncodeHTML(root Node) (string, error) {
	dom, err := encodeNode(root)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, dom); err != nil {
		return "", fmt.Errorf("doctree: render html: %w", err)
	}
	return buf.String(), nil
}

func encodeNode(n Node) (*html.Node, error) {
	switch v := n.(type) {
	case Editor:
		return encodeAncestor("div", "editor", v.Children())
	case Element:
		kind, _ := v.Props["type"].(string)
		el, err := encodeAncestor("span", kind, v.Children())
		if err != nil {
			return nil, err
		}
		for _, k := range sortedPropKeys(v.Props) {
			if k == "type" {
				continue
			}
			setAttr(el, "data-"+k, fmt.Sprint(v.Props[k]))
		}
		return el, nil
	case Text:
		return encodeText(v), nil
	default:
		return nil, fmt.Errorf("doctree: unknown node type %T", n)
	}
}

func encodeAncestor(tag, kind string, children []Descendant) (*html.Node, error) {
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if kind != "" {
		setAttr(el, "data-kind", kind)
	}
	for _, child := range children {
		childNode, err := encodeNode(child)
		if err != nil {
			return nil, err
		}
		el.AppendChild(childNode)
	}
	return el, nil
}

func encodeText(t Text) *html.Node {
	leaf := &html.Node{Type: html.TextNode, Data: t.Value}

	var wrapped *html.Node = leaf
	if t.Marks.Contains(MarkUnderline) {
		wrapped = wrapInline(wrapped, "u")
	}
	if t.Marks.Contains(MarkItalic) {
		wrapped = wrapInline(wrapped, "i")
	}
	if t.Marks.Contains(MarkBold) {
		wrapped = wrapInline(wrapped, "b")
	}
	if len(t.Meta) > 0 {
		span := &html.Node{Type: html.ElementNode, Data: "span", DataAtom: atom.Span}
		setAttr(span, "data-deco", joinTags(t.Meta))
		span.AppendChild(wrapped)
		wrapped = span
	}
	return wrapped
}

func wrapInline(child *html.Node, tag string) *html.Node {
	el := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	el.AppendChild(child)
	return el
}

func setAttr(n *html.Node, key, val string) {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func sortedPropKeys(p Props) []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func joinTags(meta MetaSet) string {
	tags := meta.sortedTags()
	out := ""
	for i, t := range tags {
		if i > 0 {
			out += " "
		}
		out += t
	}
	return out
}
