package parse

import (
	"strings"

	"github.com/JohannesKaufmann/dom"
	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/htmladf/core"
)

// FromNodes converts x/net/html nodes into raw nodes, skipping anything that
// is neither an element nor text. Table section wrappers are unwrapped
// here too, since goquery documents always contain a synthesized tbody.
func FromNodes(nodes []*html.Node) []core.RawNode {
	out := make([]core.RawNode, 0, len(nodes))
	for _, n := range nodes {
		out = appendNode(out, n)
	}
	return out
}

func appendNode(out []core.RawNode, n *html.Node) []core.RawNode {
	switch n.Type {
	case html.TextNode:
		return append(out, &core.RawText{Content: n.Data})
	case html.ElementNode:
		name := strings.ToLower(dom.NodeName(n))
		if transparent[name] {
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				out = appendNode(out, c)
			}
			return out
		}
		return append(out, element(name, n))
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			out = appendNode(out, c)
		}
		return out
	default:
		return out
	}
}

func element(name string, n *html.Node) *core.RawElement {
	el := &core.RawElement{TagName: name}
	if len(n.Attr) > 0 {
		el.Attributes = make(map[string]string, len(n.Attr))
		for _, a := range n.Attr {
			el.Attributes[a.Key] = a.Val
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		el.Children = appendNode(el.Children, c)
	}
	return el
}
