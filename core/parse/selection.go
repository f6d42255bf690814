package parse

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/htmladf/core"
)

// FromSelection converts the nodes of a goquery selection. Each selected
// node becomes one top-level raw node.
func FromSelection(sel *goquery.Selection) []core.RawNode {
	if sel == nil {
		return []core.RawNode{}
	}
	return FromNodes(sel.Nodes)
}

// ContentsOf converts the children of every selected node, which is what a
// caller wants when the selection is a container such as <main>.
func ContentsOf(sel *goquery.Selection) []core.RawNode {
	if sel == nil {
		return []core.RawNode{}
	}
	return FromNodes(sel.Contents().Nodes)
}
