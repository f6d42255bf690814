package transform

import (
	"slices"

	"github.com/gaurav-prasanna/htmladf/core"
	"github.com/gaurav-prasanna/htmladf/core/classify"
)

// collapseFirst flattens a mark chain into one text leaf, descending into
// the first child only. Marks are collected outer to inner, one per mark
// element, so <b><strong>x</strong></b> carries strong twice. A chain that
// never reaches a text node yields an empty text.
func (t *Transformer) collapseFirst(el *core.RawElement) *core.TextNode {
	leaf, dropped := firstChain(el)
	if dropped > 0 {
		t.log.WithField("tag", el.TagName).Debug("Discarding extra children of mark element")
		t.metrics.AddDroppedBranches(dropped)
	}
	return leaf
}

func firstChain(el *core.RawElement) (*core.TextNode, int) {
	leaf := &core.TextNode{}
	dropped := 0

	var node core.RawNode = el
	for node != nil {
		switch v := node.(type) {
		case *core.RawText:
			leaf.Text += v.Content
			node = nil
		case *core.RawElement:
			if m, ok := classify.MarkType(v.TagName); ok {
				leaf.Marks = append(leaf.Marks, core.Mark{Type: m})
			}
			if len(v.Children) == 0 {
				node = nil
				break
			}
			dropped += len(v.Children) - 1
			node = v.Children[0]
		default:
			node = nil
		}
	}
	return leaf, dropped
}

// collapseAll emits a marked leaf for every non-empty text run beneath el.
// When there is none it falls back to the first-child chain so the element
// still yields exactly one (empty) leaf.
func (t *Transformer) collapseAll(el *core.RawElement, depth int) []core.Node {
	var out []core.Node
	m, _ := classify.MarkType(el.TagName)
	marks := []core.Mark{{Type: m}}
	for _, c := range el.Children {
		t.walkMarks(c, marks, depth+1, &out)
	}
	if len(out) == 0 {
		leaf, _ := firstChain(el)
		return []core.Node{leaf}
	}
	return out
}

func (t *Transformer) walkMarks(n core.RawNode, marks []core.Mark, depth int, out *[]core.Node) {
	switch v := n.(type) {
	case *core.RawText:
		if v.Content == "" {
			return
		}
		*out = append(*out, &core.TextNode{Text: v.Content, Marks: slices.Clone(marks)})
	case *core.RawElement:
		if t.tooDeep(v, depth) {
			return
		}
		if m, ok := classify.MarkType(v.TagName); ok {
			marks = append(slices.Clip(marks), core.Mark{Type: m})
		}
		for _, c := range v.Children {
			t.walkMarks(c, marks, depth+1, out)
		}
	}
}
