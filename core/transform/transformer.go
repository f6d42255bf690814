// Package transform rewrites a raw HTML node tree into ADF nodes.
//
// The walk is depth-first and builds new output slices as it goes; the raw
// input is never modified. Structural tags become blocks, mark tags are
// collapsed into marked text leaves, blank text is dropped, and anything
// else is pruned together with its whole subtree.
package transform

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/htmladf/core"
	"github.com/gaurav-prasanna/htmladf/core/classify"
	"github.com/gaurav-prasanna/htmladf/core/metrics"
	"github.com/gaurav-prasanna/htmladf/core/normalize"
)

// MarkMode selects how mark elements with several children are collapsed.
type MarkMode string

const (
	// MarkModeFirst follows only the first child at every level of a mark
	// chain. Later siblings are discarded.
	MarkModeFirst MarkMode = "first"
	// MarkModeAll emits one marked text leaf per text run under the mark
	// element.
	MarkModeAll MarkMode = "all"
)

// Valid reports whether m is a known mode. The empty mode is valid and
// means MarkModeFirst.
func (m MarkMode) Valid() bool {
	switch m {
	case "", MarkModeFirst, MarkModeAll:
		return true
	}
	return false
}

// Options configures a Transformer.
type Options struct {
	MarkMode MarkMode
	// MaxDepth prunes elements nested deeper than this many levels.
	// Zero disables the limit.
	MaxDepth int
	Logger   logrus.FieldLogger
	Metrics  *metrics.Metrics
}

// Transformer converts raw nodes to ADF nodes. It holds no per-call state
// and is safe for concurrent use.
type Transformer struct {
	markMode MarkMode
	maxDepth int
	log      logrus.FieldLogger
	metrics  *metrics.Metrics
}

var _ core.Transformer = (*Transformer)(nil)

// New creates a Transformer.
func New(opts Options) *Transformer {
	t := &Transformer{
		markMode: opts.MarkMode,
		maxDepth: opts.MaxDepth,
		log:      opts.Logger,
		metrics:  opts.Metrics,
	}
	if t.markMode == "" {
		t.markMode = MarkModeFirst
	}
	if t.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		t.log = l
	}
	return t
}

// Transform converts a top-level node sequence.
func (t *Transformer) Transform(nodes []core.RawNode) []core.Node {
	return t.children(nodes, "", 1)
}

// children converts a sibling sequence. parent is the already converted
// parent's type, or "" at the top level.
func (t *Transformer) children(nodes []core.RawNode, parent string, depth int) []core.Node {
	out := make([]core.Node, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *core.RawText:
			if node := textNode(v, parent); node != nil {
				out = append(out, node)
			}
		case *core.RawElement:
			out = append(out, t.element(v, depth)...)
		}
	}
	return out
}

func (t *Transformer) element(el *core.RawElement, depth int) []core.Node {
	if t.tooDeep(el, depth) {
		return nil
	}

	r := classify.Lookup(el.TagName)
	switch r.Kind {
	case classify.Structural:
		b := r.Template.Instantiate()
		if len(el.Children) > 0 && !r.Template.Leaf() {
			b.Content = t.children(el.Children, b.Type, depth+1)
		}
		return []core.Node{b}
	case classify.Mark:
		if t.markMode == MarkModeAll {
			return t.collapseAll(el, depth)
		}
		return []core.Node{t.collapseFirst(el)}
	default:
		t.log.WithField("tag", el.TagName).Debug("Pruning unsupported element")
		t.metrics.IncrementPruned(el.TagName)
		return nil
	}
}

func (t *Transformer) tooDeep(el *core.RawElement, depth int) bool {
	if t.maxDepth <= 0 || depth <= t.maxDepth {
		return false
	}
	t.log.WithFields(logrus.Fields{
		"tag":   el.TagName,
		"depth": depth,
	}).Debug("Pruning element beyond maximum depth")
	t.metrics.IncrementPruned(el.TagName)
	return true
}

// textNode applies the whitespace rule and the parent-context wrapping rule.
// It returns nil when the text is dropped.
func textNode(raw *core.RawText, parent string) core.Node {
	if normalize.IsBlank(raw.Content) {
		return nil
	}
	switch parent {
	case "", core.TypeTableCell, core.TypeTableHeader:
		return core.Paragraph(raw.Content)
	}
	return &core.TextNode{Text: raw.Content}
}
