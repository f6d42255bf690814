// Package classify maps HTML tag names onto ADF node and mark types.
//
// Both tables are package-level and read-only. Structural entries are
// immutable descriptors: every call to Template.Instantiate builds a new
// block with its own attrs map and content slice, so no two output nodes
// ever share mutable state.
package classify

import (
	"maps"
	"sort"
	"strings"

	"github.com/gaurav-prasanna/htmladf/core"
)

// Kind is the outcome of a tag lookup.
type Kind int

const (
	Unclassified Kind = iota
	Structural
	Mark
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural"
	case Mark:
		return "mark"
	default:
		return "unclassified"
	}
}

// Template describes the block a structural tag turns into.
type Template struct {
	nodeType     string
	attrs        map[string]any
	emptyContent bool
	leaf         bool
}

// Type returns the ADF node type.
func (t Template) Type() string { return t.nodeType }

// Leaf reports whether blocks of this type never carry content.
func (t Template) Leaf() bool { return t.leaf }

// DefaultsContent reports whether a childless occurrence still gets an
// empty content array.
func (t Template) DefaultsContent() bool { return t.emptyContent }

// Instantiate builds a fresh block for one occurrence of the tag.
func (t Template) Instantiate() *core.Block {
	b := &core.Block{Type: t.nodeType}
	if t.attrs != nil {
		b.Attrs = maps.Clone(t.attrs)
	}
	if t.emptyContent && !t.leaf {
		b.Content = []core.Node{}
	}
	return b
}

// Result is what Lookup knows about a tag. Exactly one of Template and
// MarkType is meaningful, selected by Kind.
type Result struct {
	Kind     Kind
	Template Template
	MarkType string
}

func plain(nodeType string) Template {
	return Template{nodeType: nodeType}
}

func withContent(nodeType string) Template {
	return Template{nodeType: nodeType, emptyContent: true}
}

func heading(level int) Template {
	return Template{nodeType: core.TypeHeading, attrs: map[string]any{"level": level}}
}

var structural = map[string]Template{
	"ul":    plain(core.TypeBulletList),
	"ol":    plain(core.TypeOrderedList),
	"li":    plain(core.TypeListItem),
	"pre":   plain(core.TypeCodeBlock),
	"hr":    {nodeType: core.TypeRule, leaf: true},
	"h1":    heading(1),
	"h2":    heading(2),
	"h3":    heading(3),
	"h4":    heading(4),
	"h5":    heading(5),
	"h6":    heading(6),
	"p":     withContent(core.TypeParagraph),
	"table": {nodeType: core.TypeTable, attrs: map[string]any{"isNumberColumnEnabled": false, "layout": "default"}},
	"tr":    withContent(core.TypeTableRow),
	"td":    withContent(core.TypeTableCell),
	"th":    withContent(core.TypeTableHeader),
}

var marks = map[string]string{
	"strong": core.MarkStrong,
	"b":      core.MarkStrong,
	"i":      core.MarkEm,
	"em":     core.MarkEm,
	"u":      core.MarkUnderline,
}

// Lookup classifies a tag name. Unknown tags are a normal outcome.
func Lookup(tag string) Result {
	tag = strings.ToLower(tag)
	if t, ok := structural[tag]; ok {
		return Result{Kind: Structural, Template: t}
	}
	if m, ok := marks[tag]; ok {
		return Result{Kind: Mark, MarkType: m}
	}
	return Result{Kind: Unclassified}
}

// MarkType returns the mark for tag, if it is a mark tag.
func MarkType(tag string) (string, bool) {
	m, ok := marks[strings.ToLower(tag)]
	return m, ok
}

// StructuralTypes lists every block type the structural table can produce,
// sorted and without duplicates.
func StructuralTypes() []string {
	seen := make(map[string]struct{}, len(structural))
	for _, t := range structural {
		seen[t.nodeType] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// IsKnownType reports whether typ can appear in a converted document.
func IsKnownType(typ string) bool {
	if typ == core.TypeText || typ == core.TypeDoc {
		return true
	}
	for _, t := range structural {
		if t.nodeType == typ {
			return true
		}
	}
	return false
}
