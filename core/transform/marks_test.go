package transform

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/htmladf/core"
	"github.com/gaurav-prasanna/htmladf/core/metrics"
)

func TestCollapseFirst(t *testing.T) {
	cases := []struct {
		name  string
		input core.RawNode
		want  []core.Node
	}{
		{
			name:  "nested chain",
			input: el("strong", el("em", txt("hi"))),
			want:  []core.Node{text("hi", core.MarkStrong, core.MarkEm)},
		},
		{
			name:  "three levels",
			input: el("u", el("b", el("i", txt("x")))),
			want:  []core.Node{text("x", core.MarkUnderline, core.MarkStrong, core.MarkEm)},
		},
		{
			name:  "chain without text",
			input: el("strong", el("em")),
			want:  []core.Node{text("", core.MarkStrong, core.MarkEm)},
		},
		{
			name:  "empty mark element",
			input: el("u"),
			want:  []core.Node{text("", core.MarkUnderline)},
		},
		{
			name:  "whitespace inside mark is kept",
			input: el("b", txt(" ")),
			want:  []core.Node{text(" ", core.MarkStrong)},
		},
		{
			name:  "unmapped element inside chain adds no mark",
			input: el("b", el("span", el("i", txt("x")))),
			want:  []core.Node{text("x", core.MarkStrong, core.MarkEm)},
		},
		{
			name:  "repeated mark kept per element",
			input: el("b", el("strong", txt("x"))),
			want:  []core.Node{text("x", core.MarkStrong, core.MarkStrong)},
		},
		{
			// Only the first child is followed; "b" and " tail" are lost.
			name:  "multiple children lose later branches",
			input: el("strong", txt("a"), el("em", txt("b")), txt(" tail")),
			want:  []core.Node{text("a", core.MarkStrong)},
		},
		{
			name:  "first branch is an element",
			input: el("b", el("i", txt("x")), txt(" y")),
			want:  []core.Node{text("x", core.MarkStrong, core.MarkEm)},
		},
	}

	tr := New(Options{})
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := tr.Transform([]core.RawNode{c.input})
			assert.Equal(t, c.want, got)
		})
	}
}

func TestMarkedTextInsideBlocks(t *testing.T) {
	input := []core.RawNode{
		el("p", txt("plain "), el("strong", txt("bold")), txt(" end")),
		el("table", el("tr", el("td", el("b", txt("cell"))))),
	}
	got := New(Options{}).Transform(input)
	require.Len(t, got, 2)
	assert.Equal(t, block(core.TypeParagraph,
		text("plain "),
		text("bold", core.MarkStrong),
		text(" end"),
	), got[0])

	cell := got[1].(*core.Block).Content[0].(*core.Block).Content[0]
	assert.Equal(t, block(core.TypeTableCell, text("cell", core.MarkStrong)), cell)
}

func TestCollapseFirstCountsDroppedBranches(t *testing.T) {
	m := metrics.NewMetrics()
	tr := New(Options{Metrics: m})
	tr.Transform([]core.RawNode{
		el("strong", txt("a"), el("em", txt("b"), txt("c")), txt("d")),
	})

	expected := `
# HELP htmladf_converter_dropped_branches_total The total number of mark element children skipped by first-child collapsing.
# TYPE htmladf_converter_dropped_branches_total counter
htmladf_converter_dropped_branches_total 2
`
	err := testutil.GatherAndCompare(m.GetRegistry(), strings.NewReader(expected), "htmladf_converter_dropped_branches_total")
	assert.NoError(t, err)
}

func TestCollapseAll(t *testing.T) {
	cases := []struct {
		name  string
		input core.RawNode
		want  []core.Node
	}{
		{
			name:  "nested chain",
			input: el("strong", el("em", txt("hi"))),
			want:  []core.Node{text("hi", core.MarkStrong, core.MarkEm)},
		},
		{
			name:  "siblings keep their own marks",
			input: el("strong", txt("a"), el("em", txt("b")), txt(" tail")),
			want: []core.Node{
				text("a", core.MarkStrong),
				text("b", core.MarkStrong, core.MarkEm),
				text(" tail", core.MarkStrong),
			},
		},
		{
			name:  "inner marks do not leak to later siblings",
			input: el("b", el("i", txt("x")), el("u", txt("y"))),
			want: []core.Node{
				text("x", core.MarkStrong, core.MarkEm),
				text("y", core.MarkStrong, core.MarkUnderline),
			},
		},
		{
			name:  "repeated mark kept per element",
			input: el("i", el("em", txt("x")), txt("y")),
			want: []core.Node{
				text("x", core.MarkEm, core.MarkEm),
				text("y", core.MarkEm),
			},
		},
		{
			name:  "no text falls back to a single empty leaf",
			input: el("strong", el("em")),
			want:  []core.Node{text("", core.MarkStrong, core.MarkEm)},
		},
	}

	tr := New(Options{MarkMode: MarkModeAll})
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := tr.Transform([]core.RawNode{c.input})
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCollapseAllLeavesDoNotShareMarks(t *testing.T) {
	got := New(Options{MarkMode: MarkModeAll}).Transform([]core.RawNode{
		el("b", txt("x"), txt("y")),
	})
	require.Len(t, got, 2)
	got[0].(*core.TextNode).Marks[0].Type = "changed"
	assert.Equal(t, core.MarkStrong, got[1].(*core.TextNode).Marks[0].Type)
}
