// Package parse adapts golang.org/x/net/html to the raw node model.
//
// Fragments are read with the x/net/html tokenizer and assembled into a
// tree that keeps the nesting as written. The HTML5 tree builder is not
// used for fragments: in a body context it discards stray table rows and
// cells and moves text out of tables. The only repairs applied are the
// implicit end tags of p, li, dt, dd, option, tr, td and th, void
// elements, and unwrapping of the table section wrappers (tbody, thead,
// tfoot). Comments and doctypes are skipped.
package parse

import (
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"

	"github.com/gaurav-prasanna/htmladf/core"
)

// transparent lists tags whose children are lifted into the parent.
var transparent = map[string]bool{
	"tbody": true,
	"thead": true,
	"tfoot": true,
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// implicitEnd maps a start tag to the open elements it ends and to the
// ancestors that stop the search for them.
var implicitEnd = map[string]struct{ ends, stops []string }{
	"p":      {ends: []string{"p"}, stops: []string{"table", "td", "th"}},
	"li":     {ends: []string{"li"}, stops: []string{"ul", "ol", "menu"}},
	"dt":     {ends: []string{"dt", "dd"}, stops: []string{"dl"}},
	"dd":     {ends: []string{"dt", "dd"}, stops: []string{"dl"}},
	"option": {ends: []string{"option"}, stops: []string{"select", "datalist"}},
	"tr":     {ends: []string{"tr"}, stops: []string{"table"}},
	"td":     {ends: []string{"td", "th"}, stops: []string{"table", "tr"}},
	"th":     {ends: []string{"td", "th"}, stops: []string{"table", "tr"}},
}

// HTMLParser parses HTML fragments with golang.org/x/net/html.
type HTMLParser struct {
	maxBuf int
}

var _ core.Parser = (*HTMLParser)(nil)

// New creates an HTMLParser.
func New() *HTMLParser {
	return &HTMLParser{}
}

// NewWithMaxBuf creates an HTMLParser that fails with html.ErrBufferExceeded
// on any single token longer than maxBuf bytes. Zero means no limit.
func NewWithMaxBuf(maxBuf int) *HTMLParser {
	return &HTMLParser{maxBuf: maxBuf}
}

// Parse parses an HTML fragment into raw nodes. The empty string yields an
// empty sequence. Tokenizer errors are returned as they are.
func (p *HTMLParser) Parse(markup string) ([]core.RawNode, error) {
	z := html.NewTokenizer(strings.NewReader(markup))
	if p.maxBuf > 0 {
		z.SetMaxBuf(p.maxBuf)
	}

	b := &treeBuilder{root: []core.RawNode{}}
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return b.root, nil
		}

		tok := z.Token()
		switch tt {
		case html.TextToken:
			b.text(tok.Data)
		case html.StartTagToken:
			b.open(tok, false)
		case html.SelfClosingTagToken:
			b.open(tok, true)
		case html.EndTagToken:
			b.close(tok.Data)
		}
	}
}

type treeBuilder struct {
	root  []core.RawNode
	stack []*core.RawElement
}

func (b *treeBuilder) append(n core.RawNode) {
	if len(b.stack) == 0 {
		b.root = append(b.root, n)
		return
	}
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, n)
}

func (b *treeBuilder) text(s string) {
	if s == "" {
		return
	}
	b.append(&core.RawText{Content: s})
}

func (b *treeBuilder) open(tok html.Token, selfClosing bool) {
	name := tok.Data
	if transparent[name] {
		return
	}
	b.implicitClose(name)

	el := &core.RawElement{TagName: name}
	if len(tok.Attr) > 0 {
		el.Attributes = make(map[string]string, len(tok.Attr))
		for _, a := range tok.Attr {
			el.Attributes[a.Key] = a.Val
		}
	}
	b.append(el)
	if selfClosing || voidElements[name] {
		return
	}
	b.stack = append(b.stack, el)
}

// close pops up to and including the innermost open element named name.
// End tags with no open element are ignored.
func (b *treeBuilder) close(name string) {
	for i := len(b.stack) - 1; i >= 0; i-- {
		if b.stack[i].TagName == name {
			b.stack = b.stack[:i]
			return
		}
	}
}

func (b *treeBuilder) implicitClose(name string) {
	rule, ok := implicitEnd[name]
	if !ok {
		return
	}
	for i := len(b.stack) - 1; i >= 0; i-- {
		tag := b.stack[i].TagName
		if slices.Contains(rule.ends, tag) {
			b.stack = b.stack[:i]
			return
		}
		if slices.Contains(rule.stops, tag) {
			return
		}
	}
}
