// Package core defines the conversion pipeline interfaces and the two node
// models it moves between: the raw HTML tree handed over by the parser and
// the ADF document tree handed back to callers.
package core

import "github.com/PuerkitoBio/goquery"

// Parser turns an HTML string into an ordered sequence of raw nodes.
// Implementations own tokenization; malformed markup is their concern.
type Parser interface {
	Parse(html string) ([]RawNode, error)
}

// Extractor narrows a full HTML document down to the selection that should
// be converted.
type Extractor interface {
	Extract(html string) (*goquery.Selection, error)
}

// Transformer rewrites a raw node sequence into ADF nodes. It never mutates
// its input and never fails.
type Transformer interface {
	Transform(nodes []RawNode) []Node
}

// Renderer serializes a finished document.
type Renderer interface {
	Render(doc *Doc) ([]byte, error)
}
