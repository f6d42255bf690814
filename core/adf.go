package core

import "encoding/json"

// Node types emitted by the converter.
const (
	TypeDoc         = "doc"
	TypeText        = "text"
	TypeParagraph   = "paragraph"
	TypeHeading     = "heading"
	TypeBulletList  = "bulletList"
	TypeOrderedList = "orderedList"
	TypeListItem    = "listItem"
	TypeCodeBlock   = "codeBlock"
	TypeRule        = "rule"
	TypeTable       = "table"
	TypeTableRow    = "tableRow"
	TypeTableCell   = "tableCell"
	TypeTableHeader = "tableHeader"
)

// Mark types.
const (
	MarkStrong    = "strong"
	MarkEm        = "em"
	MarkUnderline = "underline"
)

// DocVersion is the only envelope version the converter produces.
const DocVersion = 1

// Node is a node of the ADF tree. Implementations: *Doc, *Block, *TextNode.
type Node interface {
	NodeType() string
	adfNode()
}

// Doc is the document root.
type Doc struct {
	Version int    `json:"version"`
	Type    string `json:"type"`
	Content []Node `json:"content"`
}

// Block is any structural node: paragraph, heading, list, table and so on.
// A nil Content means the node carries no content field at all, while a
// non-nil empty Content serializes as an empty array.
type Block struct {
	Type    string
	Attrs   map[string]any
	Content []Node
}

// TextNode is a text leaf with optional inline marks.
type TextNode struct {
	Text  string
	Marks []Mark
}

// Mark is an inline formatting annotation on a text leaf.
type Mark struct {
	Type string `json:"type"`
}

// NewDoc wraps content in the document envelope. Content is never nil in
// the result so an empty document serializes as "content": [].
func NewDoc(content []Node) *Doc {
	if content == nil {
		content = []Node{}
	}
	return &Doc{Version: DocVersion, Type: TypeDoc, Content: content}
}

// Paragraph returns a paragraph holding a single unmarked text leaf.
func Paragraph(text string) *Block {
	return &Block{Type: TypeParagraph, Content: []Node{&TextNode{Text: text}}}
}

func (d *Doc) NodeType() string      { return TypeDoc }
func (b *Block) NodeType() string    { return b.Type }
func (t *TextNode) NodeType() string { return TypeText }

func (*Doc) adfNode()      {}
func (*Block) adfNode()    {}
func (*TextNode) adfNode() {}

// MarshalJSON keeps the distinction between absent and empty content.
func (b *Block) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type    string         `json:"type"`
		Attrs   map[string]any `json:"attrs,omitempty"`
		Content *[]Node        `json:"content,omitempty"`
	}
	w := wire{Type: b.Type, Attrs: b.Attrs}
	if b.Content != nil {
		content := b.Content
		w.Content = &content
	}
	return json.Marshal(w)
}

// MarshalJSON adds the fixed "text" type discriminator.
func (t *TextNode) MarshalJSON() ([]byte, error) {
	type wire struct {
		Type  string `json:"type"`
		Text  string `json:"text"`
		Marks []Mark `json:"marks,omitempty"`
	}
	return json.Marshal(wire{Type: TypeText, Text: t.Text, Marks: t.Marks})
}

// Walk visits n and every node beneath it in document order.
func Walk(n Node, fn func(Node)) {
	fn(n)
	switch v := n.(type) {
	case *Doc:
		for _, c := range v.Content {
			Walk(c, fn)
		}
	case *Block:
		for _, c := range v.Content {
			Walk(c, fn)
		}
	case *TextNode:
	}
}
