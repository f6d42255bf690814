package core

// RawNode is a node of the parsed HTML tree. The set of implementations is
// closed: *RawText and *RawElement.
type RawNode interface {
	rawNode()
}

// RawText is a run of character data.
type RawText struct {
	Content string
}

// RawElement is an HTML element with its attributes and ordered children.
type RawElement struct {
	TagName    string
	Attributes map[string]string
	Children   []RawNode
}

func (*RawText) rawNode()    {}
func (*RawElement) rawNode() {}

// NewRawText is a shorthand constructor for a raw text node.
func NewRawText(content string) *RawText {
	return &RawText{Content: content}
}

// NewRawElement is a shorthand constructor for a raw element without
// attributes.
func NewRawElement(tag string, children ...RawNode) *RawElement {
	return &RawElement{TagName: tag, Children: children}
}
