// Package extract implements the Extractor interface.
// It narrows a full HTML page down to the part that should be converted:
//  1. Optionally removing noise elements (scripts, navigation, forms, ...)
//  2. Selecting the first element that matches a CSS selector
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"

	"github.com/gaurav-prasanna/htmladf/core"
)

// noiseSelectors are removed before selection when noise stripping is on.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"nav", "footer", "header", "aside",
	"iframe", "svg", "canvas",
	"form", "button", "input", "select", "textarea",
}

// ErrNoMatch is returned when the selector matches nothing in the document.
var ErrNoMatch = errors.New("selector matched no element")

// HTMLExtractor selects the content container of an HTML page.
type HTMLExtractor struct {
	selector   string
	matcher    cascadia.Selector
	stripNoise bool
}

var _ core.Extractor = (*HTMLExtractor)(nil)

// New compiles selector and creates an HTMLExtractor.
func New(selector string, stripNoise bool) (*HTMLExtractor, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling selector %q", selector)
	}
	return &HTMLExtractor{selector: selector, matcher: m, stripNoise: stripNoise}, nil
}

// Selector returns the source of the compiled selector.
func (e *HTMLExtractor) Selector() string {
	return e.selector
}

// Extract parses html as a full document and returns the first element
// matching the selector.
func (e *HTMLExtractor) Extract(html string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML document")
	}

	if e.stripNoise {
		for _, sel := range noiseSelectors {
			doc.Find(sel).Remove()
		}
	}

	content := doc.FindMatcher(e.matcher)
	if content.Length() == 0 {
		return nil, errors.Wrapf(ErrNoMatch, "selector %q", e.selector)
	}
	return content.First(), nil
}
