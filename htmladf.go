// Package htmladf converts HTML into Atlassian Document Format (ADF).
//
// The pipeline is parse -> (extract) -> transform -> envelope:
//
//	doc, err := htmladf.Format("<h2>Title</h2><p>Some <strong>bold</strong> text</p>")
//
// Supported markup is limited to headings, paragraphs, lists, code blocks,
// horizontal rules, tables and the bold/italic/underline inline styles.
// Any other element is dropped together with everything inside it.
package htmladf

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gaurav-prasanna/htmladf/core"
	"github.com/gaurav-prasanna/htmladf/core/extract"
	"github.com/gaurav-prasanna/htmladf/core/metrics"
	"github.com/gaurav-prasanna/htmladf/core/parse"
	"github.com/gaurav-prasanna/htmladf/core/render"
	"github.com/gaurav-prasanna/htmladf/core/transform"
)

// Converter runs the conversion pipeline. Its configuration is fixed at
// construction, so one Converter can serve concurrent callers.
type Converter struct {
	parser      core.Parser
	extractor   core.Extractor
	transformer core.Transformer
	renderer    core.Renderer
	log         logrus.FieldLogger
	metrics     *metrics.Metrics
}

// Option customizes a Converter.
type Option func(*Converter)

// WithLogger sets the logger. Conversion details are logged at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Converter) {
		c.log = l
	}
}

// WithMetrics records conversion counters in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Converter) {
		c.metrics = m
	}
}

// WithParser replaces the HTML parser. It is not used when a Selector is
// configured, because selection needs the full document.
func WithParser(p core.Parser) Option {
	return func(c *Converter) {
		c.parser = p
	}
}

// New creates a Converter.
func New(cfg Config, opts ...Option) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)
	c := &Converter{
		parser:   parse.NewWithMaxBuf(cfg.MaxTokenBytes),
		renderer: render.NewJSONRenderer(false),
		log:      discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = discard
	}
	if c.parser == nil {
		c.parser = parse.NewWithMaxBuf(cfg.MaxTokenBytes)
	}

	if cfg.Selector != "" {
		e, err := extract.New(cfg.Selector, cfg.StripNoise)
		if err != nil {
			return nil, err
		}
		c.extractor = e
	}

	c.transformer = transform.New(transform.Options{
		MarkMode: transform.MarkMode(cfg.MarkMode),
		MaxDepth: cfg.MaxDepth,
		Logger:   c.log,
		Metrics:  c.metrics,
	})
	return c, nil
}

// Format converts an HTML string. Parser failures are returned as the
// parser reported them.
func (c *Converter) Format(html string) (*core.Doc, error) {
	if c.extractor != nil {
		sel, err := c.extractor.Extract(html)
		if err != nil {
			return nil, errors.Wrap(err, "extracting content")
		}
		return c.FormatNodes(parse.ContentsOf(sel)), nil
	}

	nodes, err := c.parser.Parse(html)
	if err != nil {
		return nil, err
	}
	return c.FormatNodes(nodes), nil
}

// FormatNodes converts an already parsed tree.
func (c *Converter) FormatNodes(nodes []core.RawNode) *core.Doc {
	doc := core.NewDoc(c.transformer.Transform(nodes))
	c.metrics.IncrementConversions()
	c.log.WithFields(logrus.Fields{
		"input_nodes":  len(nodes),
		"output_nodes": len(doc.Content),
	}).Debug("Converted document")
	return doc
}

// FormatSelection converts the nodes of a goquery selection.
func (c *Converter) FormatSelection(sel *goquery.Selection) *core.Doc {
	return c.FormatNodes(parse.FromSelection(sel))
}

// FormatJSON converts an HTML string and returns the ADF JSON.
func (c *Converter) FormatJSON(html string) ([]byte, error) {
	doc, err := c.Format(html)
	if err != nil {
		return nil, err
	}
	return c.renderer.Render(doc)
}

var defaultConverter = func() *Converter {
	c, err := New(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return c
}()

// Format converts html with the default configuration.
func Format(html string) (*core.Doc, error) {
	return defaultConverter.Format(html)
}
