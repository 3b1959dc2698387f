// Package xmlite is a minimal, non-validating XML parser: it turns
// UTF-8 text into a document tree of elements, attributes and text,
// and renders trees back to text. Tag-level syntax errors are
// recovered from and reported as diagnostics; DTDs, entities,
// namespaces and character references are not interpreted.
package xmlite

import (
	"fmt"

	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("xmlite")

// Document is the result of parsing.
type Document struct {
	// Root is the document's single root element.
	Root *Node
	// Declaration is the <?...?> declaration preceding the root, nil
	// when the input has none. It is metadata, never part of the tree.
	Declaration *Tag
	// Diagnostics lists the syntax errors recovered from during
	// parsing, in encounter order. A non-empty list means parts of the
	// input were discarded to keep going.
	Diagnostics []*SyntaxError
}

// String renders the document's tree. The declaration is metadata and
// is not rendered.
func (d *Document) String() string {
	if d.Root == nil {
		return ""
	}
	return d.Root.String()
}

type options struct {
	maxDepth int
}

func defaultOptions() options {
	return options{
		maxDepth: 0,
	}
}

// Option is a Parse option.
type Option func(o *options)

// WithMaxDepth directs Parse to fail with ErrMaxDepth when elements
// nest deeper than the given bound, instead of letting adversarial
// input grow the call stack. Default: 0, unbounded.
func WithMaxDepth(depth int) Option {
	if depth < 0 {
		depth = 0
	}
	return func(o *options) { o.maxDepth = depth }
}

// Parse parses src into a document tree.
//
// Exactly one root element is parsed; input past its closing tag is
// left unread. Declarations and stray character data before the root
// are skipped, with the first declaration retained as metadata on the
// Document. Recovered syntax errors accumulate on the Document;
// structural problems, an unmatched closing tag or input ending
// mid-element, fail the parse with a MismatchError or an error
// wrapping ErrUnexpectedEOF.
func Parse(src string, opts ...Option) (*Document, error) {
	o := defaultOptions()
	for i := range opts {
		opts[i](&o)
	}

	tags := NewTags(src)
	doc := &Document{}
	for {
		tag, ok := tags.Peek()
		if !ok {
			return nil, fmt.Errorf("%s: %w", tags.Position(), ErrNoRoot)
		}
		switch tag.Kind {
		case TagDeclaration:
			tags.Next()
			if doc.Declaration == nil {
				decl := tag
				doc.Declaration = &decl
			}
		case TagText:
			tags.Next()
		default:
			root, err := buildElement(tags, 1, o.maxDepth)
			if err != nil {
				return nil, err
			}
			doc.Root = root
			doc.Diagnostics = tags.Diagnostics()
			return doc, nil
		}
	}
}
