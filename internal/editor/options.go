package editor

import (
	"github.com/dshills/texted/internal/engine/document"
	"github.com/dshills/texted/internal/spellcheck"
)

type options struct {
	historyCapacity int
	sink            spellcheck.Sink
	logger          Logger
	path            string
	document        *document.Document
}

// Option configures an Editor during creation.
type Option func(*options)

// WithHistoryCapacity sets the maximum undo depth.
func WithHistoryCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.historyCapacity = n
		}
	}
}

// WithSink sets where misspelled words are recorded.
func WithSink(s spellcheck.Sink) Option {
	return func(o *options) {
		if s != nil {
			o.sink = s
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPath sets the file the document is saved to.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithDocument starts the editor on an existing document.
func WithDocument(d *document.Document) Option {
	return func(o *options) {
		o.document = d
	}
}
