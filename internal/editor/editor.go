package editor

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dshills/texted/internal/engine/document"
	"github.com/dshills/texted/internal/engine/history"
	"github.com/dshills/texted/internal/spellcheck"
)

// ErrNoPath is returned when saving a document that has no file path.
var ErrNoPath = errors.New("document has no file path")

// Completions is the completion table surface the editor needs.
type Completions interface {
	Lookup(prefix string) (string, bool)
}

// Logger receives diagnostic messages.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Result describes what applying an intent did.
type Result struct {
	// Changed reports whether the document text changed.
	Changed bool
	// Quit is set for KindExit.
	Quit bool
	// CycleTheme is set for KindCycleTheme.
	CycleTheme bool
	// Flagged holds the spellcheck finding for an unknown word, if any.
	Flagged *spellcheck.Finding
	// Err is set when saving fails.
	Err error
}

// Editor applies intents to a document.
type Editor struct {
	doc     *document.Document
	history *history.History

	completions Completions
	checker     *spellcheck.Checker
	sink        spellcheck.Sink
	logger      Logger

	path     string
	modified bool
}

// New creates an editor over an empty document.
func New(dict spellcheck.Lookup, completions Completions, opts ...Option) *Editor {
	cfg := options{
		historyCapacity: history.DefaultCapacity,
		sink:            spellcheck.Discard,
		logger:          nopLogger{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	doc := cfg.document
	if doc == nil {
		doc = document.New()
	}

	return &Editor{
		doc:         doc,
		history:     history.New(cfg.historyCapacity, doc.Snapshot()),
		completions: completions,
		checker:     spellcheck.NewChecker(dict),
		sink:        cfg.sink,
		logger:      cfg.logger,
		path:        cfg.path,
	}
}

// Document returns the edited document.
func (e *Editor) Document() *document.Document {
	return e.doc
}

// History returns the undo history.
func (e *Editor) History() *history.History {
	return e.history
}

// Path returns the file the document is saved to.
func (e *Editor) Path() string {
	return e.path
}

// SetPath changes the file the document is saved to.
func (e *Editor) SetPath(path string) {
	e.path = path
}

// Modified reports whether the document changed since it was loaded or saved.
func (e *Editor) Modified() bool {
	return e.modified
}

// Apply handles one intent.
func (e *Editor) Apply(in Intent) Result {
	var res Result

	switch in.Kind {
	case KindInsert:
		e.doc.InsertChar(in.Char)
		res.Changed = e.record()

	case KindMove:
		e.move(in.Dir)

	case KindDelete:
		var deleted bool
		if in.Dir == DirForward {
			deleted = e.doc.DeleteForward()
		} else {
			deleted = e.doc.DeleteBackward()
		}
		if deleted {
			res.Changed = e.record()
		}

	case KindNewline:
		e.doc.InsertNewline()
		res.Changed = e.record()

	case KindUndo:
		res.Changed = e.history.Undo(e.doc)

	case KindRedo:
		res.Changed = e.history.Redo(e.doc)

	case KindSave:
		res.Err = e.Save()

	case KindComplete:
		res.Changed, res.Flagged = e.complete()

	case KindSpellcheck:
		res.Flagged = e.spellcheck()

	case KindWordBoundary:
		res.Flagged = e.spellcheck()
		e.doc.InsertText(" ")
		res.Changed = e.record()

	case KindExit:
		res.Quit = true

	case KindCycleTheme:
		res.CycleTheme = true
	}

	if res.Changed {
		e.modified = true
	}
	e.logger.Debug("applied %s changed=%t line=%d col=%d", in, res.Changed, e.doc.ActiveLine(), e.doc.Column())
	return res
}

// record snapshots the document if it changed since the last snapshot.
func (e *Editor) record() bool {
	return e.history.RecordIfChanged(e.doc)
}

func (e *Editor) move(dir Direction) {
	switch dir {
	case DirLeft:
		e.doc.MoveLeft()
	case DirRight:
		e.doc.MoveRight()
	case DirUp:
		e.doc.MoveUp()
	case DirDown:
		e.doc.MoveDown()
	}
}

// currentToken returns the lowercased word before the cursor.
func (e *Editor) currentToken() string {
	return strings.ToLower(e.doc.WordBeforeCursor())
}

// complete expands the word before the cursor when the completion table has
// an entry for it and otherwise hands the word to the spellchecker.
func (e *Editor) complete() (bool, *spellcheck.Finding) {
	token := e.currentToken()
	if token == "" {
		return false, nil
	}

	word, ok := e.completions.Lookup(token)
	if !ok {
		return false, e.spellcheck()
	}

	e.doc.ReplaceWordBeforeCursor(word)
	return e.record(), nil
}

// spellcheck checks the word before the cursor and records it in the sink
// when it is not in the dictionary.
func (e *Editor) spellcheck() *spellcheck.Finding {
	f, ok := e.checker.Check(e.doc.WordBeforeCursor())
	if !ok || f.Known {
		return nil
	}

	if err := e.sink.Record(f.Token, f.Suggestions); err != nil {
		e.logger.Warn("spellcheck log unavailable: %v", err)
	}
	return &f
}

// Hint returns the completion for the word before the cursor, or "".
func (e *Editor) Hint() string {
	token := e.currentToken()
	if token == "" {
		return ""
	}
	word, _ := e.completions.Lookup(token)
	return word
}

// Save writes the document to its path.
func (e *Editor) Save() error {
	if e.path == "" {
		return ErrNoPath
	}
	return e.SaveAs(e.path)
}

// SaveAs writes the document to path and makes it the document's path.
func (e *Editor) SaveAs(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if _, err := e.doc.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	e.path = path
	e.modified = false
	return nil
}

// Load replaces the document with the file at path. Undo history starts
// over from the loaded text.
func (e *Editor) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	defer f.Close()

	doc, err := document.Read(f)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	e.doc = doc
	e.history.Reset(doc.Snapshot())
	e.path = path
	e.modified = false
	return nil
}

// View is the state a renderer draws.
type View struct {
	Lines      []string
	ActiveLine int
	Before     string
	After      string
	Hint       string
	WordCount  int
}

// View returns the current render state.
func (e *Editor) View() View {
	return View{
		Lines:      e.doc.Lines(),
		ActiveLine: e.doc.ActiveLine(),
		Before:     e.doc.Before(),
		After:      e.doc.After(),
		Hint:       e.Hint(),
		WordCount:  e.doc.WordCount(),
	}
}
