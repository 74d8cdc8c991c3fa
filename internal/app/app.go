package app

import (
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/google/uuid"

	"github.com/dshills/texted/internal/completion"
	"github.com/dshills/texted/internal/config"
	"github.com/dshills/texted/internal/dictionary"
	"github.com/dshills/texted/internal/editor"
	"github.com/dshills/texted/internal/status"
)

// Application is one editing session: the editor and everything it was
// built from.
type Application struct {
	cfg     config.Config
	opts    Options
	session uuid.UUID

	logger    *Logger
	logCloser io.Closer

	dict        *dictionary.Dictionary
	completions *completion.Table
	editor      *editor.Editor
	status      *status.Writer

	warnings ErrorList
	closed   bool
}

// Options configures the application.
type Options struct {
	// Config is the loaded configuration.
	Config config.Config

	// File is the document to open. Empty uses the configured document path
	// as the save target and starts empty.
	File string

	// Version is exposed to the startup script.
	Version string

	// LogOutput overrides the configured log file.
	LogOutput io.Writer
}

// New builds a session. Collaborators whose resources are unavailable
// degrade to no-ops and are reported by Warnings; only an unreadable
// document file is fatal.
func New(ctx context.Context, opts Options) (*Application, error) {
	app := &Application{
		cfg:     opts.Config,
		opts:    opts,
		session: uuid.New(),
	}

	if err := newBootstrapper(app).bootstrap(ctx); err != nil {
		app.closeLog()
		return nil, err
	}
	return app, nil
}

// Apply runs one intent through the editor and keeps the status file and
// log in step with it.
func (app *Application) Apply(in editor.Intent) editor.Result {
	res := app.editor.Apply(in)

	if res.Err != nil {
		app.logger.Error("%s: %v", in.Kind, res.Err)
	} else if in.Kind == editor.KindSave {
		app.logger.Info("saved %s", app.editor.Path())
	}
	if res.Flagged != nil {
		app.logger.Debug("unknown word %q", res.Flagged.Token)
	}

	if res.Quit {
		app.resetStatus()
	} else {
		app.updateStatus()
	}
	return res
}

// View returns the editor's render state.
func (app *Application) View() editor.View {
	return app.editor.View()
}

// Close resets the status file and releases the log file.
func (app *Application) Close() error {
	if app.closed {
		return ErrClosed
	}
	app.closed = true

	app.resetStatus()
	app.logger.Info("session closed")
	return app.closeLog()
}

// Unsaved returns ErrUnsavedChanges if the document was modified since it
// was last loaded or saved.
func (app *Application) Unsaved() error {
	if app.editor.Modified() {
		return NewOperationError("quit", app.editor.Path(), ErrUnsavedChanges)
	}
	return nil
}

func (app *Application) updateStatus() {
	if err := app.status.Update(app.editor.Document().WordCount()); err != nil {
		app.logger.Warn("status file: %v", err)
	}
}

func (app *Application) resetStatus() {
	if err := app.status.Reset(); err != nil {
		app.logger.Warn("status file: %v", err)
	}
}

func (app *Application) closeLog() error {
	if app.logCloser == nil {
		return nil
	}
	err := app.logCloser.Close()
	app.logCloser = nil
	return err
}

// warn records a degraded collaborator.
func (app *Application) warn(op, target string, err error) {
	opErr := NewOperationError(op, target, err)
	app.warnings.Add(opErr)
	if app.logger != nil {
		app.logger.Warn("%v", opErr)
	}
}

// Warnings returns the degradations recorded during startup.
func (app *Application) Warnings() []error {
	return app.warnings.Errors()
}

// Config returns the configuration the session was built from.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Session returns the session identifier.
func (app *Application) Session() uuid.UUID {
	return app.session
}

// Logger returns the session logger.
func (app *Application) Logger() *Logger {
	return app.logger
}

// Editor returns the editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Dictionary returns the loaded dictionary.
func (app *Application) Dictionary() *dictionary.Dictionary {
	return app.dict
}

// Completions returns the frozen completion table.
func (app *Application) Completions() *completion.Table {
	return app.completions
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
