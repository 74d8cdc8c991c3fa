package app

import (
	"context"

	"github.com/dshills/texted/internal/completion"
	"github.com/dshills/texted/internal/dictionary"
	"github.com/dshills/texted/internal/editor"
	"github.com/dshills/texted/internal/plugin"
	"github.com/dshills/texted/internal/spellcheck"
	"github.com/dshills/texted/internal/status"
)

// bootstrapper initializes the session's collaborators in dependency order.
type bootstrapper struct {
	app *Application
}

func newBootstrapper(app *Application) *bootstrapper {
	return &bootstrapper{app: app}
}

func (b *bootstrapper) bootstrap(ctx context.Context) error {
	b.initLogger()
	b.initDictionary()
	b.initCompletions()
	b.initScript(ctx)
	b.app.completions.Freeze()

	if err := b.initEditor(); err != nil {
		return err
	}
	b.initStatus()

	b.app.logger.Info("session started: %d words, %d completions, document %s",
		b.app.dict.Len(), b.app.completions.Len(), b.app.editor.Path())
	return nil
}

// initLogger opens the log. An unopenable log file silences logging.
func (b *bootstrapper) initLogger() {
	cfg := b.app.cfg.Logging
	out := b.app.opts.LogOutput

	if out == nil && cfg.File != "" {
		f, err := OpenLogFile(cfg.File)
		if err != nil {
			b.app.logger = NullLogger
			b.app.warn("open log", cfg.File, err)
			return
		}
		b.app.logCloser = f
		out = f
	}
	if out == nil {
		b.app.logger = NullLogger
		return
	}

	b.app.logger = NewLogger(LoggerConfig{
		Level:  ParseLogLevel(cfg.Level),
		Output: out,
		Prefix: "texted",
	}).WithField("session", b.app.session.String())
}

// initDictionary loads the word list. A missing list leaves the
// dictionary empty, so every word is reported as unknown.
func (b *bootstrapper) initDictionary() {
	b.app.dict = dictionary.New()

	path := b.app.cfg.Dictionary.Path
	if path == "" {
		return
	}
	stats, err := b.app.dict.LoadFile(path)
	if err != nil {
		b.app.warn("load dictionary", path, err)
		return
	}
	b.app.logger.WithComponent("dictionary").Info("loaded %s: %d records, %d inserted, %d duplicates, %d rejected",
		path, stats.Records, stats.Inserted, stats.Duplicates, stats.Rejected)
}

// initCompletions builds the built-in table plus the optional YAML overlay.
func (b *bootstrapper) initCompletions() {
	b.app.completions = completion.NewDefault()

	path := b.app.cfg.Completion.Path
	if path == "" {
		return
	}
	n, err := b.app.completions.MergeFile(path)
	if err != nil {
		b.app.warn("load completions", path, err)
		return
	}
	b.app.logger.WithComponent("completion").Info("merged %d entries from %s", n, path)
}

// initScript runs the Lua startup script before the table is frozen.
func (b *bootstrapper) initScript(ctx context.Context) {
	path := b.app.cfg.Plugins.Init
	if path == "" {
		return
	}

	logger := b.app.logger.WithComponent("plugin")
	host := plugin.NewHost(b.app.dict, b.app.completions, logger, b.app.opts.Version)
	stats, err := host.Run(ctx, path)
	if err != nil {
		b.app.warn("run script", path, err)
		return
	}
	logger.Info("script %s added %d words (%d rejected) and %d completions",
		path, stats.Words, stats.Rejected, stats.Completions)
}

// initEditor creates the editor and opens the document. A file that does
// not exist yet starts an empty document saved to that path.
func (b *bootstrapper) initEditor() error {
	cfg := b.app.cfg

	var sink spellcheck.Sink = spellcheck.Discard
	if cfg.Spellcheck.Log != "" {
		sink = spellcheck.NewFileSink(cfg.Spellcheck.Log)
	}

	path := b.app.opts.File
	if path == "" {
		path = cfg.Document.Path
	}

	b.app.editor = editor.New(b.app.dict, b.app.completions,
		editor.WithHistoryCapacity(cfg.History.Capacity),
		editor.WithSink(sink),
		editor.WithLogger(b.app.logger.WithComponent("editor")),
		editor.WithPath(path),
	)

	if b.app.opts.File == "" {
		return nil
	}
	if err := b.app.editor.Load(path); err != nil {
		if isNotExist(err) {
			b.app.logger.Info("new file %s", path)
			return nil
		}
		return &InitError{Component: "document", Err: err}
	}
	return nil
}

func (b *bootstrapper) initStatus() {
	b.app.status = status.NewWriter(b.app.cfg.Status.Path)
	b.app.updateStatus()
}
