package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/texted/internal/config"
	"github.com/dshills/texted/internal/editor"
)

type fixture struct {
	dir string
	cfg config.Config
	log bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{dir: dir, cfg: config.Default()}

	f.cfg.Dictionary.Path = f.write(t, "dictionary.txt", "hello\nhelp\nworld\nthe\n")
	f.cfg.Spellcheck.Log = filepath.Join(dir, "spellcheck.log")
	f.cfg.Document.Path = filepath.Join(dir, "myDoc.txt")
	f.cfg.Status.Path = filepath.Join(dir, "word_count.txt")
	f.cfg.Logging.File = ""
	f.cfg.Logging.Level = "debug"
	return f
}

func (f *fixture) write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (f *fixture) open(t *testing.T, file string) *Application {
	t.Helper()
	app, err := New(context.Background(), Options{Config: f.cfg, File: file, Version: "test", LogOutput: &f.log})
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func typeText(app *Application, s string) {
	for i := 0; i < len(s); i++ {
		app.Apply(editor.Insert(s[i]))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNew(t *testing.T) {
	f := newFixture(t)
	app := f.open(t, "")

	assert.Empty(t, app.Warnings())
	assert.Equal(t, 4, app.Dictionary().Len())
	assert.True(t, app.Completions().Frozen())
	assert.Equal(t, f.cfg.Document.Path, app.Editor().Path())
	assert.NotEqual(t, uuid.Nil, app.Session())
	assert.Equal(t, f.cfg, app.Config())

	assert.Equal(t, "Current Word Count: 0", readFile(t, f.cfg.Status.Path))
	assert.Contains(t, f.log.String(), "session started")
	assert.Contains(t, f.log.String(), "session="+app.Session().String())
}

func TestNewDegradesMissingResources(t *testing.T) {
	f := newFixture(t)
	f.cfg.Dictionary.Path = filepath.Join(f.dir, "missing.txt")
	f.cfg.Completion.Path = filepath.Join(f.dir, "missing.yaml")
	f.cfg.Plugins.Init = filepath.Join(f.dir, "missing.lua")

	app := f.open(t, "")

	assert.Len(t, app.Warnings(), 3)
	assert.Equal(t, 0, app.Dictionary().Len())
	assert.True(t, app.Completions().Len() > 0)

	typeText(app, "hi")
	assert.Equal(t, "Hi", app.Editor().Document().Text())
}

func TestNewWithOverlayAndScript(t *testing.T) {
	f := newFixture(t)
	f.cfg.Completion.Path = f.write(t, "completions.yaml", "zy: zymurgy\n")
	f.cfg.Plugins.Init = f.write(t, "init.lua", `
texted.word("zymurgy")
texted.complete("qu", "quixotic")
texted.log("init for %s", texted.version)
`)

	app := f.open(t, "")
	require.Empty(t, app.Warnings())

	assert.True(t, app.Dictionary().Contains("zymurgy"))
	word, ok := app.Completions().Lookup("zy")
	require.True(t, ok)
	assert.Equal(t, "zymurgy", word)
	word, ok = app.Completions().Lookup("qu")
	require.True(t, ok)
	assert.Equal(t, "quixotic", word)

	assert.Contains(t, f.log.String(), "script: init for test")
}

func TestNewOpensFile(t *testing.T) {
	f := newFixture(t)
	path := f.write(t, "notes.txt", "one two\nthree\n")

	app := f.open(t, path)
	assert.Equal(t, []string{"one two", "three"}, app.Editor().Document().Lines())
	assert.Equal(t, path, app.Editor().Path())
	assert.Equal(t, "Current Word Count: 3", readFile(t, f.cfg.Status.Path))
}

func TestNewMissingFileStartsEmpty(t *testing.T) {
	f := newFixture(t)
	path := filepath.Join(f.dir, "new.txt")

	app := f.open(t, path)
	assert.Equal(t, "", app.Editor().Document().Text())
	assert.Equal(t, path, app.Editor().Path())
}

func TestNewUnreadableFileFails(t *testing.T) {
	f := newFixture(t)
	_, err := New(context.Background(), Options{Config: f.cfg, File: f.dir, LogOutput: &f.log})
	require.Error(t, err)

	var initErr *InitError
	assert.ErrorAs(t, err, &initErr)
	assert.Equal(t, "document", initErr.Component)
}

func TestApplyUpdatesStatusAndSaves(t *testing.T) {
	f := newFixture(t)
	app := f.open(t, "")

	typeText(app, "hello world")
	assert.Equal(t, "Current Word Count: 2", readFile(t, f.cfg.Status.Path))
	assert.ErrorIs(t, app.Unsaved(), ErrUnsavedChanges)

	res := app.Apply(editor.Simple(editor.KindSave))
	require.NoError(t, res.Err)
	assert.NoError(t, app.Unsaved())
	assert.Equal(t, "Hello world\n", readFile(t, f.cfg.Document.Path))
	assert.Contains(t, f.log.String(), "saved "+f.cfg.Document.Path)
}

func TestApplySpellcheckWritesLog(t *testing.T) {
	f := newFixture(t)
	app := f.open(t, "")

	typeText(app, "wrld")
	app.Apply(editor.Simple(editor.KindSpellcheck))

	assert.Equal(t, "wrld -> Suggestions:\nworld \n\n", readFile(t, f.cfg.Spellcheck.Log))
	assert.Contains(t, f.log.String(), `unknown word "wrld"`)
}

func TestApplySaveErrorIsLogged(t *testing.T) {
	f := newFixture(t)
	f.cfg.Document.Path = filepath.Join(f.dir, "missing", "doc.txt")
	app := f.open(t, "")

	res := app.Apply(editor.Simple(editor.KindSave))
	assert.Error(t, res.Err)
	assert.Contains(t, f.log.String(), "[ERROR]")
}

func TestExitResetsStatus(t *testing.T) {
	f := newFixture(t)
	app := f.open(t, "")

	typeText(app, "one two")
	assert.Equal(t, "Current Word Count: 2", readFile(t, f.cfg.Status.Path))

	res := app.Apply(editor.Simple(editor.KindExit))
	assert.True(t, res.Quit)
	assert.Equal(t, "Current Word Count: 0", readFile(t, f.cfg.Status.Path))
}

func TestClose(t *testing.T) {
	f := newFixture(t)
	app, err := New(context.Background(), Options{Config: f.cfg, LogOutput: &f.log})
	require.NoError(t, err)

	typeText(app, "one")
	require.NoError(t, app.Close())
	assert.Equal(t, "Current Word Count: 0", readFile(t, f.cfg.Status.Path))
	assert.ErrorIs(t, app.Close(), ErrClosed)
}

func TestLogFileFromConfig(t *testing.T) {
	f := newFixture(t)
	f.cfg.Logging.File = filepath.Join(f.dir, "state", "texted.log")

	app, err := New(context.Background(), Options{Config: f.cfg})
	require.NoError(t, err)
	require.NoError(t, app.Close())

	assert.Contains(t, readFile(t, f.cfg.Logging.File), "session closed")
}
