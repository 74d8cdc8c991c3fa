package ui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/texted/internal/completion"
	"github.com/dshills/texted/internal/config"
	"github.com/dshills/texted/internal/dictionary"
	"github.com/dshills/texted/internal/editor"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(width, height)
	t.Cleanup(s.Fini)
	return s
}

func newTestUI(t *testing.T, width, height int) (*UI, tcell.SimulationScreen, *editor.Editor) {
	t.Helper()
	dict := dictionary.New()
	for _, w := range []string{"hello", "help", "world", "the"} {
		dict.Insert(w)
	}
	table := completion.NewDefault()
	table.Freeze()

	ed := editor.New(dict, table)
	screen := newTestScreen(t, width, height)
	u := New(screen, ed, config.Default().UI, 0)
	return u, screen, ed
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func typeString(u *UI, s string) {
	for _, r := range s {
		u.HandleEvent(runeKey(r))
	}
}

func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

// ============================================================================
// Key mapping
// ============================================================================

func TestIntentFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want editor.Intent
	}{
		{"letter", runeKey('a'), editor.Insert('a')},
		{"punctuation", runeKey('.'), editor.Insert('.')},
		{"space", runeKey(' '), editor.Simple(editor.KindWordBoundary)},
		{"left", key(tcell.KeyLeft), editor.Move(editor.DirLeft)},
		{"right", key(tcell.KeyRight), editor.Move(editor.DirRight)},
		{"up", key(tcell.KeyUp), editor.Move(editor.DirUp)},
		{"down", key(tcell.KeyDown), editor.Move(editor.DirDown)},
		{"backspace", key(tcell.KeyBackspace), editor.Backspace()},
		{"backspace2", key(tcell.KeyBackspace2), editor.Backspace()},
		{"delete", key(tcell.KeyDelete), editor.Delete()},
		{"enter", key(tcell.KeyEnter), editor.Simple(editor.KindNewline)},
		{"tab", key(tcell.KeyTab), editor.Simple(editor.KindComplete)},
		{"escape", key(tcell.KeyEscape), editor.Simple(editor.KindExit)},
		{"undo", key(tcell.KeyCtrlZ), editor.Simple(editor.KindUndo)},
		{"redo", key(tcell.KeyCtrlY), editor.Simple(editor.KindRedo)},
		{"save", key(tcell.KeyCtrlS), editor.Simple(editor.KindSave)},
		{"theme", key(tcell.KeyCtrlR), editor.Simple(editor.KindCycleTheme)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntentFor(tt.ev)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntentForUnbound(t *testing.T) {
	for _, ev := range []*tcell.EventKey{runeKey('é'), key(tcell.KeyF1), key(tcell.KeyCtrlA)} {
		_, ok := IntentFor(ev)
		assert.False(t, ok, ev.Name())
	}
}

// ============================================================================
// Palette
// ============================================================================

func TestPaletteCycles(t *testing.T) {
	p := NewPalette([]string{"red", "blue"}, 1, "lime")
	assert.Equal(t, "blue", p.Name())
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorBlue), p.Text())
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorLime), p.Hint())

	p.Next()
	assert.Equal(t, "red", p.Name())
	p.Next()
	assert.Equal(t, "blue", p.Name())
}

func TestPaletteReplace(t *testing.T) {
	p := NewPalette([]string{"red", "blue", "lime"}, 2, "lime")
	p.Replace([]string{"yellow"}, "red")
	assert.Equal(t, "yellow", p.Name())
	assert.Equal(t, tcell.StyleDefault.Foreground(tcell.ColorRed), p.Hint())

	p.Replace(nil, "red")
	assert.Equal(t, "", p.Name())
	assert.Equal(t, tcell.StyleDefault, p.Text())
	p.Next()
}

func TestPaletteIgnoresBadIndex(t *testing.T) {
	p := NewPalette([]string{"red"}, 5, "")
	assert.Equal(t, "red", p.Name())
}

// ============================================================================
// Events and drawing
// ============================================================================

func TestTypingDraws(t *testing.T) {
	u, screen, ed := newTestUI(t, 40, 5)

	typeString(u, "hi there")
	u.HandleEvent(key(tcell.KeyEnter))
	typeString(u, "ok")
	u.Draw()

	assert.Equal(t, "Hi there", row(screen, 0))
	assert.Equal(t, "Ok", row(screen, 1))
	assert.Equal(t, []string{"Hi there", "Ok"}, ed.Document().Lines())
	assert.Contains(t, row(screen, 4), "words: 3")

	x, y, visible := screen.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestStatusShowsHintAndFlags(t *testing.T) {
	u, screen, _ := newTestUI(t, 60, 4)

	typeString(u, "wrld")
	u.HandleEvent(key(tcell.KeyTab))
	u.Draw()
	assert.Contains(t, row(screen, 3), `"wrld" not in dictionary`)

	u.HandleEvent(key(tcell.KeyBackspace2))
	u.Draw()
	assert.NotContains(t, row(screen, 3), "not in dictionary")
}

func TestCycleTheme(t *testing.T) {
	u, _, _ := newTestUI(t, 40, 5)
	assert.Equal(t, "silver", u.Palette().Name())

	assert.False(t, u.HandleEvent(key(tcell.KeyCtrlR)))
	assert.Equal(t, "blue", u.Palette().Name())
}

func TestEscapeQuits(t *testing.T) {
	u, _, _ := newTestUI(t, 40, 5)
	assert.False(t, u.HandleEvent(runeKey('a')))
	assert.True(t, u.HandleEvent(key(tcell.KeyEscape)))
}

func TestSaveErrorShown(t *testing.T) {
	u, screen, _ := newTestUI(t, 60, 4)
	u.HandleEvent(key(tcell.KeyCtrlS))
	u.Draw()
	assert.Contains(t, row(screen, 3), editor.ErrNoPath.Error())
}

func TestVerticalScroll(t *testing.T) {
	u, screen, _ := newTestUI(t, 20, 3)
	for _, s := range []string{"a", "b", "c", "d"} {
		typeString(u, s)
		u.HandleEvent(key(tcell.KeyEnter))
	}
	u.Draw()

	// Two text rows; the cursor is on the fifth line.
	assert.Equal(t, "D", row(screen, 0))
	assert.Equal(t, "", row(screen, 1))
	_, y, _ := screen.GetCursor()
	assert.Equal(t, 1, y)
}

func TestHorizontalScroll(t *testing.T) {
	u, screen, _ := newTestUI(t, 5, 3)
	typeString(u, "abcdefg")
	u.Draw()

	assert.Equal(t, "defg", row(screen, 0))
	x, _, _ := screen.GetCursor()
	assert.Equal(t, 4, x)
}

func TestInterruptReloadsPalette(t *testing.T) {
	u, _, _ := newTestUI(t, 40, 5)

	u.HandleEvent(tcell.NewEventInterrupt(themeReload{cfg: config.UIConfig{Themes: []string{"red"}, Hint: "blue"}}))
	assert.Equal(t, "red", u.Palette().Name())

	u.HandleEvent(tcell.NewEventInterrupt(themeReload{err: errors.New("bad toml")}))
	assert.Equal(t, "red", u.Palette().Name())
	assert.Equal(t, "config reload failed", u.message)
}

func TestRun(t *testing.T) {
	u, screen, ed := newTestUI(t, 40, 5)

	screen.InjectKey(tcell.KeyRune, 'o', tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- u.Run() }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, "Ok", ed.Document().Text())
}

func TestWatchConfig(t *testing.T) {
	u, screen, _ := newTestUI(t, 40, 5)

	path := filepath.Join(t.TempDir(), "config.toml")
	load := func() (config.UIConfig, error) {
		cfg, err := config.Load(config.Options{Path: path})
		return cfg.UI, err
	}
	require.NoError(t, u.WatchConfig(path, load))
	defer u.stopWatching()

	require.NoError(t, os.WriteFile(path, []byte("[ui]\nthemes = [\"yellow\", \"red\"]\n"), 0o644))

	reloaded := make(chan struct{})
	go func() {
		defer close(reloaded)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventInterrupt); ok {
				u.HandleEvent(ev)
				return
			}
		}
	}()

	select {
	case <-reloaded:
	case <-time.After(2 * time.Second):
		t.Fatal("no reload event")
	}
	assert.Equal(t, "yellow", u.Palette().Name())
}
