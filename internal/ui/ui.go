// Package ui is the terminal frontend: it turns tcell key events into
// editing intents and draws the editor view after each one.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/texted/internal/config"
	"github.com/dshills/texted/internal/config/watcher"
	"github.com/dshills/texted/internal/editor"
)

// Session is the editing surface the frontend drives.
type Session interface {
	Apply(in editor.Intent) editor.Result
	View() editor.View
}

// Logger receives frontend diagnostics.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any) {}
func (nopLogger) Warn(string, ...any) {}

// UI owns the screen and the color palette.
type UI struct {
	screen  tcell.Screen
	session Session
	palette *Palette
	logger  Logger

	top, left int    // scroll offsets
	message   string // shown in the status bar until the next key
	watcher   *watcher.Watcher
}

// Option configures a UI.
type Option func(*UI)

// WithLogger sets the diagnostic logger.
func WithLogger(l Logger) Option {
	return func(u *UI) {
		if l != nil {
			u.logger = l
		}
	}
}

// New creates a UI on an initialized screen.
func New(screen tcell.Screen, session Session, cfg config.UIConfig, themeIndex int, opts ...Option) *UI {
	u := &UI{
		screen:  screen,
		session: session,
		palette: NewPalette(cfg.Themes, themeIndex, cfg.Hint),
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Palette returns the active palette.
func (u *UI) Palette() *Palette {
	return u.palette
}

// themeReload carries a reloaded UI section from the watcher goroutine.
type themeReload struct {
	cfg config.UIConfig
	err error
}

// WatchConfig reloads the palette whenever the file at path changes.
// load runs on the watcher goroutine and must not touch the session.
func (u *UI) WatchConfig(path string, load func() (config.UIConfig, error)) error {
	w, err := watcher.New(path, func(watcher.Event) {
		cfg, err := load()
		_ = u.screen.PostEvent(tcell.NewEventInterrupt(themeReload{cfg: cfg, err: err}))
	}, watcher.WithErrorHandler(func(err error) {
		u.logger.Warn("config watcher: %v", err)
	}))
	if err != nil {
		return err
	}
	u.watcher = w
	return nil
}

// Run draws and processes events until an exit intent.
func (u *UI) Run() error {
	defer u.stopWatching()

	u.Draw()
	for {
		ev := u.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := u.HandleEvent(ev); quit {
			return nil
		}
		u.Draw()
	}
}

// HandleEvent processes one event and reports whether to quit.
func (u *UI) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in, ok := IntentFor(ev)
		if !ok {
			return false
		}
		u.message = ""
		res := u.session.Apply(in)
		switch {
		case res.Quit:
			return true
		case res.CycleTheme:
			u.palette.Next()
		case res.Err != nil:
			u.message = res.Err.Error()
		case in.Kind == editor.KindSave:
			u.message = "saved"
		case res.Flagged != nil:
			u.message = fmt.Sprintf("%q not in dictionary", res.Flagged.Token)
		}

	case *tcell.EventResize:
		u.screen.Sync()

	case *tcell.EventInterrupt:
		if r, ok := ev.Data().(themeReload); ok {
			u.applyReload(r)
		}
	}
	return false
}

func (u *UI) applyReload(r themeReload) {
	if r.err != nil {
		u.logger.Warn("config reload: %v", r.err)
		u.message = "config reload failed"
		return
	}
	u.palette.Replace(r.cfg.Themes, r.cfg.Hint)
	u.logger.Info("config reloaded: %d themes", len(r.cfg.Themes))
}

func (u *UI) stopWatching() {
	if u.watcher != nil {
		_ = u.watcher.Close()
		u.watcher = nil
	}
}

// Draw renders the view: document lines above a one-line status bar.
func (u *UI) Draw() {
	view := u.session.View()
	width, height := u.screen.Size()
	rows := height - 1

	u.screen.Clear()
	if rows <= 0 || width <= 0 {
		u.screen.Show()
		return
	}

	col := len(view.Before)
	u.scroll(view.ActiveLine, col, rows, width)

	text := u.palette.Text()
	for y := 0; y < rows && u.top+y < len(view.Lines); y++ {
		u.drawString(0, y, view.Lines[u.top+y], u.left, width, text)
	}
	u.drawStatus(view, rows, width)

	u.screen.ShowCursor(col-u.left, view.ActiveLine-u.top)
	u.screen.Show()
}

// scroll keeps the cursor inside the visible window.
func (u *UI) scroll(line, col, rows, width int) {
	if line < u.top {
		u.top = line
	} else if line >= u.top+rows {
		u.top = line - rows + 1
	}
	if col < u.left {
		u.left = col
	} else if col >= u.left+width {
		u.left = col - width + 1
	}
}

func (u *UI) drawStatus(view editor.View, y, width int) {
	status := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		u.screen.SetContent(x, y, ' ', nil, status)
	}

	left := fmt.Sprintf(" words: %d  theme: %s", view.WordCount, u.palette.Name())
	if u.message != "" {
		left += "  " + u.message
	}
	x := u.drawString(0, y, left, 0, width, status)

	if view.Hint != "" {
		x = u.drawString(x, y, "  tab: ", 0, width, status)
		u.drawString(x, y, view.Hint, 0, width, u.palette.Hint().Reverse(true))
	}
}

// drawString writes s from byte offset skip at column x and returns the
// column after the last byte drawn.
func (u *UI) drawString(x, y int, s string, skip, width int, style tcell.Style) int {
	for i := skip; i < len(s) && x < width; i++ {
		u.screen.SetContent(x, y, rune(s[i]), nil, style)
		x++
	}
	return x
}
