package plugin

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/texted/internal/completion"
	"github.com/dshills/texted/internal/dictionary"
)

type captureLogger struct{ lines []string }

func (l *captureLogger) Info(msg string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

func writeScript(t *testing.T, code string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "init.lua")
	require.NoError(t, os.WriteFile(path, []byte(code), 0o644))
	return path
}

// ============================================================================
// Sandbox
// ============================================================================

func TestStateSandbox(t *testing.T) {
	s := NewState()
	defer s.Close()

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "io", "os", "debug"} {
		assert.Equal(t, lua.LNil, s.GetGlobal(name), name)
	}
	for _, name := range []string{"string", "table", "math", "pairs"} {
		assert.NotEqual(t, lua.LNil, s.GetGlobal(name), name)
	}
}

func TestStateDoString(t *testing.T) {
	s := NewState()
	defer s.Close()

	require.NoError(t, s.DoString(context.Background(), `x = string.upper("ok")`))
	assert.Equal(t, lua.LString("OK"), s.GetGlobal("x"))

	assert.Error(t, s.DoString(context.Background(), `os.exit(1)`))
}

func TestStateTimeout(t *testing.T) {
	s := NewState(WithExecutionTimeout(50 * time.Millisecond))
	defer s.Close()

	err := s.DoString(context.Background(), `while true do end`)
	assert.ErrorIs(t, err, ErrExecutionTimeout)
}

func TestStateClosed(t *testing.T) {
	s := NewState()
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.DoString(context.Background(), `x = 1`), ErrStateClosed)
	assert.Equal(t, lua.LNil, s.GetGlobal("x"))
}

// ============================================================================
// Host
// ============================================================================

func TestHostRun(t *testing.T) {
	dict := dictionary.New()
	table := completion.New()
	logger := &captureLogger{}

	path := writeScript(t, `
texted.word("zymurgy")
local ok = texted.word("Bad")
local n = texted.words({"alpha", "beta", "x1"})
texted.complete("zy", "zymurgy")
texted.log("added %d words, bad=%s, on %s", n, tostring(ok), texted.version)
`)

	stats, err := NewHost(dict, table, logger, "1.2.3").Run(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, Stats{Words: 3, Rejected: 2, Completions: 1}, stats)
	assert.True(t, dict.Contains("zymurgy"))
	assert.True(t, dict.Contains("beta"))
	assert.False(t, dict.Contains("bad"))

	word, ok := table.Lookup("zy")
	require.True(t, ok)
	assert.Equal(t, "zymurgy", word)

	assert.Equal(t, []string{"script: added 2 words, bad=false, on 1.2.3"}, logger.lines)
}

func TestHostCompleteAfterFreeze(t *testing.T) {
	table := completion.New()
	table.Freeze()

	path := writeScript(t, `texted.complete("gr", "great")`)
	_, err := NewHost(dictionary.New(), table, nil, "").Run(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gr")
}

func TestHostMissingCollaborators(t *testing.T) {
	host := NewHost(nil, nil, nil, "")

	for _, code := range []string{`texted.word("a")`, `texted.words({"a"})`, `texted.complete("a", "b")`} {
		_, err := host.Run(context.Background(), writeScript(t, code))
		assert.Error(t, err, code)
	}

	// Logging without a logger is silently dropped.
	_, err := host.Run(context.Background(), writeScript(t, `texted.log("x")`))
	assert.NoError(t, err)
}

func TestHostMissingScript(t *testing.T) {
	_, err := NewHost(dictionary.New(), nil, nil, "").Run(context.Background(), "/no/such/init.lua")
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrExecutionTimeout))
}

func TestToGo(t *testing.T) {
	assert.Equal(t, int64(3), toGo(lua.LNumber(3)))
	assert.Equal(t, 1.5, toGo(lua.LNumber(1.5)))
	assert.Equal(t, "s", toGo(lua.LString("s")))
	assert.Equal(t, true, toGo(lua.LTrue))
	assert.Equal(t, "nil", toGo(lua.LNil))
}
