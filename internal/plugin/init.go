package plugin

import (
	"context"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// ModuleName is the global table exposed to scripts.
const ModuleName = "texted"

// Words accepts dictionary words.
type Words interface {
	Insert(word string) bool
}

// Completions accepts completion table entries.
type Completions interface {
	Set(prefix, word string) error
}

// Logger receives texted.log output.
type Logger interface {
	Info(msg string, args ...any)
}

// Stats counts what a script contributed.
type Stats struct {
	Words       int // accepted by the dictionary
	Rejected    int // refused by the dictionary
	Completions int
}

// Host binds the texted module to its collaborators.
type Host struct {
	words       Words
	completions Completions
	logger      Logger
	version     string
	stats       Stats
}

// NewHost creates a host. Any collaborator may be nil; calls that need it
// then fail with a Lua error.
func NewHost(words Words, completions Completions, logger Logger, version string) *Host {
	return &Host{
		words:       words,
		completions: completions,
		logger:      logger,
		version:     version,
	}
}

// Stats returns the counts accumulated so far.
func (h *Host) Stats() Stats {
	return h.stats
}

// Install registers the texted module in s.
func (h *Host) Install(s *State) {
	s.RegisterModule(ModuleName, map[string]lua.LGFunction{
		"word":     h.luaWord,
		"words":    h.luaWords,
		"complete": h.luaComplete,
		"log":      h.luaLog,
	}, map[string]lua.LValue{
		"version": lua.LString(h.version),
	})
}

// Run executes the script at path in a fresh sandboxed state.
func (h *Host) Run(ctx context.Context, path string, opts ...StateOption) (Stats, error) {
	s := NewState(opts...)
	defer s.Close()

	h.Install(s)
	if err := s.DoFile(ctx, path); err != nil {
		return h.stats, fmt.Errorf("run %s: %w", path, err)
	}
	return h.stats, nil
}

func (h *Host) insert(word string) bool {
	if h.words.Insert(word) {
		h.stats.Words++
		return true
	}
	h.stats.Rejected++
	return false
}

func (h *Host) luaWord(L *lua.LState) int {
	word := L.CheckString(1)
	if h.words == nil {
		L.RaiseError("no dictionary available")
		return 0
	}
	L.Push(lua.LBool(h.insert(word)))
	return 1
}

func (h *Host) luaWords(L *lua.LState) int {
	tbl := L.CheckTable(1)
	if h.words == nil {
		L.RaiseError("no dictionary available")
		return 0
	}
	accepted := 0
	tbl.ForEach(func(_, v lua.LValue) {
		if s, ok := v.(lua.LString); ok && h.insert(string(s)) {
			accepted++
		}
	})
	L.Push(lua.LNumber(accepted))
	return 1
}

func (h *Host) luaComplete(L *lua.LState) int {
	prefix := L.CheckString(1)
	word := L.CheckString(2)
	if h.completions == nil {
		L.RaiseError("no completion table available")
		return 0
	}
	if err := h.completions.Set(prefix, word); err != nil {
		L.RaiseError("complete %q: %v", prefix, err)
		return 0
	}
	h.stats.Completions++
	return 0
}

func (h *Host) luaLog(L *lua.LState) int {
	format := L.CheckString(1)
	args := make([]any, 0, L.GetTop()-1)
	for i := 2; i <= L.GetTop(); i++ {
		args = append(args, toGo(L.Get(i)))
	}
	if h.logger != nil {
		h.logger.Info("script: "+format, args...)
	}
	return 0
}

// toGo converts a Lua scalar to the closest Go value for formatting.
func toGo(v lua.LValue) any {
	switch v := v.(type) {
	case lua.LString:
		return string(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LBool:
		return bool(v)
	default:
		return v.String()
	}
}
