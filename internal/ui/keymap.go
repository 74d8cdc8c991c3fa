package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/texted/internal/editor"
)

// IntentFor maps a key event to an editing intent. The second result is
// false for keys with no binding.
//
//	printable ASCII  insert        Space       word boundary (spellcheck)
//	arrows           move          Tab         complete
//	Backspace        delete back   Delete      delete forward
//	Enter            newline       Esc         exit
//	Ctrl+Z / Ctrl+Y  undo / redo   Ctrl+S      save
//	Ctrl+R           cycle theme
func IntentFor(ev *tcell.EventKey) (editor.Intent, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		switch {
		case r == ' ':
			return editor.Simple(editor.KindWordBoundary), true
		case r > ' ' && r < 0x7f:
			return editor.Insert(byte(r)), true
		}
		return editor.Intent{}, false

	case tcell.KeyLeft:
		return editor.Move(editor.DirLeft), true
	case tcell.KeyRight:
		return editor.Move(editor.DirRight), true
	case tcell.KeyUp:
		return editor.Move(editor.DirUp), true
	case tcell.KeyDown:
		return editor.Move(editor.DirDown), true

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Backspace(), true
	case tcell.KeyDelete:
		return editor.Delete(), true
	case tcell.KeyEnter:
		return editor.Simple(editor.KindNewline), true
	case tcell.KeyTab:
		return editor.Simple(editor.KindComplete), true
	case tcell.KeyEscape:
		return editor.Simple(editor.KindExit), true

	case tcell.KeyCtrlZ:
		return editor.Simple(editor.KindUndo), true
	case tcell.KeyCtrlY:
		return editor.Simple(editor.KindRedo), true
	case tcell.KeyCtrlS:
		return editor.Simple(editor.KindSave), true
	case tcell.KeyCtrlR:
		return editor.Simple(editor.KindCycleTheme), true
	}
	return editor.Intent{}, false
}
