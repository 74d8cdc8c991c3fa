package editor

import "fmt"

// Kind identifies an editing intent.
type Kind uint8

const (
	// KindNone is the zero intent; applying it does nothing.
	KindNone Kind = iota
	// KindInsert types Intent.Char.
	KindInsert
	// KindMove moves the cursor in Intent.Dir.
	KindMove
	// KindDelete deletes one byte; DirBackward is backspace.
	KindDelete
	// KindNewline opens a line below the cursor.
	KindNewline
	// KindUndo reverts the last change.
	KindUndo
	// KindRedo reapplies the last undone change.
	KindRedo
	// KindSave writes the document to its path.
	KindSave
	// KindComplete expands the word before the cursor from the completion table.
	KindComplete
	// KindSpellcheck checks the word before the cursor.
	KindSpellcheck
	// KindWordBoundary spellchecks the current word and types a space.
	KindWordBoundary
	// KindExit asks the frontend to quit.
	KindExit
	// KindCycleTheme asks the frontend to switch color theme.
	KindCycleTheme
)

// String returns the intent name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInsert:
		return "insert"
	case KindMove:
		return "move"
	case KindDelete:
		return "delete"
	case KindNewline:
		return "newline"
	case KindUndo:
		return "undo"
	case KindRedo:
		return "redo"
	case KindSave:
		return "save"
	case KindComplete:
		return "complete"
	case KindSpellcheck:
		return "spellcheck"
	case KindWordBoundary:
		return "word-boundary"
	case KindExit:
		return "exit"
	case KindCycleTheme:
		return "cycle-theme"
	default:
		return "unknown"
	}
}

// Direction is the direction of a move or delete.
type Direction uint8

const (
	// DirNone indicates no direction.
	DirNone Direction = iota
	// DirUp moves to the previous line.
	DirUp
	// DirDown moves to the next line.
	DirDown
	// DirLeft moves one byte left.
	DirLeft
	// DirRight moves one byte right.
	DirRight
	// DirForward deletes the byte after the cursor.
	DirForward
	// DirBackward deletes the byte before the cursor.
	DirBackward
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirForward:
		return "forward"
	case DirBackward:
		return "backward"
	default:
		return "none"
	}
}

// Intent is one discrete editing request.
type Intent struct {
	Kind Kind
	Char byte
	Dir  Direction
}

// String renders the intent for logs.
func (i Intent) String() string {
	switch i.Kind {
	case KindInsert:
		return fmt.Sprintf("insert(%q)", i.Char)
	case KindMove, KindDelete:
		return fmt.Sprintf("%s(%s)", i.Kind, i.Dir)
	default:
		return i.Kind.String()
	}
}

// Insert returns an intent typing ch.
func Insert(ch byte) Intent { return Intent{Kind: KindInsert, Char: ch} }

// Move returns a cursor movement intent.
func Move(dir Direction) Intent { return Intent{Kind: KindMove, Dir: dir} }

// Backspace returns an intent deleting the byte before the cursor.
func Backspace() Intent { return Intent{Kind: KindDelete, Dir: DirBackward} }

// Delete returns an intent deleting the byte after the cursor.
func Delete() Intent { return Intent{Kind: KindDelete, Dir: DirForward} }

// Simple returns an intent that carries no payload.
func Simple(k Kind) Intent { return Intent{Kind: k} }
