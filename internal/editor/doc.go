// Package editor turns editing intents into document changes.
//
// An Editor owns one document and its undo history. Each call to Apply
// handles a single intent to completion: it mutates the document, consults
// the completion table or spellchecker when the intent asks for it, and
// records an undo snapshot if the text changed. Intents that cannot apply
// (backspace at the start of the document, undo with no history, and so
// on) are silent no-ops.
//
// The dictionary, completion table, spellcheck sink and logger are passed
// in at construction and never replaced; an Editor has no package-level
// state. Editors are not safe for concurrent use.
package editor
