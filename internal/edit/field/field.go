// Package field implements cursor-based editing of a single line of text,
// as needed to drive the value of a mounted input surface.
package field

import (
	"strconv"
)

// An Editor holds a line of text and a cursor position within it, and
// offers the usual single-line editing operations. After every mutation it
// reports the new content through OnChange, so a host can mirror the text
// into whatever holds the authoritative value (e.g. an input surface's
// value attribute).
type Editor struct {
	content   string
	cursorPos int

	// OnChange, if set, is called with the full content after every
	// content mutation (not after pure cursor movement).
	OnChange func(string)
}

// NewEditor constructs an editor seeded with the given content, cursor past
// the end.
func NewEditor(content string) *Editor {
	return &Editor{
		content:   content,
		cursorPos: len([]rune(content)),
	}
}

// Content returns the current (edited) content.
func (e *Editor) Content() string { return e.content }

// CursorPos returns the cursor position as a rune offset, 0 being before
// the first rune.
func (e *Editor) CursorPos() int { return e.cursorPos }

func (e *Editor) changed() {
	if e.OnChange != nil {
		e.OnChange(e.content)
	}
}

// AddRune inserts a printable rune at the cursor position.
func (e *Editor) AddRune(newRune rune) {
	if !strconv.IsPrint(newRune) {
		return
	}
	runes := []rune(e.content)
	if e.cursorPos == len(runes) {
		runes = append(runes, newRune)
	} else {
		runes = append(runes[:e.cursorPos+1], runes[e.cursorPos:]...)
		runes[e.cursorPos] = newRune
	}
	e.content = string(runes)
	e.cursorPos++
	e.changed()
}

// BackspaceRune deletes the rune before the cursor position.
func (e *Editor) BackspaceRune() {
	if e.cursorPos == 0 {
		return
	}
	runes := []rune(e.content)
	e.content = string(append(runes[:e.cursorPos-1], runes[e.cursorPos:]...))
	e.cursorPos--
	e.changed()
}

// DeleteRune deletes the rune at the cursor position.
func (e *Editor) DeleteRune() {
	runes := []rune(e.content)
	if e.cursorPos >= len(runes) {
		return
	}
	e.content = string(append(runes[:e.cursorPos], runes[e.cursorPos+1:]...))
	e.changed()
}

// BackspaceToBeginning deletes all runes before the cursor position.
func (e *Editor) BackspaceToBeginning() {
	e.content = string([]rune(e.content)[e.cursorPos:])
	e.cursorPos = 0
	e.changed()
}

// DeleteToEnd deletes all runes from the cursor position to the end.
func (e *Editor) DeleteToEnd() {
	e.content = string([]rune(e.content)[:e.cursorPos])
	e.changed()
}

// Clear deletes all content.
func (e *Editor) Clear() {
	e.content = ""
	e.cursorPos = 0
	e.changed()
}

// MoveCursorToBeginning moves the cursor before the first rune.
func (e *Editor) MoveCursorToBeginning() { e.cursorPos = 0 }

// MoveCursorPastEnd moves the cursor past the last rune.
func (e *Editor) MoveCursorPastEnd() { e.cursorPos = len([]rune(e.content)) }

// MoveCursorLeft moves the cursor one rune to the left.
func (e *Editor) MoveCursorLeft() {
	if e.cursorPos > 0 {
		e.cursorPos--
	}
}

// MoveCursorRight moves the cursor one rune to the right, at most past the
// end of the content.
func (e *Editor) MoveCursorRight() {
	if e.cursorPos < len([]rune(e.content)) {
		e.cursorPos++
	}
}

// MoveCursorNextWordBeginning moves the cursor to the beginning of the next
// word, or past the end if there is none.
func (e *Editor) MoveCursorNextWordBeginning() {
	runes := []rune(e.content)
	if len(runes) == 0 {
		e.cursorPos = 0
		return
	}

	i := e.cursorPos
	for i < len(runes) && runes[i] != ' ' {
		i++
	}
	for i < len(runes) && runes[i] == ' ' {
		i++
	}
	e.cursorPos = i
}

// MoveCursorPrevWordBeginning moves the cursor to the beginning of the
// previous word, or to the beginning if there is none.
func (e *Editor) MoveCursorPrevWordBeginning() {
	beforeCursor := []rune(e.content)[:e.cursorPos]
	if len(beforeCursor) == 0 {
		return
	}
	i := len(beforeCursor)
	for i > 0 && beforeCursor[i-1] == ' ' {
		i--
	}
	for i > 0 && beforeCursor[i-1] != ' ' {
		i--
	}
	e.cursorPos = i
}
