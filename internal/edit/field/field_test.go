package field_test

import (
	"testing"

	"github.com/lhagen/inplace/internal/edit/field"
)

func TestEditor(t *testing.T) {

	t.Run("starts with cursor past end", func(t *testing.T) {
		e := field.NewEditor("abc")
		if e.CursorPos() != 3 {
			t.Error("expected cursor at 3, got", e.CursorPos())
		}
	})

	t.Run("AddRune", func(t *testing.T) {

		t.Run("appends at end", func(t *testing.T) {
			e := field.NewEditor("ab")
			e.AddRune('c')
			if e.Content() != "abc" {
				t.Error("expected 'abc', got", e.Content())
			}
		})

		t.Run("inserts mid-string", func(t *testing.T) {
			e := field.NewEditor("ac")
			e.MoveCursorToBeginning()
			e.MoveCursorRight()
			e.AddRune('b')
			if e.Content() != "abc" {
				t.Error("expected 'abc', got", e.Content())
			}
			if e.CursorPos() != 2 {
				t.Error("expected cursor at 2, got", e.CursorPos())
			}
		})

		t.Run("ignores unprintable runes", func(t *testing.T) {
			e := field.NewEditor("ab")
			e.AddRune('\x00')
			if e.Content() != "ab" {
				t.Error("expected content unchanged, got", e.Content())
			}
		})

	})

	t.Run("BackspaceRune", func(t *testing.T) {
		e := field.NewEditor("abc")
		e.BackspaceRune()
		if e.Content() != "ab" || e.CursorPos() != 2 {
			t.Errorf("expected 'ab'/2, got '%s'/%d", e.Content(), e.CursorPos())
		}

		e.MoveCursorToBeginning()
		e.BackspaceRune()
		if e.Content() != "ab" {
			t.Error("backspace at beginning must not change content")
		}
	})

	t.Run("DeleteRune", func(t *testing.T) {
		e := field.NewEditor("abc")
		e.MoveCursorToBeginning()
		e.DeleteRune()
		if e.Content() != "bc" {
			t.Error("expected 'bc', got", e.Content())
		}

		e.MoveCursorPastEnd()
		e.DeleteRune()
		if e.Content() != "bc" {
			t.Error("delete past end must not change content")
		}
	})

	t.Run("BackspaceToBeginning and DeleteToEnd", func(t *testing.T) {
		e := field.NewEditor("hello world")
		e.MoveCursorToBeginning()
		for i := 0; i < 6; i++ {
			e.MoveCursorRight()
		}
		e.BackspaceToBeginning()
		if e.Content() != "world" || e.CursorPos() != 0 {
			t.Errorf("expected 'world'/0, got '%s'/%d", e.Content(), e.CursorPos())
		}

		e.MoveCursorRight()
		e.DeleteToEnd()
		if e.Content() != "w" {
			t.Error("expected 'w', got", e.Content())
		}
	})

	t.Run("word motion", func(t *testing.T) {
		e := field.NewEditor("one two  three")
		e.MoveCursorToBeginning()

		e.MoveCursorNextWordBeginning()
		if e.CursorPos() != 4 {
			t.Error("expected cursor at 'two' (4), got", e.CursorPos())
		}

		e.MoveCursorNextWordBeginning()
		if e.CursorPos() != 9 {
			t.Error("expected cursor at 'three' (9), got", e.CursorPos())
		}

		e.MoveCursorPrevWordBeginning()
		if e.CursorPos() != 4 {
			t.Error("expected cursor back at 'two' (4), got", e.CursorPos())
		}
	})

	t.Run("OnChange mirrors content mutations", func(t *testing.T) {
		e := field.NewEditor("ab")
		var seen []string
		e.OnChange = func(s string) { seen = append(seen, s) }

		e.AddRune('c')
		e.BackspaceRune()
		e.MoveCursorLeft() // pure motion, no change report

		if len(seen) != 2 || seen[0] != "abc" || seen[1] != "ab" {
			t.Error("unexpected change reports:", seen)
		}
	})

	t.Run("unicode aware", func(t *testing.T) {
		e := field.NewEditor("ä")
		e.AddRune('ö')
		if e.Content() != "äö" {
			t.Error("expected 'äö', got", e.Content())
		}
		e.BackspaceRune()
		if e.Content() != "ä" {
			t.Error("expected 'ä', got", e.Content())
		}
	})

}
