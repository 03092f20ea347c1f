// Package edit implements in-place editing of document elements: a
// registry marks elements as editable, and each editable element runs a
// small lifecycle that swaps its rendered content for a text-input surface
// on click and commits the typed text back on blur.
package edit

import (
	"fmt"

	"github.com/lhagen/inplace/internal/dom"
)

// State is the lifecycle phase of an editable element.
type State int

const (
	// StateDisplay is the resting phase: the element shows its content and
	// a click starts an edit.
	StateDisplay State = iota
	// StateEditing is the transient phase: the element's content has been
	// replaced by an input surface, and a blur of that surface commits.
	StateEditing
)

// String returns the name of the state, for logging.
func (s State) String() string {
	switch s {
	case StateDisplay:
		return "display"
	case StateEditing:
		return "editing"
	}
	return "[unknown state]"
}

// Config is the process-wide editing configuration, shared by reference
// across all editable elements. Handlers read it at the moment an event
// fires rather than snapshotting it at registration, so a later Setup call
// affects already-registered elements too.
type Config struct {
	// PaneTemplate is the markup mounted in place of an element's content
	// on edit entry. It must contain exactly one focusable text-input
	// element; Setup validates this.
	PaneTemplate string

	// HighlightClassName is the class token toggled on hover.
	HighlightClassName string

	// SaveCallback, if set, is invoked synchronously after a commit, with
	// the edited element. The element's content has already been replaced
	// with the committed text and the element is re-editable by the time
	// the callback runs. Panics in the callback are not recovered here.
	SaveCallback func(*dom.Node)

	// SubmitURL is a legacy persistence endpoint.
	//
	// Deprecated: superseded by SaveCallback; retained for configuration
	// compatibility, never read.
	SubmitURL string
}

// Options carries a partial configuration update for Setup. Nil fields keep
// their current value, so options can be applied independently.
type Options struct {
	PaneTemplate       *string
	HighlightClassName *string
	SaveCallback       func(*dom.Node)
	SubmitURL          *string
}

// validatePaneTemplate checks that a pane template parses and contains
// exactly one focusable input element, failing Setup fast rather than
// leaving edit entry undefined.
func validatePaneTemplate(template string) error {
	nodes, err := dom.ParseFragment(template)
	if err != nil {
		return fmt.Errorf("pane template does not parse: %w", err)
	}
	count := 0
	for _, n := range nodes {
		countFocusables(n, &count)
	}
	if count == 0 {
		return fmt.Errorf("pane template contains no focusable input element")
	}
	if count > 1 {
		return fmt.Errorf("pane template contains %d focusable input elements, want exactly 1", count)
	}
	return nil
}

func countFocusables(n *dom.Node, count *int) {
	if dom.Focusable(n) {
		*count++
	}
	for _, c := range n.Children() {
		countFocusables(c, count)
	}
}

func findFocusable(n *dom.Node) *dom.Node {
	if dom.Focusable(n) {
		return n
	}
	for _, c := range n.Children() {
		if found := findFocusable(c); found != nil {
			return found
		}
	}
	return nil
}
