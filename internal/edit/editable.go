package edit

import (
	"github.com/rs/zerolog/log"

	"github.com/lhagen/inplace/internal/dom"
	"github.com/lhagen/inplace/internal/event"
)

// paneInset is the fixed margin applied when sizing a freshly mounted input
// surface from its element's box: the surface is narrower than the element
// by this amount but taller by it, so the input feels roomier than the text
// it replaces rather than pixel-identical.
const paneInset = 2

// An Editable is one element wired into the edit lifecycle. It is created
// by Registry.Register and lives as long as the underlying element.
type Editable struct {
	node *dom.Node
	cfg  *Config
	hub  *event.Hub

	state        State
	savedContent string
	savedNodes   []*dom.Node
	surface      *dom.Node
	clickSub     event.Subscription
	blurSub      event.Subscription
}

// Node returns the underlying element.
func (ed *Editable) Node() *dom.Node { return ed.node }

// State returns the current lifecycle phase.
func (ed *Editable) State() State { return ed.state }

// Surface returns the currently mounted input surface, nil unless the
// element is in the editing phase.
func (ed *Editable) Surface() *dom.Node { return ed.surface }

// arm attaches the click listener that starts an edit. Called once at
// registration and again on every transition back to the display phase.
func (ed *Editable) arm() {
	ed.clickSub = ed.hub.Subscribe(ed.node, event.Click, func(event.Event) {
		ed.enterEdit()
	})
}

// enterEdit runs the display-to-editing transition.
//
// The state guard is the semantic re-entrancy protection; detaching the
// click subscription for the duration of the edit additionally keeps
// bubbled or duplicate clicks from ever reaching this handler.
func (ed *Editable) enterEdit() {
	if ed.state != StateDisplay {
		log.Debug().Str("state", ed.state.String()).Msg("ignoring click on element not in display state")
		return
	}

	// capture both forms of the original content: the serialized string
	// seeds the input surface, the nodes themselves restore the display on
	// an aborted or abandoned edit. Restoring from the nodes rather than by
	// re-parsing the string matters because committed text may contain
	// markup-like characters that do not parse back.
	ed.savedContent = ed.node.Content()
	ed.savedNodes = append([]*dom.Node(nil), ed.node.Children()...)
	ed.hub.Unsubscribe(ed.clickSub)
	ed.clickSub = event.Subscription{}

	// the element no longer shows editable display content, so the hover
	// affordance comes off with it
	ed.node.RemoveClass(ed.cfg.HighlightClassName)

	if err := ed.node.SetContent(ed.cfg.PaneTemplate); err != nil {
		// Setup validates templates, so this means the config was mutated
		// behind the registry's back; stay editable rather than wedge.
		log.Error().Err(err).Msg("cannot mount pane template, edit entry aborted")
		ed.restoreDisplay()
		return
	}
	surface := findFocusable(ed.node)
	if surface == nil {
		log.Error().Msg("pane template mounted without a focusable input, edit entry aborted")
		ed.restoreDisplay()
		return
	}

	surface.SetBox(ed.node.X, ed.node.Y, ed.node.W-paneInset, ed.node.H+paneInset)
	surface.SetValue(Trim(ed.savedContent))

	ed.surface = surface
	ed.state = StateEditing
	ed.blurSub = ed.hub.Subscribe(surface, event.Blur, func(event.Event) {
		ed.commit()
	})
	ed.hub.SetFocus(surface)

	log.Debug().Str("content", ed.savedContent).Msg("element entered editing state")
}

// commit runs the editing-to-display transition: the surface's current
// value is written back verbatim (whitespace the user typed is preserved),
// the element is made clickable again, and only then does the save callback
// run, so a callback that immediately interacts with the element sees it
// consistent and re-editable.
func (ed *Editable) commit() {
	if ed.state != StateEditing {
		return
	}

	value := ed.surface.Value()

	// drop the blur subscription before the surface node goes away; the
	// content replacement below would also clear it via the detach hook,
	// but the cleanup should not depend on that
	ed.hub.Unsubscribe(ed.blurSub)
	ed.blurSub = event.Subscription{}

	ed.node.SetText(value)
	ed.savedNodes = nil
	ed.surface = nil
	ed.state = StateDisplay
	ed.arm()

	log.Debug().Str("value", value).Msg("element committed edit")

	if callback := ed.cfg.SaveCallback; callback != nil {
		callback(ed.node)
	}
}

// Abandon cancels an edit in progress without committing: the content
// captured at edit entry is restored and the element becomes clickable
// again. The save callback does not run. Abandoning an element not
// currently editing is a no-op.
func (ed *Editable) Abandon() {
	if ed.state != StateEditing {
		return
	}

	ed.hub.Unsubscribe(ed.blurSub)
	ed.blurSub = event.Subscription{}

	ed.restoreDisplay()

	log.Debug().Msg("element abandoned edit")
}

// restoreDisplay puts the element back into the display phase showing the
// nodes captured at edit entry, re-attached as they were.
func (ed *Editable) restoreDisplay() {
	ed.node.ReplaceChildren(ed.savedNodes...)
	ed.savedNodes = nil
	ed.surface = nil
	ed.state = StateDisplay
	ed.arm()
}
