package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rs/zerolog/log"

	"github.com/lhagen/inplace/internal/dom"
	"github.com/lhagen/inplace/internal/edit"
	"github.com/lhagen/inplace/internal/edit/field"
	"github.com/lhagen/inplace/internal/event"
	"github.com/lhagen/inplace/internal/styling"
)

const statusHint = "click an element to edit it  |  <enter>/click elsewhere: commit  <esc>: abandon  q: quit"

// Demo runs a terminal host around an editing registry: it renders the
// document's elements as boxes, translates terminal mouse and key events
// into the pointer/click/blur events the edit lifecycle is driven by, and
// routes typed input to the mounted input surface.
type Demo struct {
	screen     *ScreenHandler
	doc        *dom.Document
	hub        *event.Hub
	registry   *edit.Registry
	stylesheet *styling.Stylesheet

	hovered     *dom.Node
	focused     *dom.Node
	fieldEditor *field.Editor
}

// NewDemo constructs the demo host. The screen is expected to be
// initialized; finalizing it on shutdown stays with the caller.
func NewDemo(
	screen *ScreenHandler,
	doc *dom.Document,
	hub *event.Hub,
	registry *edit.Registry,
	stylesheet *styling.Stylesheet,
) *Demo {
	return &Demo{
		screen:     screen,
		doc:        doc,
		hub:        hub,
		registry:   registry,
		stylesheet: stylesheet,
	}
}

// Run drives the event loop until the user quits. Everything runs on the
// calling goroutine; each event is fully processed before the next is
// polled, matching the synchronous dispatch model of the event hub.
func (d *Demo) Run() {
	d.layout()
	for {
		d.draw()

		ev := d.screen.PollEvent()
		if !d.processEvent(ev) {
			return
		}
		d.syncFocus()
	}
}

// layout assigns box geometry: the root covers the screen (minus the
// status line), the root's element children stack vertically.
func (d *Demo) layout() {
	w, h := d.screen.Dimensions()
	root := d.doc.Root()
	root.SetBox(0, 0, w, h-1)

	y := 2
	for _, child := range root.Children() {
		if child.Type != dom.ElementNode {
			continue
		}
		boxWidth := w - 8
		if boxWidth > 48 {
			boxWidth = 48
		}
		child.SetBox(4, y, boxWidth, 1)
		y += 3
	}
}

func (d *Demo) processEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventResize:
		d.screen.NeedsSync()
		d.layout()

	case *tcell.EventKey:
		return d.handleKey(e)

	case *tcell.EventMouse:
		d.handleMouse(e)
	}
	return true
}

func (d *Demo) handleKey(e *tcell.EventKey) bool {
	if d.hub.Focused() != nil && d.fieldEditor != nil {
		d.handleEditingKey(e)
		return true
	}

	switch {
	case e.Key() == tcell.KeyCtrlC:
		return false
	case e.Key() == tcell.KeyRune && e.Rune() == 'q':
		return false
	}
	return true
}

func (d *Demo) handleEditingKey(e *tcell.EventKey) {
	switch e.Key() {
	case tcell.KeyEnter:
		// commit is always reached through a blur of the surface
		d.hub.SetFocus(nil)
	case tcell.KeyEscape:
		if ed := d.editableForSurface(d.hub.Focused()); ed != nil {
			ed.Abandon()
		}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		d.fieldEditor.BackspaceRune()
	case tcell.KeyDelete:
		d.fieldEditor.DeleteRune()
	case tcell.KeyLeft:
		d.fieldEditor.MoveCursorLeft()
	case tcell.KeyRight:
		d.fieldEditor.MoveCursorRight()
	case tcell.KeyHome:
		d.fieldEditor.MoveCursorToBeginning()
	case tcell.KeyEnd:
		d.fieldEditor.MoveCursorPastEnd()
	case tcell.KeyCtrlU:
		d.fieldEditor.BackspaceToBeginning()
	case tcell.KeyCtrlK:
		d.fieldEditor.DeleteToEnd()
	case tcell.KeyRune:
		d.fieldEditor.AddRune(e.Rune())
	}
}

func (d *Demo) handleMouse(e *tcell.EventMouse) {
	x, y := e.Position()

	switch e.Buttons() {
	case tcell.Button1:
		target := d.doc.ElementAt(x, y)
		// a click anywhere but the focused surface takes focus off it,
		// which is what commits a running edit
		if focused := d.hub.Focused(); focused != nil && target != focused {
			d.hub.SetFocus(nil)
		}
		if target != nil {
			d.hub.Dispatch(event.Event{Type: event.Click, Target: target})
		}

	case tcell.ButtonNone:
		d.updateHover(x, y)
	}
}

func (d *Demo) updateHover(x, y int) {
	target := d.doc.ElementAt(x, y)
	if target == d.hovered {
		return
	}
	if d.hovered != nil {
		d.hub.Dispatch(event.Event{Type: event.PointerLeave, Target: d.hovered})
	}
	if target != nil {
		d.hub.Dispatch(event.Event{Type: event.PointerEnter, Target: target})
	}
	d.hovered = target
}

// syncFocus picks up focus transfers done by the edit lifecycle: when an
// input surface gains focus a field editor is seeded from its value and
// mirrors every change back into it.
func (d *Demo) syncFocus() {
	focused := d.hub.Focused()
	if focused == d.focused {
		return
	}
	d.focused = focused
	if focused == nil {
		d.fieldEditor = nil
		return
	}

	editor := field.NewEditor(focused.Value())
	editor.OnChange = focused.SetValue
	d.fieldEditor = editor
	log.Debug().Str("value", focused.Value()).Msg("field editor attached to input surface")
}

func (d *Demo) editableForSurface(surface *dom.Node) *edit.Editable {
	if surface == nil {
		return nil
	}
	for _, ed := range d.registry.Editables() {
		if ed.Surface() == surface {
			return ed
		}
	}
	return nil
}

func (d *Demo) draw() {
	w, h := d.screen.Dimensions()
	d.screen.Clear()
	d.screen.DrawBox(0, 0, w, h-1, d.stylesheet.Normal)

	cursorShown := false
	highlightClass := d.registry.Config().HighlightClassName

	for _, node := range d.doc.Root().Children() {
		if node.Type != dom.ElementNode {
			continue
		}

		ed := d.registry.Lookup(node)
		if ed != nil && ed.State() == edit.StateEditing {
			cursorShown = d.drawSurface(ed.Surface()) || cursorShown
			continue
		}

		style := d.stylesheet.Element
		if highlightClass != "" && node.HasClass(highlightClass) {
			style = d.stylesheet.Highlighted
		}
		d.screen.DrawBox(node.X, node.Y, node.W, node.H, style)
		d.screen.DrawText(node.X+1, node.Y, node.W-1, style, textOf(node))
	}

	if !cursorShown {
		d.screen.HideCursor()
	}

	d.screen.DrawBox(0, h-1, w, 1, d.stylesheet.Status)
	d.screen.DrawText(0, h-1, w, d.stylesheet.Status.DefaultDimmed(), statusHint)

	d.screen.Show()
}

// drawSurface renders a mounted input surface and, if it holds focus,
// places the terminal cursor at the field editor's cursor position. It
// reports whether the cursor was shown.
func (d *Demo) drawSurface(surface *dom.Node) bool {
	if surface == nil {
		return false
	}
	style := d.stylesheet.Editing
	if d.hub.Focused() == surface {
		style = style.DefaultEmphasized()
	}
	d.screen.DrawBox(surface.X, surface.Y, surface.W, surface.H, style)
	d.screen.DrawText(surface.X+1, surface.Y, surface.W-1, style, surface.Value())

	if d.hub.Focused() != surface || d.fieldEditor == nil {
		return false
	}
	beforeCursor := []rune(d.fieldEditor.Content())[:d.fieldEditor.CursorPos()]
	d.screen.ShowCursor(surface.X+1+runewidth.StringWidth(string(beforeCursor)), surface.Y)
	return true
}

// textOf concatenates the text of all text-node descendants, i.e. the
// rendered text of an element outside of editing.
func textOf(n *dom.Node) string {
	if n.Type == dom.TextNode {
		return n.Text
	}
	text := ""
	for _, c := range n.Children() {
		text += textOf(c)
	}
	return text
}
