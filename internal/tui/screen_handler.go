package tui

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lhagen/inplace/internal/styling"
)

// ScreenHandler allows rendering to a terminal (via tcell.Screen).
// It also handles synchronization (e.g. on resize) when prompted
// accordingly.
type ScreenHandler struct {
	screen    tcell.Screen
	needsSync bool
}

// NewScreenHandler initializes and returns a ScreenHandler.
func NewScreenHandler() *ScreenHandler {
	s := &ScreenHandler{}
	s.init()
	return s
}

// Initialize the screen checking errors, so long as no critical error
// occurred.
func (s *ScreenHandler) init() {
	var err error
	s.screen, err = tcell.NewScreen()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	err = s.screen.Init()
	if err != nil {
		log.Fatalf("%+v", err)
	}

	defStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	s.screen.SetStyle(defStyle)
	s.screen.EnableMouse()
	s.screen.Clear()
}

// PollEvent returns the next event from the underlying screen, blocking
// until one is available.
func (s *ScreenHandler) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Fini finalizes the screen, e.g., for clean program shutdown.
func (s *ScreenHandler) Fini() {
	s.screen.Fini()
}

// NeedsSync registers that a synchronization of the underlying screen is
// necessary. This is necessary on resize events.
func (s *ScreenHandler) NeedsSync() {
	s.needsSync = true
}

// Dimensions returns the current dimensions of the underlying screen.
func (s *ScreenHandler) Dimensions() (w, h int) {
	return s.screen.Size()
}

// ShowCursor sets the position of the text cursor.
func (s *ScreenHandler) ShowCursor(x, y int) {
	s.screen.ShowCursor(x, y)
}

// HideCursor hides the text cursor.
func (s *ScreenHandler) HideCursor() {
	s.screen.HideCursor()
}

// Clear clears the underlying screen.
// If this is not done before drawing new things, old contents that are not
// overwritten will remain visible on the next Show.
func (s *ScreenHandler) Clear() {
	s.screen.Clear()
}

// Show shows the drawn contents, taking the necessity for synchronization
// into account.
func (s *ScreenHandler) Show() {
	if s.needsSync {
		s.needsSync = false
		s.screen.Sync()
	} else {
		s.screen.Show()
	}
}

// DrawText draws the given text at the given position in the given style,
// truncated to the given width in terminal cells.
func (s *ScreenHandler) DrawText(x, y, w int, style styling.DrawStyling, text string) {
	if w <= 0 {
		return
	}

	tcellStyle := style.AsTcell()

	col := x
	for _, r := range text {
		rw := runewidth.RuneWidth(r)
		if col+rw > x+w {
			return
		}
		s.screen.SetContent(col, y, r, nil, tcellStyle)
		col += rw
	}
}

// DrawBox draws a box of the given dimensions in the given style's
// background color. Note that this overwrites contents within the
// dimensions.
func (s *ScreenHandler) DrawBox(x, y, w, h int, style styling.DrawStyling) {
	tcellStyle := style.AsTcell()
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			s.screen.SetContent(col, row, ' ', nil, tcellStyle)
		}
	}
}
