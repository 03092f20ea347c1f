package styling

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

func colorfulColorToTcellColor(color colorful.Color) tcell.Color {
	r, g, b := color.RGB255()
	rgb := (uint32(r) << 16) | (uint32(g) << 8) | uint32(b)
	return tcell.NewHexColor(int32(rgb))
}

// lightenColorfulColor moves the color's lightness the given percentage of
// the way towards full white.
func lightenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	scalar := float64(percentage) / 100.0
	return colorful.Hsl(hue, sat, ltn+(1.0-ltn)*scalar)
}

// darkenColorfulColor moves the color's lightness the given percentage of
// the way towards full black.
func darkenColorfulColor(color colorful.Color, percentage int) colorful.Color {
	hue, sat, ltn := color.Hsl()
	scalar := float64(percentage) / 100.0
	return colorful.Hsl(hue, sat, ltn-ltn*scalar)
}

func colorfulColorFromHexString(hex string) colorful.Color {
	color, err := colorful.Hex(hex)
	if err != nil {
		panic(fmt.Sprintf("unable to create colorful.Color from '%s' due to error: '%s'", hex, err.Error()))
	}
	return color
}
