package styling

import (
	"github.com/lhagen/inplace/internal/config"
)

// Stylesheet represents all styles used by the demo application for
// rendering.
type Stylesheet struct {
	Normal      DrawStyling
	Element     DrawStyling
	Highlighted DrawStyling
	Editing     DrawStyling
	Status      DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(cfg config.Stylesheet) *Stylesheet {
	return &Stylesheet{
		Normal:      StyleFromConfig(cfg.Normal),
		Element:     StyleFromConfig(cfg.Element),
		Highlighted: StyleFromConfig(cfg.Highlighted),
		Editing:     StyleFromConfig(cfg.Editing),
		Status:      StyleFromConfig(cfg.Status),
	}
}

// StyleFromConfig converts a config styling to a DrawStyling.
func StyleFromConfig(cfg config.Styling) DrawStyling {
	style := StyleFromHex(cfg.Fg, cfg.Bg)
	if cfg.Style != nil {
		if cfg.Style.Bold {
			style = style.Bolded().(*FallbackStyling)
		}
		if cfg.Style.Italic {
			style = style.Italicized().(*FallbackStyling)
		}
		if cfg.Style.Underlined {
			style = style.Underlined().(*FallbackStyling)
		}
	}
	return style
}
