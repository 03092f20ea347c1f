package config

// DefaultPaneTemplate is the input-surface markup mounted on edit entry
// when the config file does not provide one.
const DefaultPaneTemplate = `<input type="text"/>`

// Default returns the default configuration for the given colorscheme type
// (light or dark).
func Default(colorschemeType ColorschemeType) Config {
	return Config{
		Editing: Editing{
			HighlightClass: "highlight",
			PaneTemplate:   DefaultPaneTemplate,
			StorePath:      "inplace-content.json",
		},
		Stylesheet: defaultStylesheet(colorschemeType),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:      Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			Element:     Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
			Highlighted: Styling{Fg: "#000000", Bg: "#ffdc74", Style: &FontStyle{Bold: true}},
			Editing:     Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{Underlined: true}},
			Status:      Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:      Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		Element:     Styling{Fg: "#202020", Bg: "#f0f0f0", Style: &FontStyle{}},
		Highlighted: Styling{Fg: "#000000", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
		Editing:     Styling{Fg: "#000000", Bg: "#d0d0d0", Style: &FontStyle{Underlined: true}},
		Status:      Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
	}
}
