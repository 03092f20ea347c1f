package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${INPLACE_HOME}/config.yaml'.
type Config struct {
	Editing    Editing    `yaml:"editing"`
	Stylesheet Stylesheet `yaml:"stylesheet"`
}

// Editing configures the edit lifecycle: the hover highlight class, the
// input-surface template mounted on edit entry, and where the demo
// persists committed content.
type Editing struct {
	HighlightClass string `yaml:"highlight-class"`
	PaneTemplate   string `yaml:"pane-template"`
	StorePath      string `yaml:"store-path"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal      Styling `yaml:"normal"`
	Element     Styling `yaml:"element"`
	Highlighted Styling `yaml:"highlighted"`
	Editing     Styling `yaml:"editing"`
	Status      Styling `yaml:"status"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify
// font style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%s)", err)
	}

	return defaultConfig.augmentWith(parsedConfig), nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.Editing.HighlightClass != "" {
		result.Editing.HighlightClass = augment.Editing.HighlightClass
	}
	if augment.Editing.PaneTemplate != "" {
		result.Editing.PaneTemplate = augment.Editing.PaneTemplate
	}
	if augment.Editing.StorePath != "" {
		result.Editing.StorePath = augment.Editing.StorePath
	}

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Element.overwriteIfDefined(augment.Element)
	result.Highlighted.overwriteIfDefined(augment.Highlighted)
	result.Editing.overwriteIfDefined(augment.Editing)
	result.Status.overwriteIfDefined(augment.Status)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
