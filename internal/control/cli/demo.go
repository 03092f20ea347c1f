package cli

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nathan-osman/go-sunrise"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lhagen/inplace/internal/config"
	"github.com/lhagen/inplace/internal/dom"
	"github.com/lhagen/inplace/internal/edit"
	"github.com/lhagen/inplace/internal/event"
	"github.com/lhagen/inplace/internal/storage"
	"github.com/lhagen/inplace/internal/styling"
	"github.com/lhagen/inplace/internal/tui"
)

// DemoCommand is the command line flags for the `demo` command, for
// `go-flags` to parse command line args into.
type DemoCommand struct {
	Theme         string `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml; if unset, chosen by local daylight when LATITUDE/LONGITUDE are set)"`
	LogOutputFile string `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool   `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute executes the demo command: it brings up a terminal host around a
// sample document of editable elements.
func (command *DemoCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		log.Logger = zerolog.New(fileLogger).With().Timestamp().Caller().Logger()
	} else {
		log.Logger = zerolog.Nop()
	}

	theme := command.resolveTheme(stderrLogger)

	// set up dir per option
	inplaceHome := os.Getenv("INPLACE_HOME")
	if inplaceHome == "" {
		inplaceHome = os.Getenv("HOME") + "/.config/inplace"
	} else {
		inplaceHome = strings.TrimRight(inplaceHome, "/")
	}

	// read config from file
	yamlData, err := os.ReadFile(inplaceHome + "/" + "config.yaml")
	if err != nil {
		log.Warn().Err(err).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}
	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("can't parse config data")
	}

	doc := dom.NewDocument()
	hub := event.NewHub()
	hub.Attach(doc)

	store := storage.NewJSONStore(configData.Editing.StorePath)
	seedDocument(doc, store)

	registry := edit.NewRegistry(doc, hub)
	err = registry.Setup(edit.Options{
		PaneTemplate:       &configData.Editing.PaneTemplate,
		HighlightClassName: &configData.Editing.HighlightClass,
		SaveCallback:       store.SaveCallback(),
	})
	if err != nil {
		stderrLogger.Fatal().Err(err).Msg("editing configuration rejected")
	}
	if err := registry.Register(".editable"); err != nil {
		stderrLogger.Fatal().Err(err).Msg("could not register editable elements")
	}

	stylesheet := styling.NewStylesheetFromConfig(configData.Stylesheet)
	log.Debug().
		Str("element", stylesheet.Element.ToString()).
		Str("highlighted", stylesheet.Highlighted.ToString()).
		Str("editing", stylesheet.Editing.ToString()).
		Msg("stylesheet constructed")

	screen := tui.NewScreenHandler()
	defer screen.Fini()

	tui.NewDemo(screen, doc, hub, registry, stylesheet).Run()

	return nil
}

// resolveTheme maps the theme flag to a colorscheme type; absent the flag
// it falls back to picking by local daylight, when a location is available
// from LATITUDE/LONGITUDE, and to dark otherwise.
func (command *DemoCommand) resolveTheme(stderrLogger zerolog.Logger) config.ColorschemeType {
	switch command.Theme {
	case "light":
		return config.Light
	case "dark":
		return config.Dark
	}

	latitude, latErr := strconv.ParseFloat(os.Getenv("LATITUDE"), 64)
	longitude, longErr := strconv.ParseFloat(os.Getenv("LONGITUDE"), 64)
	if latErr != nil || longErr != nil {
		return config.Dark
	}

	now := time.Now()
	rise, set := sunrise.SunriseSunset(latitude, longitude, now.Year(), now.Month(), now.Day())
	if now.After(rise) && now.Before(set) {
		stderrLogger.Debug().Msg("daylight out, defaulting to light theme")
		return config.Light
	}
	return config.Dark
}

// seedDocument fills the document with the sample editable elements,
// preferring previously committed content from the store over the built-in
// sample text.
func seedDocument(doc *dom.Document, store *storage.JSONStore) {
	samples := []struct {
		id   string
		text string
	}{
		{"title", "An Editable Title"},
		{"subtitle", "A subtitle, also editable"},
		{"note", "Some note text. Click it, type, and commit."},
	}

	for _, sample := range samples {
		element := dom.NewElement("span")
		element.SetAttr("id", sample.id)
		element.AddClass("editable")
		doc.Root().AppendChild(element)

		text := sample.text
		if stored, ok := store.Load(sample.id); ok {
			text = stored
		}
		element.SetText(text)
	}
}
