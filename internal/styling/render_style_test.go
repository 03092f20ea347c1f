package styling_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lhagen/inplace/internal/config"
	"github.com/lhagen/inplace/internal/styling"
)

func TestFallbackStyling(t *testing.T) {

	t.Run("DefaultDimmed lightens both colors", func(t *testing.T) {
		base := styling.StyleFromHex("#404040", "#404040")
		baseFg, baseBg, _ := base.AsTcell().Decompose()

		dimFg, dimBg, _ := base.DefaultDimmed().AsTcell().Decompose()
		if dimFg.Hex() <= baseFg.Hex() || dimBg.Hex() <= baseBg.Hex() {
			t.Error("expected dimmed colors lighter than the base gray")
		}
	})

	t.Run("DefaultEmphasized darkens both colors", func(t *testing.T) {
		base := styling.StyleFromHex("#404040", "#404040")
		baseFg, baseBg, _ := base.AsTcell().Decompose()

		emphFg, emphBg, _ := base.DefaultEmphasized().AsTcell().Decompose()
		if emphFg.Hex() >= baseFg.Hex() || emphBg.Hex() >= baseBg.Hex() {
			t.Error("expected emphasized colors darker than the base gray")
		}
	})

	t.Run("derivation does not mutate the original", func(t *testing.T) {
		base := styling.StyleFromHex("#404040", "#404040")
		before := base.ToString()
		base.DefaultDimmed()
		base.Bolded()
		if base.ToString() != before {
			t.Error("expected the base styling unchanged, got", base.ToString())
		}
	})

	t.Run("font style from config", func(t *testing.T) {
		style := styling.StyleFromConfig(config.Styling{
			Fg:    "#ff0000",
			Bg:    "#000000",
			Style: &config.FontStyle{Bold: true, Underlined: true},
		})

		_, _, attrs := style.AsTcell().Decompose()
		if attrs&tcell.AttrBold == 0 {
			t.Error("expected bold attribute set")
		}
		if attrs&tcell.AttrUnderline == 0 {
			t.Error("expected underline attribute set")
		}
		if attrs&tcell.AttrItalic != 0 {
			t.Error("expected italic attribute unset")
		}
	})

	t.Run("ToString names the colors", func(t *testing.T) {
		s := styling.StyleFromHex("#ff0000", "#0000ff").ToString()
		if !strings.Contains(s, "#ff0000") || !strings.Contains(s, "#0000ff") {
			t.Error("expected both hex colors in the representation, got", s)
		}
	})

}
