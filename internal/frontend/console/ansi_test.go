package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestColorize(t *testing.T) {
	p := Palette{Enabled: true}
	assert.Equal(t, "\033[31mdanger\033[0m", p.Colorize(Red, "danger"))
}

func TestColorize_Disabled(t *testing.T) {
	assert.Equal(t, "danger", Palette{}.Colorize(Red, "danger"))
}

func TestColorf(t *testing.T) {
	p := Palette{Enabled: true}
	assert.Equal(t, "\033[32mhp: 42\033[0m", p.Colorf(Green, "hp: %d", 42))
}

func TestStripANSI(t *testing.T) {
	input := "\033[31mred\033[0m normal \033[1m\033[32mbold green\033[0m"
	assert.Equal(t, "red normal bold green", StripANSI(input))
}

func TestStripANSI_NoEscapes(t *testing.T) {
	assert.Equal(t, "plain text", StripANSI("plain text"))
	assert.Equal(t, "", StripANSI(""))
}

// Property: stripping a colorized string yields the original text.
func TestPropertyStripANSIInversesColorize(t *testing.T) {
	colors := []string{Red, Green, Yellow, Cyan, Magenta, White, Bold, Dim}
	p := Palette{Enabled: true}
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 ]{0,50}`).Draw(t, "text")
		color := rapid.SampledFrom(colors).Draw(t, "color")
		assert.Equal(t, text, StripANSI(p.Colorize(color, text)))
	})
}

// Property: a disabled palette never emits an escape character.
func TestPropertyDisabledPaletteIsPlain(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-zA-Z0-9 ]{0,30}`).Draw(t, "text")
		out := Palette{}.Colorf(BrightRed, "%s!", text)
		assert.NotContains(t, out, "\033")
		assert.Equal(t, text+"!", out)
	})
}
