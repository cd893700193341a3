package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestBlend(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#000000"), Blend("#000000", "#ffffff", 0))
	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("#000000", "#ffffff", 1))

	mid := Blend("#000000", "#ffffff", 0.5)
	assert.NotEqual(t, lipgloss.Color("#000000"), mid)
	assert.NotEqual(t, lipgloss.Color("#ffffff"), mid)

	assert.Equal(t, lipgloss.Color("#ffffff"), Blend("nope", "#ffffff", 0.5))
}

func TestIndicatorColor_Endpoints(t *testing.T) {
	dark := lipgloss.HasDarkBackground()
	want := Highlight.Light
	if dark {
		want = Highlight.Dark
	}
	assert.Equal(t, lipgloss.Color(want), IndicatorColor(1))
	assert.Equal(t, lipgloss.Color(want), IndicatorColor(1.5))
}
