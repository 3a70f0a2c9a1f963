package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/theme"

	"github.com/ytget/blog-demo/internal/render"
)

func TestBlogTheme_Colors(t *testing.T) {
	th := NewBlogTheme(true)

	red := color.RGBA{R: 255, G: 0, B: 0, A: 255}
	if c := th.Color(ColorNameCaption, theme.VariantLight); c != red {
		t.Errorf("Expected caption color %v, got %v", red, c)
	}

	if c := styleColor(th, theme.VariantLight, render.ColorRed, theme.ColorNameForeground); c != red {
		t.Errorf("Expected red style to resolve to %v, got %v", red, c)
	}

	fg := th.Color(theme.ColorNameForeground, theme.VariantLight)
	if c := styleColor(th, theme.VariantLight, render.ColorDefault, theme.ColorNameForeground); c != fg {
		t.Errorf("Expected default style to resolve to %v, got %v", fg, c)
	}
}

func TestBlogTheme_Sizes(t *testing.T) {
	tests := []struct {
		compact  bool
		expected float32
	}{
		{true, 13},
		{false, theme.DefaultTheme().Size(theme.SizeNameText)},
	}

	for _, test := range tests {
		th := NewBlogTheme(test.compact)
		if size := th.Size(theme.SizeNameText); size != test.expected {
			t.Errorf("Size(text) with compact=%v = %v, expected %v", test.compact, size, test.expected)
		}
	}
}
