package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/blog-demo/internal/render"
)

// Theme color names specific to the blog page
const (
	ColorNameCaption          fyne.ThemeColorName = "blogCaption"
	ColorNameHeaderBackground fyne.ThemeColorName = "blogHeaderBackground"
	ColorNameHeaderForeground fyne.ThemeColorName = "blogHeaderForeground"
)

// BlogTheme wraps the default theme with the page colors and optional compact sizes
type BlogTheme struct {
	compact bool
}

// NewBlogTheme creates a new blog theme
func NewBlogTheme(compact bool) fyne.Theme {
	return &BlogTheme{compact: compact}
}

// Color returns theme colors
func (t *BlogTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameCaption:
		return color.RGBA{R: 255, G: 0, B: 0, A: 255} // "red" caption
	case ColorNameHeaderBackground:
		return color.RGBA{R: 0, G: 0, B: 0, A: 255}
	case ColorNameHeaderForeground:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *BlogTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *BlogTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, reduced when compact
func (t *BlogTheme) Size(name fyne.ThemeSizeName) float32 {
	if !t.compact {
		return theme.DefaultTheme().Size(name)
	}

	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2 // Reduced from default 4
	case theme.SizeNameText:
		return 13 // Reduced from default 14
	case theme.SizeNameCaptionText:
		return 10 // Reduced from default 11
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	}

	return theme.DefaultTheme().Size(name)
}

// styleColor resolves a render color through th
func styleColor(th fyne.Theme, variant fyne.ThemeVariant, c render.Color, fallback fyne.ThemeColorName) color.Color {
	switch c {
	case render.ColorRed:
		return th.Color(ColorNameCaption, variant)
	default:
		return th.Color(fallback, variant)
	}
}
