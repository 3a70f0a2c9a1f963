package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
	KeyCompactTheme = "compact_theme"
)

// Default values
const (
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 640
	DefaultCompactTheme = true
)

// Window size bounds
const (
	MinWindowSize = 240
	MaxWindowSize = 4096
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWindowSize returns the configured window size
func (s *Settings) GetWindowSize() fyne.Size {
	w := s.app.Preferences().IntWithFallback(KeyWindowWidth, DefaultWindowWidth)
	h := s.app.Preferences().IntWithFallback(KeyWindowHeight, DefaultWindowHeight)
	return fyne.NewSize(float32(clampWindowSize(w)), float32(clampWindowSize(h)))
}

// SetWindowSize sets the window size
func (s *Settings) SetWindowSize(width, height int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clampWindowSize(width))
	s.app.Preferences().SetInt(KeyWindowHeight, clampWindowSize(height))
}

// GetCompactTheme returns whether the compact theme sizes are used
func (s *Settings) GetCompactTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyCompactTheme, DefaultCompactTheme)
}

// SetCompactTheme sets whether the compact theme sizes are used
func (s *Settings) SetCompactTheme(compact bool) {
	s.app.Preferences().SetBool(KeyCompactTheme, compact)
}

func clampWindowSize(v int) int {
	if v < MinWindowSize {
		return MinWindowSize
	}
	if v > MaxWindowSize {
		return MaxWindowSize
	}
	return v
}
