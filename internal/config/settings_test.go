package config

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	size := settings.GetWindowSize()
	expected := fyne.NewSize(DefaultWindowWidth, DefaultWindowHeight)
	if size != expected {
		t.Errorf("Expected default window size %v, got %v", expected, size)
	}

	// Test setting custom value
	settings.SetWindowSize(800, 600)
	if size := settings.GetWindowSize(); size != fyne.NewSize(800, 600) {
		t.Errorf("Expected window size 800x600, got %v", size)
	}
}

func TestWindowSizeClamped(t *testing.T) {
	tests := []struct {
		width, height int
		expected      fyne.Size
	}{
		{0, 0, fyne.NewSize(MinWindowSize, MinWindowSize)},
		{-10, 500, fyne.NewSize(MinWindowSize, 500)},
		{10000, 300, fyne.NewSize(MaxWindowSize, 300)},
		{MinWindowSize, MaxWindowSize, fyne.NewSize(MinWindowSize, MaxWindowSize)},
	}

	for _, test := range tests {
		settings := NewSettings(testApp())
		settings.SetWindowSize(test.width, test.height)
		if size := settings.GetWindowSize(); size != test.expected {
			t.Errorf("SetWindowSize(%d, %d): expected %v, got %v", test.width, test.height, test.expected, size)
		}
	}
}

func TestWindowSizeOutOfRangePreference(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetInt(KeyWindowWidth, 1)
	settings := NewSettings(app)

	if size := settings.GetWindowSize(); size.Width != MinWindowSize {
		t.Errorf("Expected stored width to be clamped to %d, got %v", MinWindowSize, size.Width)
	}
}

func TestCompactTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if settings.GetCompactTheme() != DefaultCompactTheme {
		t.Errorf("Expected default compact theme %v", DefaultCompactTheme)
	}

	settings.SetCompactTheme(false)
	if settings.GetCompactTheme() {
		t.Error("Expected compact theme to be disabled")
	}
}

func testApp() fyne.App {
	return test.NewApp()
}
