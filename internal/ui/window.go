package ui

import (
	"log"

	"fyne.io/fyne/v2"

	"github.com/ytget/blog-demo/internal/config"
)

// NewBlogWindow creates the main window showing a fresh View.
// Closing the window tears the view down.
func NewBlogWindow(app fyne.App, settings *config.Settings, title string) (fyne.Window, *View) {
	th := NewBlogTheme(settings.GetCompactTheme())
	app.Settings().SetTheme(th)

	window := app.NewWindow(title)
	window.Resize(settings.GetWindowSize())

	if logo, err := LoadLogoResource(); err == nil {
		window.SetIcon(logo)
	} else {
		log.Printf("Icon not loaded: %v", err)
	}

	view := NewView(th)
	window.SetContent(view.Content())
	window.SetOnClosed(view.Close)

	return window, view
}
