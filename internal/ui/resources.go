package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "blog-demo.png"
)

// LoadLogoResource loads the application icon from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
