package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/blog-demo/internal/config"
	"github.com/ytget/blog-demo/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", ui.AppTitle, version)

	myApp := app.NewWithID(ui.AppID)
	settings := config.NewSettings(myApp)

	windowTitle := fmt.Sprintf("%s v%s", ui.AppName, version)
	myWindow, _ := ui.NewBlogWindow(myApp, settings, windowTitle)

	// Show and run
	myWindow.ShowAndRun()
}
