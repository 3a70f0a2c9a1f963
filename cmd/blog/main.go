package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/ytget/blog-demo/internal/config"
	"github.com/ytget/blog-demo/internal/ui"
)

func main() {
	myApp := app.NewWithID(ui.AppID)
	myWindow, _ := ui.NewBlogWindow(myApp, config.NewSettings(myApp), ui.AppName)
	myWindow.ShowAndRun()
}
