package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/img-fetcher/internal/config"
	"github.com/ytget/img-fetcher/internal/fetch"
	"github.com/ytget/img-fetcher/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppName = "Image Fetcher"

	WindowWidth  = 640
	WindowHeight = 720
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(config.AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	pipeline := fetch.NewPipeline(fetch.NewHTTPSource(nil), settings.NewStore())
	queue := fetch.NewService(pipeline, settings.GetMaxParallelFetches())

	log.Printf("Saving images to %s", settings.GetOutputPath())

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, pipeline, queue)

	myWindow.ShowAndRun()
}
