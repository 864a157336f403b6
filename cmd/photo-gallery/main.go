package main

import (
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/photogrid/photo-gallery/internal/config"
	"github.com/photogrid/photo-gallery/internal/library"
	"github.com/photogrid/photo-gallery/internal/logging"
	"github.com/photogrid/photo-gallery/internal/ui"
)

// Minimal bootstrap without command-line flags; everything comes from the
// saved app settings.
func main() {
	myApp := app.NewWithID("com.photogrid.photo-gallery")
	myApp.Settings().SetTheme(ui.NewGalleryTheme())
	myWindow := myApp.NewWindow("Photo Gallery")

	settings := config.NewSettings(myApp)
	log := logging.New(os.Stderr, settings.GetLogLevel())
	logging.SetDefault(log)

	svc, err := library.NewService(library.Config{
		Root:           settings.GetLibraryDirectory(),
		GrantStorePath: settings.GetGrantStorePath(),
		Prompt:         ui.NewAuthorizationPrompt(myWindow),
	})
	if err != nil {
		log.Error("failed to open photo library", "error", err)
		os.Exit(1)
	}
	defer svc.Close()

	gallery := ui.NewRootUI(myWindow, myApp, svc, log)
	gallery.Start()

	myWindow.ShowAndRun()
}
