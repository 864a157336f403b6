package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"

	"github.com/photogrid/photo-gallery/internal/config"
	"github.com/photogrid/photo-gallery/internal/library"
	"github.com/photogrid/photo-gallery/internal/logging"
	"github.com/photogrid/photo-gallery/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.photogrid.photo-gallery"
	AppName = "Photo Gallery"
)

var (
	flagLibraryDir string
	flagConfigPath string
	flagLogLevel   string
	flagGrant      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "photo-gallery",
		Short:   "Browse a photo library in a reflowable thumbnail grid",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
	rootCmd.Flags().StringVar(&flagLibraryDir, "library", "", "photo library directory (defaults to the saved setting)")
	rootCmd.Flags().StringVar(&flagConfigPath, "config", "", "path to a TOML library config file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log verbosity: debug, info, warn or error")
	rootCmd.Flags().StringVar(&flagGrant, "grant", "", "answer the access prompt without a dialog: authorized, limited or denied")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	myApp := app.NewWithID(AppID)

	// Apply gallery theme
	myApp.Settings().SetTheme(ui.NewGalleryTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))

	// Initialize settings and logging
	settings := config.NewSettings(myApp)
	level := flagLogLevel
	if level == "" {
		level = settings.GetLogLevel()
	}
	log := logging.New(os.Stderr, level)
	logging.SetDefault(log)

	libCfg, err := config.LoadLibraryConfig(flagConfigPath)
	if err != nil {
		return err
	}

	// Flag beats config file beats saved setting for the library root.
	root := flagLibraryDir
	if root == "" {
		root = libCfg.Library.Root
	}
	if root == "" {
		root = settings.GetLibraryDirectory()
	}

	// A preset grant answers the access prompt without showing the dialog.
	prompt := ui.NewAuthorizationPrompt(myWindow)
	if flagGrant != "" {
		preset := library.ParseAuthorization(flagGrant)
		prompt = func(respond func(library.Authorization)) { respond(preset) }
	}

	svc, err := library.NewService(library.Config{
		Root:           root,
		Excludes:       libCfg.Library.Excludes,
		GrantStorePath: settings.GetGrantStorePath(),
		Prompt:         prompt,
		WatchDebounce:  libCfg.WatchDebounce(),
		CacheSize:      libCfg.Library.CacheSize,
		Logger:         log,
	})
	if err != nil {
		return fmt.Errorf("open photo library: %w", err)
	}
	defer svc.Close()

	log.Info("starting", "version", version, "library", root)

	// Create and setup UI
	gallery := ui.NewRootUI(myWindow, myApp, svc, log)
	gallery.Start()

	// Show and run
	myWindow.ShowAndRun()
	return nil
}
