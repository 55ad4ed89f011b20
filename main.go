package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	log "github.com/sirupsen/logrus"

	"github.com/ytget/offgrid/internal/browser"
	"github.com/ytget/offgrid/internal/config"
	"github.com/ytget/offgrid/internal/logging"
	"github.com/ytget/offgrid/internal/media"
	"github.com/ytget/offgrid/internal/platform"
	"github.com/ytget/offgrid/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.offgrid"
	AppName = "Offgrid"

	WindowWidth  = 1000
	WindowHeight = 700
)

func main() {
	logger, err := logging.New(os.Getenv("OFFGRID_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.WithField("version", version).Infof("%s starting", AppName)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	} else {
		logger.WithError(err).Debug("window icon not loaded")
	}

	if _, err := ui.NewRootUI(myWindow, myApp, newBrowserFactory(logger), logger, version); err != nil {
		logger.WithError(err).Error("failed to start browser")
		dialog.ShowError(err, myWindow)
		myWindow.SetOnClosed(func() { os.Exit(1) })
	}

	myWindow.ShowAndRun()
}

// newBrowserFactory wires the catalog and viewers for a base directory and manifest
func newBrowserFactory(logger log.FieldLogger) ui.BrowserFactory {
	return func(baseDir, manifestPath string) (*browser.Browser, error) {
		manifest, err := config.LoadManifest(manifestPath)
		if err != nil {
			return nil, err
		}

		dispatcher := browser.NewDispatcher(media.NewPDFRenderer(), media.NewExternalPlayer(), platform.OpenFileWithDefaultApp)
		dispatcher.SetProber(media.NewProber(), media.FormatDuration)

		logger.WithFields(log.Fields{"base": baseDir, "manifest": manifestPath}).Debug("browser catalog loaded")
		return browser.New(browser.NewCatalog(baseDir, manifest.BrowseCategories()), dispatcher), nil
	}
}
