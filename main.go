package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/model-picker/internal/catalog"
	"github.com/ytget/model-picker/internal/config"
	"github.com/ytget/model-picker/internal/loader"
	"github.com/ytget/model-picker/internal/placement"
	"github.com/ytget/model-picker/internal/presenter"
	"github.com/ytget/model-picker/internal/scene"
	"github.com/ytget/model-picker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.model-picker"
	AppName = "Model Picker"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	fmt.Printf("Model Picker v%s starting...\n", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewOverlayTheme())
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	settings := config.NewSettings(myApp)

	// Catalog is built once; settings changes apply on next start
	cat := catalog.NewLoader(settings.GetAssetDirectory(), settings.CatalogOptions()...).LoadCatalog()

	session := scene.NewGraph(scene.WithMeshReconstruction(true))
	scenePresenter := presenter.New(session, settings.TrackingConfig())
	if err := scenePresenter.InitializeSession(); err != nil {
		log.Printf("failed to start tracking session: %v", err)
	}
	for _, s := range session.Surfaces() {
		log.Printf("scene: tracking %s surface %s at %v", s.Alignment, s.ID, s.Center)
	}
	session.SetUpdateCallback(func(a *scene.Anchor) {
		if a.Resolved() {
			log.Printf("scene: anchor %s on %s at %v", a.ID, a.Surface.ID, a.Position())
		}
	})

	controller := placement.NewController()
	scenePresenter.Attach(controller)

	loadSvc := loader.NewService(scene.NewGLTFLoader(), settings.GetMaxParallelLoads())

	// UI registers its callbacks before any load can complete
	rootUI := ui.NewRootUI(myWindow, myApp, settings, cat, controller, scenePresenter, loadSvc)
	defer rootUI.Close()

	futures := loadSvc.Start(context.Background(), cat.Models())
	go logLoadSummary(loadSvc, futures)

	myWindow.ShowAndRun()
}

// logLoadSummary waits for every startup load and logs the outcome
func logLoadSummary(loadSvc *loader.Service, futures []*loader.Future) {
	for _, f := range futures {
		_, _ = f.Await(context.Background())
	}
	loaded, failed := loadSvc.Stats()
	log.Printf("loader: startup loads finished, %d loaded, %d failed", loaded, failed)
}
