package app

import (
	"runtime"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"food-delivery/internal/config"
	"food-delivery/internal/controllers"
	"food-delivery/internal/events"
	"food-delivery/internal/logger"
	"food-delivery/internal/models"
	"food-delivery/internal/shutdown"
	"food-delivery/internal/views"
)

const (
	AppName    = "Food Delivery"
	AppID      = "com.example.fooddelivery"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	bus        *events.Bus
	controller *controllers.MainController
	view       *views.MainView
	lifecycle  *Lifecycle
}

// NewApplication builds the window and wires models, controller and views
func NewApplication(cfg config.Config) (*Application, error) {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return newApplication(fyneapp.NewWithID(AppID), cfg, logger.New(cfg.LogLevel, cfg.JSONLogs))
}

func newApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
		"go_version":    runtime.Version(),
		"seeded":        cfg.DeliverySeed != 0,
	})

	bus := events.NewBus(log)
	controller := controllers.NewMainController(
		models.DefaultCatalog(),
		models.NewRandomEstimator(cfg.DeliverySeed),
		bus,
		log,
	)
	view := views.NewMainView(window, controller)

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.SetDispatcher(fyne.Do)
	shutdownMgr.Register("event bus", bus)
	shutdownMgr.Register("controller", controller)
	shutdownMgr.Register("view", view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		bus:        bus,
		controller: controller,
		view:       view,
		lifecycle:  NewLifecycle(shutdownMgr, log),
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"session_id":    controller.Session().ID().String(),
		"catalog_items": controller.Catalog().Len(),
	})
	return application, nil
}

// Run shows the window and blocks until the app quits
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})
	// runs on the UI goroutine after the components have shut down
	a.lifecycle.ListenForSignals(a.fyneApp.Quit)

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

func (a *Application) Controller() *controllers.MainController {
	return a.controller
}

func (a *Application) View() *views.MainView {
	return a.view
}
