package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"food-delivery/internal/events"
	"food-delivery/internal/models"
	"food-delivery/internal/views/components"
)

// MainView owns the window content. Before login it shows the login screen;
// afterwards the app shell with Home or Cart above the navigation bar.
type MainView struct {
	window     fyne.Window
	controller Controller

	root  *fyne.Container
	login *LoginScreen

	// shell, populated after login
	shell   *fyne.Container
	navBar  *components.NavigationBar
	content *fyne.Container
	home    *HomeScreen
	cart    *CartScreen

	unsubscribe []func()
}

// NewMainView builds the view and subscribes it to state changes
func NewMainView(window fyne.Window, controller Controller) *MainView {
	mv := &MainView{
		window:     window,
		controller: controller,
	}

	mv.root = container.NewStack()
	mv.subscribe()
	mv.render()

	window.SetContent(components.NewBackdrop(mv.root))
	return mv
}

func (mv *MainView) subscribe() {
	bus := mv.controller.Events()
	mv.unsubscribe = append(mv.unsubscribe,
		bus.Subscribe(events.SessionLoggedIn, func(events.Event) { mv.render() }),
		bus.Subscribe(events.SessionScreenSelected, func(events.Event) { mv.showScreen() }),
		bus.Subscribe(events.CartItemAdded, func(events.Event) { mv.refreshCart() }),
		bus.Subscribe(events.OrderPlaced, func(events.Event) { mv.refreshCart() }),
	)
}

// render picks the login screen or the shell from the session state
func (mv *MainView) render() {
	if !mv.controller.Session().IsLoggedIn() {
		if mv.login == nil {
			mv.login = NewLoginScreen(mv.controller.LogIn)
		}
		mv.setRoot(mv.login.GetContainer())
		return
	}

	if mv.shell == nil {
		mv.buildShell()
	}
	mv.login = nil
	mv.setRoot(mv.shell)
}

func (mv *MainView) buildShell() {
	mv.navBar = components.NewNavigationBar(mv.controller.Session().ActiveScreen())
	mv.navBar.SetSelectHandler(mv.controller.SelectScreen)
	mv.content = container.NewStack()
	mv.shell = container.NewBorder(nil, mv.navBar.GetContainer(), nil, nil, mv.content)
	mv.showScreen()
}

// showScreen swaps the shell content to the active screen. Entering Cart
// always builds a new CartScreen, which drops any previous order state.
func (mv *MainView) showScreen() {
	if mv.shell == nil {
		return
	}

	screen := mv.controller.Session().ActiveScreen()
	mv.navBar.SetSelected(screen)

	var body fyne.CanvasObject
	switch screen {
	case models.ScreenCart:
		mv.cart = NewCartScreen(mv.controller)
		body = mv.cart.GetContainer()
	default:
		mv.cart = nil
		if mv.home == nil {
			mv.home = NewHomeScreen(mv.controller)
		} else {
			mv.home.RefreshCartCount()
		}
		body = mv.home.GetContainer()
	}

	mv.content.Objects = []fyne.CanvasObject{body}
	mv.content.Refresh()
}

func (mv *MainView) refreshCart() {
	if mv.home != nil {
		mv.home.RefreshCartCount()
	}
	if mv.cart != nil {
		mv.cart.Refresh()
	}
}

func (mv *MainView) setRoot(obj fyne.CanvasObject) {
	mv.root.Objects = []fyne.CanvasObject{obj}
	mv.root.Refresh()
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// Login is nil once the user has logged in
func (mv *MainView) Login() *LoginScreen {
	return mv.login
}

// Home is nil until the Home screen has been shown once
func (mv *MainView) Home() *HomeScreen {
	return mv.home
}

// Cart is nil unless the Cart screen is active
func (mv *MainView) Cart() *CartScreen {
	return mv.cart
}

func (mv *MainView) NavigationBar() *components.NavigationBar {
	return mv.navBar
}

// Shutdown detaches the view from the event bus
func (mv *MainView) Shutdown() {
	for _, unsubscribe := range mv.unsubscribe {
		unsubscribe()
	}
	mv.unsubscribe = nil
}
