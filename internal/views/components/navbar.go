package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"food-delivery/internal/models"
)

// NavigationBar is the bottom bar switching between Home and Cart
type NavigationBar struct {
	container  *fyne.Container
	homeButton *widget.Button
	cartButton *widget.Button
	selected   models.Screen

	selectHandler func(models.Screen)
}

func NewNavigationBar(selected models.Screen) *NavigationBar {
	nb := &NavigationBar{selected: selected}
	nb.createComponents()
	nb.buildLayout()
	nb.SetSelected(selected)
	return nb
}

func (nb *NavigationBar) createComponents() {
	nb.homeButton = widget.NewButtonWithIcon("Home", theme.HomeIcon(), func() {
		nb.emit(models.ScreenHome)
	})
	nb.cartButton = widget.NewButtonWithIcon("Cart", theme.ListIcon(), func() {
		nb.emit(models.ScreenCart)
	})
}

func (nb *NavigationBar) buildLayout() {
	nb.container = container.NewGridWithColumns(2, nb.homeButton, nb.cartButton)
}

func (nb *NavigationBar) emit(screen models.Screen) {
	if nb.selectHandler != nil {
		nb.selectHandler(screen)
	}
}

// SetSelectHandler sets the callback for navigation taps
func (nb *NavigationBar) SetSelectHandler(handler func(models.Screen)) {
	nb.selectHandler = handler
}

// SetSelected highlights the button for screen
func (nb *NavigationBar) SetSelected(screen models.Screen) {
	nb.selected = screen
	nb.homeButton.Importance = widget.LowImportance
	nb.cartButton.Importance = widget.LowImportance
	switch screen {
	case models.ScreenHome:
		nb.homeButton.Importance = widget.HighImportance
	case models.ScreenCart:
		nb.cartButton.Importance = widget.HighImportance
	}
	nb.homeButton.Refresh()
	nb.cartButton.Refresh()
}

func (nb *NavigationBar) Selected() models.Screen {
	return nb.selected
}

func (nb *NavigationBar) HomeButton() *widget.Button {
	return nb.homeButton
}

func (nb *NavigationBar) CartButton() *widget.Button {
	return nb.cartButton
}

func (nb *NavigationBar) GetContainer() *fyne.Container {
	return nb.container
}
