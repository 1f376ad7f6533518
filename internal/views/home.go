package views

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"food-delivery/internal/views/components"
)

// HomeScreen lists the catalog with an Add button per item
type HomeScreen struct {
	controller Controller

	container    *fyne.Container
	header       *components.Header
	cartCounter  *widget.Label
	rows         []*components.ItemRow
	rowContainer *fyne.Container
}

func NewHomeScreen(controller Controller) *HomeScreen {
	hs := &HomeScreen{controller: controller}
	hs.createComponents()
	hs.buildLayout()
	hs.RefreshCartCount()
	return hs
}

func (hs *HomeScreen) createComponents() {
	hs.header = components.NewHeader("Restaurants", components.HeaderTextSize)
	hs.cartCounter = widget.NewLabel("")

	hs.rowContainer = container.NewVBox()
	for _, item := range hs.controller.Catalog().Items() {
		row := components.NewItemRow(item, hs.controller.AddItem)
		hs.rows = append(hs.rows, row)
		hs.rowContainer.Add(row.GetContainer())
	}
}

func (hs *HomeScreen) buildLayout() {
	top := container.NewVBox(
		hs.header.GetContainer(),
		container.NewPadded(components.NewPanel(hs.cartCounter)),
	)
	hs.container = container.NewBorder(top, nil, nil, nil,
		container.NewVScroll(container.NewPadded(hs.rowContainer)))
}

// RefreshCartCount redraws the cart counter from the live cart
func (hs *HomeScreen) RefreshCartCount() {
	hs.cartCounter.SetText(cartCountText(hs.controller.Cart().Len()))
}

func cartCountText(n int) string {
	if n == 1 {
		return "Cart: 1 item"
	}
	return fmt.Sprintf("Cart: %d items", n)
}

func (hs *HomeScreen) GetContainer() *fyne.Container {
	return hs.container
}
