package views

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"food-delivery/internal/models"
	"food-delivery/internal/views/components"
)

const emptyCartText = "Cart is empty!"

// CartScreen lists the session cart and offers Place Order when it is not
// empty. Whether an order was placed is local to this screen instance: a new
// CartScreen starts with a fresh OrderState.
type CartScreen struct {
	controller Controller
	order      *models.OrderState

	container        *fyne.Container
	header           *components.Header
	totalLabel       *widget.Label
	body             *fyne.Container
	emptyLabel       *widget.Label
	rows             []*components.ItemRow
	placeOrderButton *widget.Button
	placeOrderRow    *fyne.Container
	confirmation     *OrderConfirmation
}

func NewCartScreen(controller Controller) *CartScreen {
	cs := &CartScreen{
		controller: controller,
		order:      models.NewOrderState(),
	}
	cs.createComponents()
	cs.buildLayout()
	cs.Refresh()
	return cs
}

func (cs *CartScreen) createComponents() {
	cs.header = components.NewHeader("Cart", components.HeaderTextSize)
	cs.totalLabel = widget.NewLabel("")
	cs.emptyLabel = widget.NewLabel(emptyCartText)

	cs.placeOrderButton = widget.NewButton("Place Order", func() {
		cs.controller.PlaceOrder(cs.order)
	})
	cs.placeOrderButton.Importance = widget.HighImportance
	cs.placeOrderRow = container.NewPadded(cs.placeOrderButton)

	cs.body = container.NewVBox()
}

func (cs *CartScreen) buildLayout() {
	top := container.NewVBox(
		cs.header.GetContainer(),
		container.NewPadded(components.NewPanel(cs.totalLabel)),
	)
	cs.container = container.NewBorder(top, nil, nil, nil,
		container.NewVScroll(container.NewPadded(cs.body)))
}

// Refresh rebuilds the screen body from the live cart and order state
func (cs *CartScreen) Refresh() {
	cart := cs.controller.Cart()
	cs.totalLabel.SetText("Total: " + cart.Total().String())

	cs.rows = cs.rows[:0]
	if cart.IsEmpty() {
		cs.body.Objects = []fyne.CanvasObject{
			container.NewCenter(components.NewPanel(container.NewPadded(cs.emptyLabel))),
		}
		cs.body.Refresh()
		return
	}

	objects := make([]fyne.CanvasObject, 0, cart.Len()+2)
	for _, item := range cart.Items() {
		row := components.NewItemRow(item, nil)
		cs.rows = append(cs.rows, row)
		objects = append(objects, row.GetContainer())
	}
	objects = append(objects, cs.placeOrderRow)

	if cs.order.Placed() {
		if cs.confirmation == nil {
			cs.confirmation = NewOrderConfirmation(cart, cs.order)
		} else {
			cs.confirmation.Refresh()
		}
		objects = append(objects, cs.confirmation.GetContainer())
	}

	cs.body.Objects = objects
	cs.body.Refresh()
}

// IsEmptyShown reports whether the empty-cart message is on screen
func (cs *CartScreen) IsEmptyShown() bool {
	return len(cs.rows) == 0
}

// RowTexts returns the rendered cart rows
func (cs *CartScreen) RowTexts() []string {
	out := make([]string, 0, len(cs.rows))
	for _, r := range cs.rows {
		out = append(out, r.Text())
	}
	return out
}

// OrderOffered reports whether the Place Order action is on screen
func (cs *CartScreen) OrderOffered() bool {
	for _, obj := range cs.body.Objects {
		if obj == cs.placeOrderRow {
			return true
		}
	}
	return false
}

// PlaceOrderButton is the order action; it is only on screen with a non-empty cart
func (cs *CartScreen) PlaceOrderButton() *widget.Button {
	return cs.placeOrderButton
}

func (cs *CartScreen) Order() *models.OrderState {
	return cs.order
}

// Confirmation is nil until an order is placed from this screen
func (cs *CartScreen) Confirmation() *OrderConfirmation {
	return cs.confirmation
}

func (cs *CartScreen) GetContainer() *fyne.Container {
	return cs.container
}
