package views

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"food-delivery/internal/models"
	"food-delivery/internal/views/components"
)

// OrderConfirmation shows a placed order. It lists the live cart, not a
// copy taken at placement time, and keeps the estimate of the order state
// it was built for.
type OrderConfirmation struct {
	cart  *models.Cart
	order *models.OrderState

	container     *fyne.Container
	title         *canvas.Text
	orderNumber   *widget.Label
	itemsTitle    *canvas.Text
	itemList      *fyne.Container
	deliveryLabel *widget.Label
}

func NewOrderConfirmation(cart *models.Cart, order *models.OrderState) *OrderConfirmation {
	oc := &OrderConfirmation{cart: cart, order: order}
	oc.createComponents()
	oc.buildLayout()
	oc.Refresh()
	return oc
}

func (oc *OrderConfirmation) createComponents() {
	oc.title = canvas.NewText("Order Placed Successfully!", color.Black)
	oc.title.TextSize = components.TitleTextSize
	oc.title.TextStyle = fyne.TextStyle{Bold: true}
	oc.title.Alignment = fyne.TextAlignCenter

	oc.orderNumber = widget.NewLabel("")
	oc.orderNumber.Alignment = fyne.TextAlignCenter

	oc.itemsTitle = canvas.NewText("Your ordered items:", color.Black)
	oc.itemsTitle.TextSize = components.SubtitleTextSize
	oc.itemsTitle.TextStyle = fyne.TextStyle{Bold: true}

	oc.itemList = container.NewVBox()

	oc.deliveryLabel = widget.NewLabel("")
	oc.deliveryLabel.Wrapping = fyne.TextWrapWord
	oc.deliveryLabel.Alignment = fyne.TextAlignCenter
}

func (oc *OrderConfirmation) buildLayout() {
	oc.container = container.NewPadded(components.NewPanel(container.NewPadded(container.NewVBox(
		oc.title,
		oc.orderNumber,
		oc.itemsTitle,
		components.NewPanel(oc.itemList),
		oc.deliveryLabel,
	))))
}

// Refresh redraws the item list from the cart; the estimate never changes
func (oc *OrderConfirmation) Refresh() {
	lines := make([]fyne.CanvasObject, 0, oc.cart.Len())
	for _, item := range oc.cart.Items() {
		lines = append(lines, widget.NewLabel(item.Summary()))
	}
	oc.itemList.Objects = lines
	oc.itemList.Refresh()

	oc.orderNumber.SetText("Order #" + oc.order.OrderNumber())
	oc.deliveryLabel.SetText(deliveryText(oc.order.DeliveryMinutes()))
}

func deliveryText(minutes int) string {
	return fmt.Sprintf("Your order will be delivered in %d minutes.", minutes)
}

// Lines returns the rendered item lines
func (oc *OrderConfirmation) Lines() []string {
	out := make([]string, 0, len(oc.itemList.Objects))
	for _, obj := range oc.itemList.Objects {
		if l, ok := obj.(*widget.Label); ok {
			out = append(out, l.Text)
		}
	}
	return out
}

func (oc *OrderConfirmation) DeliveryText() string {
	return oc.deliveryLabel.Text
}

func (oc *OrderConfirmation) GetContainer() *fyne.Container {
	return oc.container
}
