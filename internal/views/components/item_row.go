package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"food-delivery/internal/models"
)

// ItemRow renders one food item as a card. With an add handler the price
// sits under the title and an Add button appears on the right; without one
// the price is right-aligned on the same line.
type ItemRow struct {
	container  *fyne.Container
	item       models.FoodItem
	titleLabel *widget.Label
	priceLabel *widget.Label
	addButton  *widget.Button
}

// NewItemRow creates a card for item. onAdd may be nil.
func NewItemRow(item models.FoodItem, onAdd func(models.FoodItem)) *ItemRow {
	r := &ItemRow{item: item}
	r.createComponents(onAdd)
	r.buildLayout()
	return r
}

func (r *ItemRow) createComponents(onAdd func(models.FoodItem)) {
	r.titleLabel = widget.NewLabel(r.item.Title())
	r.priceLabel = widget.NewLabel(r.item.Price)

	if onAdd != nil {
		r.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
		r.priceLabel.Importance = widget.HighImportance
		item := r.item
		r.addButton = widget.NewButton("Add", func() { onAdd(item) })
		r.addButton.Importance = widget.HighImportance
	}
}

func (r *ItemRow) buildLayout() {
	var row *fyne.Container
	if r.addButton != nil {
		row = container.NewBorder(nil, nil, nil, container.NewCenter(r.addButton),
			container.NewVBox(r.titleLabel, r.priceLabel))
	} else {
		row = container.NewHBox(r.titleLabel, layout.NewSpacer(), r.priceLabel)
	}
	r.container = container.NewPadded(widget.NewCard("", "", row))
}

func (r *ItemRow) Item() models.FoodItem {
	return r.item
}

// Text is the row as the user reads it, for example "🍕 Pizza $12"
func (r *ItemRow) Text() string {
	return r.titleLabel.Text + " " + r.priceLabel.Text
}

// AddButton is nil for rows without an add action
func (r *ItemRow) AddButton() *widget.Button {
	return r.addButton
}

func (r *ItemRow) GetContainer() *fyne.Container {
	return r.container
}
