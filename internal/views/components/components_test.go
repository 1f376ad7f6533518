package components

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery/internal/models"
)

var pizza = models.FoodItem{Name: "Pizza", Price: "$12", Emoji: "🍕"}

func TestItemRowWithAdd(t *testing.T) {
	test.NewTempApp(t)

	var added []models.FoodItem
	row := NewItemRow(pizza, func(item models.FoodItem) { added = append(added, item) })

	require.NotNil(t, row.AddButton())
	assert.Equal(t, "Add", row.AddButton().Text)
	assert.Equal(t, "🍕 Pizza $12", row.Text())

	test.Tap(row.AddButton())
	test.Tap(row.AddButton())
	assert.Equal(t, []models.FoodItem{pizza, pizza}, added)
}

func TestItemRowReadOnly(t *testing.T) {
	test.NewTempApp(t)

	row := NewItemRow(pizza, nil)
	assert.Nil(t, row.AddButton())
	assert.Equal(t, pizza, row.Item())
	assert.Equal(t, "🍕 Pizza $12", row.Text())
}

func TestNavigationBar(t *testing.T) {
	test.NewTempApp(t)

	nb := NewNavigationBar(models.ScreenHome)
	assert.Equal(t, widget.HighImportance, nb.HomeButton().Importance)
	assert.Equal(t, widget.LowImportance, nb.CartButton().Importance)

	var picked []models.Screen
	nb.SetSelectHandler(func(s models.Screen) { picked = append(picked, s) })
	test.Tap(nb.CartButton())
	test.Tap(nb.HomeButton())
	assert.Equal(t, []models.Screen{models.ScreenCart, models.ScreenHome}, picked)

	nb.SetSelected(models.ScreenCart)
	assert.Equal(t, models.ScreenCart, nb.Selected())
	assert.Equal(t, widget.HighImportance, nb.CartButton().Importance)
	assert.Equal(t, widget.LowImportance, nb.HomeButton().Importance)
}

func TestHeader(t *testing.T) {
	test.NewTempApp(t)

	h := NewHeader("Cart", HeaderTextSize)
	assert.Equal(t, "Cart", h.Title())
	assert.NotNil(t, h.GetContainer())
}
