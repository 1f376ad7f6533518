package views

import (
	"food-delivery/internal/events"
	"food-delivery/internal/models"
)

// Controller is what the screens need from the application controller
type Controller interface {
	LogIn(email, password string)
	SelectScreen(screen models.Screen)
	AddItem(item models.FoodItem)
	PlaceOrder(order *models.OrderState) bool

	Session() *models.Session
	Cart() *models.Cart
	Catalog() *models.Catalog
	Events() *events.Bus
}
