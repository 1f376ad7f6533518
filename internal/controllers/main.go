package controllers

import (
	"sync/atomic"

	"food-delivery/internal/events"
	"food-delivery/internal/logger"
	"food-delivery/internal/models"
)

// MainController owns the session-wide state and exposes the operations the
// views are allowed to trigger. Every mutation is announced on the event bus.
type MainController struct {
	session   *models.Session
	cart      *models.Cart
	catalog   *models.Catalog
	estimator models.Estimator
	bus       *events.Bus
	logger    logger.Logger

	// read by shutdown logging, which may run off the UI goroutine
	ordersPlaced atomic.Int64
}

// NewMainController creates a controller over a fresh session and empty cart
func NewMainController(
	catalog *models.Catalog,
	estimator models.Estimator,
	bus *events.Bus,
	log logger.Logger,
) *MainController {
	if log == nil {
		log = logger.Nop()
	}
	return &MainController{
		session:   models.NewSession(),
		cart:      models.NewCart(),
		catalog:   catalog,
		estimator: estimator,
		bus:       bus,
		logger:    log,
	}
}

// LogIn always succeeds. The credentials are accepted for display only and
// are never checked.
func (mc *MainController) LogIn(email, password string) {
	if !mc.session.LogIn() {
		return
	}

	mc.logger.Info("Session", "logged in", map[string]interface{}{
		"session_id": mc.session.ID().String(),
	})
	mc.bus.Publish(events.SessionLoggedIn, map[string]interface{}{
		"session_id": mc.session.ID().String(),
	})
}

// SelectScreen switches between Home and Cart; reselecting is a no-op
func (mc *MainController) SelectScreen(screen models.Screen) {
	if !mc.session.SelectScreen(screen) {
		return
	}

	mc.logger.Debug("Session", "screen selected", map[string]interface{}{
		"screen": screen.String(),
	})
	mc.bus.Publish(events.SessionScreenSelected, map[string]interface{}{
		"screen": screen,
	})
}

// AddItem appends item to the cart unconditionally
func (mc *MainController) AddItem(item models.FoodItem) {
	count := mc.cart.Add(item)

	mc.logger.Debug("Cart", "item added", map[string]interface{}{
		"item":  item.Name,
		"count": count,
	})
	mc.bus.Publish(events.CartItemAdded, map[string]interface{}{
		"item":  item,
		"count": count,
	})
}

// PlaceOrder places order against the current cart. With an empty cart
// nothing changes and false is returned; the Cart screen never offers the
// action in that case. The cart itself is left untouched.
func (mc *MainController) PlaceOrder(order *models.OrderState) bool {
	if mc.cart.IsEmpty() {
		mc.logger.Warning("Order", "place order ignored for empty cart", nil)
		return false
	}

	if order.Place(mc.estimator) {
		mc.ordersPlaced.Add(1)
		mc.logger.Info("Order", "order placed", map[string]interface{}{
			"order":            order.OrderNumber(),
			"items":            mc.cart.Len(),
			"total":            mc.cart.Total().String(),
			"delivery_minutes": order.DeliveryMinutes(),
		})
	}

	mc.bus.Publish(events.OrderPlaced, map[string]interface{}{
		"order":            order.OrderNumber(),
		"delivery_minutes": order.DeliveryMinutes(),
	})
	return true
}

// Session exposes the session for read access
func (mc *MainController) Session() *models.Session {
	return mc.session
}

// Cart exposes the cart for read access
func (mc *MainController) Cart() *models.Cart {
	return mc.cart
}

func (mc *MainController) Catalog() *models.Catalog {
	return mc.catalog
}

func (mc *MainController) Events() *events.Bus {
	return mc.bus
}

// GetApplicationState returns a snapshot of everything the views render from
func (mc *MainController) GetApplicationState() ApplicationState {
	return ApplicationState{
		Session:      mc.session.State(),
		CartItems:    mc.cart.Items(),
		OrdersPlaced: int(mc.ordersPlaced.Load()),
	}
}

// ApplicationState represents the current state of the application
type ApplicationState struct {
	Session      models.SessionState
	CartItems    []models.FoodItem
	OrdersPlaced int
}

// Shutdown logs a summary of the session
func (mc *MainController) Shutdown() {
	mc.logger.Info("Controller", "session finished", map[string]interface{}{
		"session_id":    mc.session.ID().String(),
		"logged_in":     mc.session.IsLoggedIn(),
		"cart_items":    mc.cart.Len(),
		"orders_placed": mc.ordersPlaced.Load(),
	})
}
