package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishIsSynchronousAndOrdered(t *testing.T) {
	bus := NewBus(nil)
	var got []string

	bus.Subscribe(CartItemAdded, func(e Event) { got = append(got, "first") })
	bus.Subscribe(CartItemAdded, func(e Event) { got = append(got, "second") })
	bus.Subscribe(OrderPlaced, func(e Event) { got = append(got, "other") })

	bus.Publish(CartItemAdded, map[string]interface{}{"count": 1})

	assert.Equal(t, []string{"first", "second"}, got)
}

func TestPublishCarriesData(t *testing.T) {
	bus := NewBus(nil)
	var received Event
	bus.Subscribe(SessionScreenSelected, func(e Event) { received = e })

	bus.Publish(SessionScreenSelected, map[string]interface{}{"screen": "Cart"})

	assert.Equal(t, SessionScreenSelected, received.Type)
	assert.Equal(t, "Cart", received.Data["screen"])
	assert.False(t, received.Timestamp.IsZero())
}

func TestUnsubscribe(t *testing.T) {
	bus := NewBus(nil)
	calls := 0
	unsubscribe := bus.Subscribe(OrderPlaced, func(Event) { calls++ })
	bus.Subscribe(OrderPlaced, func(Event) {})
	require.Equal(t, 2, bus.SubscriberCount(OrderPlaced))

	unsubscribe()
	unsubscribe()
	bus.Publish(OrderPlaced, nil)

	assert.Zero(t, calls)
	assert.Equal(t, 1, bus.SubscriberCount(OrderPlaced))
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	bus := NewBus(nil)
	reached := false
	bus.Subscribe(SessionLoggedIn, func(Event) { panic("bad handler") })
	bus.Subscribe(SessionLoggedIn, func(Event) { reached = true })

	assert.NotPanics(t, func() { bus.Publish(SessionLoggedIn, nil) })
	assert.True(t, reached)
}

func TestShutdownStopsDelivery(t *testing.T) {
	bus := NewBus(nil)
	calls := 0
	bus.Subscribe(CartItemAdded, func(Event) { calls++ })

	bus.Shutdown()
	bus.Publish(CartItemAdded, nil)

	assert.Zero(t, calls)
	assert.Zero(t, bus.SubscriberCount(CartItemAdded))
}
