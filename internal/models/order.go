package models

import (
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

const (
	MinDeliveryMinutes = 1
	// MaxDeliveryMinutes is exclusive.
	MaxDeliveryMinutes = 60
)

// Estimator produces a delivery time in minutes within [MinDeliveryMinutes, MaxDeliveryMinutes)
type Estimator interface {
	EstimateMinutes() int
}

// RandomEstimator draws uniformly distributed delivery estimates
type RandomEstimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomEstimator seeds the generator with seed, or randomly when seed is zero
func NewRandomEstimator(seed uint64) *RandomEstimator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomEstimator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (e *RandomEstimator) EstimateMinutes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return MinDeliveryMinutes + e.rng.IntN(MaxDeliveryMinutes-MinDeliveryMinutes)
}

// EstimatorFunc adapts a plain function to Estimator
type EstimatorFunc func() int

func (f EstimatorFunc) EstimateMinutes() int { return f() }

// OrderState belongs to a single Cart screen instance. Leaving the Cart
// screen discards it, so the next visit starts with no order placed.
type OrderState struct {
	mu              sync.RWMutex
	placed          bool
	id              uuid.UUID
	deliveryMinutes int
}

func NewOrderState() *OrderState {
	return &OrderState{}
}

// Place marks the order as placed. The id and estimate are fixed by the first
// call; later calls on the same state keep them. It reports whether this call
// placed the order.
func (o *OrderState) Place(estimator Estimator) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.placed {
		return false
	}
	o.placed = true
	o.id = uuid.New()
	o.deliveryMinutes = clampMinutes(estimator.EstimateMinutes())
	return true
}

func (o *OrderState) Placed() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.placed
}

// ID is the zero UUID until the order is placed
func (o *OrderState) ID() uuid.UUID {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.id
}

// DeliveryMinutes is zero until the order is placed
func (o *OrderState) DeliveryMinutes() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.deliveryMinutes
}

// OrderNumber is a short display form of the order id
func (o *OrderState) OrderNumber() string {
	id := o.ID()
	if id == uuid.Nil {
		return ""
	}
	return id.String()[:8]
}

func clampMinutes(m int) int {
	if m < MinDeliveryMinutes {
		return MinDeliveryMinutes
	}
	if m >= MaxDeliveryMinutes {
		return MaxDeliveryMinutes - 1
	}
	return m
}
