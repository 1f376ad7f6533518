package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"food-delivery/internal/logger"
)

// DefaultSlowStep is how long a component may take before its shutdown is
// reported as slow
const DefaultSlowStep = 2 * time.Second

type Shutdownable interface {
	Shutdown()
}

// Func adapts a plain function to Shutdownable
type Func func()

func (f Func) Shutdown() { f() }

type namedComponent struct {
	name      string
	component Shutdownable
}

// Manager shuts down registered components once, in reverse registration
// order, on the goroutine that calls Shutdown.
type Manager struct {
	components []namedComponent
	logger     logger.Logger
	slowStep   time.Duration
	dispatch   func(func())
	mu         sync.Mutex
	done        chan struct{}
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop()
	}
	ctx, cancel := context.WithCancel(context.Background())

	return &Manager{
		logger:   log,
		slowStep: DefaultSlowStep,
		dispatch: func(fn func()) { fn() },
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetSlowStep sets the duration after which a component shutdown is logged as slow
func (m *Manager) SetSlowStep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slowStep = d
}

// SetDispatcher sets how the signal listener hands the shutdown sequence to
// the goroutine that owns the components, such as fyne.Do for UI state.
func (m *Manager) SetDispatcher(dispatch func(func())) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dispatch = dispatch
}

func (m *Manager) Register(name string, component Shutdownable) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.components = append(m.components, namedComponent{name: name, component: component})
}

// Listen shuts down on SIGINT or SIGTERM through the dispatcher. onSignal,
// if set, runs after the components have been shut down.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			m.mu.Lock()
			dispatch := m.dispatch
			m.mu.Unlock()
			dispatch(func() {
				m.Shutdown()
				if onSignal != nil {
					onSignal()
				}
			})
		case <-m.ctx.Done():
		}
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"components": len(m.components),
	})

	m.cancel()

	for i := len(m.components) - 1; i >= 0; i-- {
		c := m.components[i]

		start := time.Now()
		c.component.Shutdown()
		elapsed := time.Since(start)

		fields := map[string]interface{}{
			"component":  c.name,
			"elapsed_ms": elapsed.Milliseconds(),
		}
		if elapsed > m.slowStep {
			m.logger.Warning("ShutdownManager", "slow component shutdown", fields)
		} else {
			m.logger.Debug("ShutdownManager", "component stopped", fields)
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}
