package app

import (
	"food-delivery/internal/logger"
	"food-delivery/internal/shutdown"
)

// Lifecycle guards the shutdown sequence so window close, signals and the
// end of the event loop can all request it safely.
type Lifecycle struct {
	manager *shutdown.Manager
	logger  logger.Logger
}

func NewLifecycle(manager *shutdown.Manager, log logger.Logger) *Lifecycle {
	return &Lifecycle{manager: manager, logger: log}
}

// ListenForSignals shuts down on SIGINT/SIGTERM and then calls quit
func (l *Lifecycle) ListenForSignals(quit func()) {
	l.manager.Listen(quit)
}

func (l *Lifecycle) Shutdown() {
	select {
	case <-l.manager.Done():
		return
	default:
	}
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
	l.manager.Shutdown()
}

func (l *Lifecycle) IsShutdown() bool {
	select {
	case <-l.manager.Done():
		return true
	default:
		return false
	}
}
