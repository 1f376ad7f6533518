package shutdown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type warningLog struct {
	mu       sync.Mutex
	warnings []map[string]interface{}
}

func (l *warningLog) Debug(string, string, map[string]interface{}) {}
func (l *warningLog) Info(string, string, map[string]interface{})  {}
func (l *warningLog) Error(string, error, map[string]interface{})  {}

func (l *warningLog) Warning(_ string, _ string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warnings = append(l.warnings, fields)
}

type orderLog struct {
	mu    sync.Mutex
	steps []string
}

func (o *orderLog) record(name string) Func {
	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		o.steps = append(o.steps, name)
	}
}

func (o *orderLog) snapshot() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.steps...)
}

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	m := NewManager(nil)
	log := &orderLog{}
	m.Register("bus", log.record("bus"))
	m.Register("controller", log.record("controller"))
	m.Register("view", log.record("view"))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"view", "controller", "bus"}, log.snapshot())
	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownRunsComponentsOnCallingGoroutine(t *testing.T) {
	m := NewManager(nil)
	var stopped bool
	m.Register("view", Func(func() { stopped = true }))

	m.Shutdown()

	// no synchronisation needed: the component ran before Shutdown returned
	assert.True(t, stopped)
}

func TestShutdownReportsSlowComponent(t *testing.T) {
	log := &warningLog{}
	m := NewManager(log)
	m.SetSlowStep(5 * time.Millisecond)
	m.Register("fast", Func(func() {}))
	m.Register("slow", Func(func() { time.Sleep(20 * time.Millisecond) }))

	m.Shutdown()

	if assert.Len(t, log.warnings, 1) {
		assert.Equal(t, "slow", log.warnings[0]["component"])
	}
}

