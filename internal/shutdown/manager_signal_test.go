//go:build unix

package shutdown

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenShutsDownOnSignalThroughDispatcher(t *testing.T) {
	m := NewManager(nil)
	log := &orderLog{}
	m.Register("controller", log.record("controller"))
	m.Register("view", log.record("view"))

	dispatched := make(chan struct{}, 1)
	m.SetDispatcher(func(fn func()) {
		dispatched <- struct{}{}
		fn()
	})

	quit := make(chan struct{})
	m.Listen(func() {
		log.record("quit")()
		close(quit)
	})

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGINT))

	select {
	case <-quit:
	case <-time.After(5 * time.Second):
		t.Fatal("signal did not trigger shutdown")
	}

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
	assert.Len(t, dispatched, 1)
	assert.Equal(t, []string{"view", "controller", "quit"}, log.snapshot())
}
