package models

import (
	"sync"

	"github.com/google/uuid"
)

// Screen identifies a top-level view inside the main app shell
type Screen int

const (
	ScreenHome Screen = iota
	ScreenCart
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenCart:
		return "Cart"
	default:
		return "Unknown"
	}
}

// Session tracks login and navigation for one running app instance.
// There is no logout: once logged in the session stays logged in.
type Session struct {
	mu           sync.RWMutex
	id           uuid.UUID
	loggedIn     bool
	activeScreen Screen
}

// NewSession creates a logged-out session positioned on Home
func NewSession() *Session {
	return &Session{
		id:           uuid.New(),
		activeScreen: ScreenHome,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

// LogIn marks the session as logged in. It reports whether this call
// changed the state.
func (s *Session) LogIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loggedIn {
		return false
	}
	s.loggedIn = true
	return true
}

func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// SelectScreen switches the active screen and reports whether it changed
func (s *Session) SelectScreen(screen Screen) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeScreen == screen {
		return false
	}
	s.activeScreen = screen
	return true
}

func (s *Session) ActiveScreen() Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeScreen
}

// SessionState is a point-in-time copy of the session
type SessionState struct {
	ID           uuid.UUID
	IsLoggedIn   bool
	ActiveScreen Screen
}

func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SessionState{
		ID:           s.id,
		IsLoggedIn:   s.loggedIn,
		ActiveScreen: s.activeScreen,
	}
}
