// Package transport connects the analysis pipeline to a remote compute
// service over gRPC, with health-gated failover to the local pipeline.
package transport

import (
	"errors"
	"sync"
	"time"

	"github.com/irmsia-data/anomaly.report/internal/monitoring"
	"github.com/irmsia-data/anomaly.report/internal/timeutil"
)

// Sentinel errors for the transport taxonomy. Unavailable and Timeout are
// transient; InvalidRequest is terminal.
var (
	ErrInvalidRequest       = errors.New("transport: invalid request")
	ErrTransportUnavailable = errors.New("transport: service unavailable")
	ErrTransportTimeout     = errors.New("transport: call timed out")
)

// SessionState tracks the connection lifecycle.
type SessionState int32

const (
	StateDisconnected SessionState = iota
	StateConnecting
	StateConnected
	StateDegraded
	StateClosed
)

// String returns the lowercase state name.
func (s SessionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDegraded:
		return "degraded"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Session is the connection state machine. The mutex guards state
// transitions only; RPC calls run outside it. At most one reconnect may be
// in flight at a time.
type Session struct {
	mu           sync.Mutex
	state        SessionState
	reconnecting bool

	clock       timeutil.Clock
	backoffBase time.Duration
	backoffCap  time.Duration
}

// NewSession creates a disconnected session with the given backoff bounds.
// A nil clock uses real time.
func NewSession(clock timeutil.Clock, base, cap time.Duration) *Session {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &Session{
		state:       StateDisconnected,
		clock:       clock,
		backoffBase: base,
		backoffCap:  cap,
	}
}

// State returns the current state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// transition moves to next unless the session is closed. Returns the state
// actually in effect afterwards.
func (s *Session) transition(next SessionState) SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed {
		return s.state
	}
	if s.state != next {
		monitoring.Logf("[Session] %v -> %v", s.state, next)
		s.state = next
	}
	return s.state
}

// MarkConnected records a healthy connection.
func (s *Session) MarkConnected() { s.transition(StateConnected) }

// MarkDegraded records a failed call on an established connection.
func (s *Session) MarkDegraded() { s.transition(StateDegraded) }

// MarkDisconnected records a lost connection.
func (s *Session) MarkDisconnected() { s.transition(StateDisconnected) }

// Close moves the session to its terminal state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateClosed {
		monitoring.Logf("[Session] %v -> closed", s.state)
		s.state = StateClosed
	}
}

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool {
	return s.State() == StateClosed
}

// BeginReconnect attempts to claim the single reconnect slot, moving to
// CONNECTING. Returns false when a reconnect is already in flight or the
// session is closed.
func (s *Session) BeginReconnect() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateClosed || s.reconnecting {
		return false
	}
	s.reconnecting = true
	monitoring.Logf("[Session] %v -> connecting", s.state)
	s.state = StateConnecting
	return true
}

// EndReconnect releases the reconnect slot and records the outcome.
func (s *Session) EndReconnect(ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reconnecting = false
	if s.state == StateClosed {
		return
	}
	next := StateDegraded
	if ok {
		next = StateConnected
	}
	monitoring.Logf("[Session] %v -> %v", s.state, next)
	s.state = next
}

// Backoff sleeps for the bounded exponential delay of the given attempt
// (0-based): base<<attempt, capped.
func (s *Session) Backoff(attempt int) {
	s.clock.Sleep(s.BackoffDelay(attempt))
}

// BackoffDelay returns the delay for an attempt without sleeping.
func (s *Session) BackoffDelay(attempt int) time.Duration {
	d := s.backoffBase
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= s.backoffCap {
			return s.backoffCap
		}
	}
	if d > s.backoffCap {
		return s.backoffCap
	}
	return d
}
