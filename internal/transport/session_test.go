package transport

import (
	"testing"
	"time"

	"github.com/irmsia-data/anomaly.report/internal/timeutil"
)

func testSession() (*Session, *timeutil.MockClock) {
	clock := timeutil.NewMockClock(time.Unix(0, 0))
	return NewSession(clock, time.Second, 30*time.Second), clock
}

func TestSessionInitialStateDisconnected(t *testing.T) {
	s, _ := testSession()
	if got := s.State(); got != StateDisconnected {
		t.Errorf("State() = %v, want disconnected", got)
	}
}

func TestSessionTransitions(t *testing.T) {
	s, _ := testSession()

	s.MarkConnected()
	if s.State() != StateConnected {
		t.Errorf("State() = %v, want connected", s.State())
	}

	s.MarkDegraded()
	if s.State() != StateDegraded {
		t.Errorf("State() = %v, want degraded", s.State())
	}

	s.MarkDisconnected()
	if s.State() != StateDisconnected {
		t.Errorf("State() = %v, want disconnected", s.State())
	}
}

func TestSessionClosedIsTerminal(t *testing.T) {
	s, _ := testSession()
	s.Close()

	s.MarkConnected()
	if s.State() != StateClosed {
		t.Errorf("State() = %v, want closed after Close", s.State())
	}
	if s.BeginReconnect() {
		t.Error("BeginReconnect succeeded on closed session")
	}
}

func TestSessionSingleReconnectSlot(t *testing.T) {
	s, _ := testSession()

	if !s.BeginReconnect() {
		t.Fatal("first BeginReconnect failed")
	}
	if s.State() != StateConnecting {
		t.Errorf("State() = %v, want connecting", s.State())
	}
	if s.BeginReconnect() {
		t.Error("second BeginReconnect succeeded while one in flight")
	}

	s.EndReconnect(true)
	if s.State() != StateConnected {
		t.Errorf("State() = %v, want connected after successful reconnect", s.State())
	}

	// The slot is free again.
	if !s.BeginReconnect() {
		t.Error("BeginReconnect failed after slot release")
	}
	s.EndReconnect(false)
	if s.State() != StateDegraded {
		t.Errorf("State() = %v, want degraded after failed reconnect", s.State())
	}
}

func TestSessionBackoffDoublingAndCap(t *testing.T) {
	s, _ := testSession()

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second}, // 32s capped
		{10, 30 * time.Second},
	}
	for _, tt := range tests {
		if got := s.BackoffDelay(tt.attempt); got != tt.want {
			t.Errorf("BackoffDelay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestSessionBackoffSleepsOnClock(t *testing.T) {
	s, clock := testSession()

	s.Backoff(0)
	s.Backoff(1)
	s.Backoff(2)

	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
	sleeps := clock.Sleeps()
	if len(sleeps) != len(want) {
		t.Fatalf("recorded %d sleeps, want %d", len(sleeps), len(want))
	}
	for i := range want {
		if sleeps[i] != want[i] {
			t.Errorf("sleeps[%d] = %v, want %v", i, sleeps[i], want[i])
		}
	}
}

func TestSessionStateString(t *testing.T) {
	for s, want := range map[SessionState]string{
		StateDisconnected: "disconnected",
		StateConnecting:   "connecting",
		StateConnected:    "connected",
		StateDegraded:     "degraded",
		StateClosed:       "closed",
	} {
		if got := s.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(s), got, want)
		}
	}
}
