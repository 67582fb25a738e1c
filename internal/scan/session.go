// Package scan implements the one-shot scan session gate. Barcode scanners
// fire decode callbacks in bursts; only the first decode of a flow is
// accepted and everything after it is discarded until the flow finishes.
package scan

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "github.com/prepstock/prepstock-server/internal/errors"
)

// State is the current phase of a scan flow.
type State string

const (
	// StateIdle means no scan flow is active and the next decode is accepted.
	StateIdle State = "idle"
	// StateAwaitingBinding means an unknown barcode was accepted and the
	// client must bind it to an item before committing.
	StateAwaitingBinding State = "awaiting_binding"
	// StateAwaitingAction means the barcode resolved to an item and the
	// client must pick an action and quantity.
	StateAwaitingAction State = "awaiting_action"
)

// Session is one accepted scan flow. The token authorizes the follow-up
// bind/commit calls so a stale client cannot finish someone else's flow.
type Session struct {
	Token     string    `json:"token"`
	Barcode   string    `json:"barcode"`
	State     State     `json:"state"`
	StartedAt time.Time `json:"startedAt"`
}

// sessionTTL bounds how long an abandoned flow can hold the gate. A client
// that navigates away mid-scan would otherwise wedge the scanner forever.
const sessionTTL = 2 * time.Minute

// Gate serializes scan flows: at most one session exists at a time.
type Gate struct {
	mu      sync.Mutex
	session *Session
	logger  *slog.Logger
	now     func() time.Time
}

// NewGate creates an idle gate.
func NewGate(logger *slog.Logger) *Gate {
	return &Gate{
		logger: logger,
		now:    time.Now,
	}
}

// Accept starts a new session for a decoded barcode. known selects the
// initial state: resolved barcodes go straight to action selection, unknown
// ones must be bound first. While a session is live, further decodes return
// a conflict and the caller discards them.
func (g *Gate) Accept(barcode string, known bool) (*Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.expireLocked()

	if g.session != nil {
		return nil, domainerrors.Conflict("scan already in progress")
	}

	state := StateAwaitingBinding
	if known {
		state = StateAwaitingAction
	}

	g.session = &Session{
		Token:     uuid.NewString(),
		Barcode:   barcode,
		State:     state,
		StartedAt: g.now(),
	}

	g.logger.Debug("scan session started",
		slog.String("token", g.session.Token),
		slog.String("barcode", barcode),
		slog.String("state", string(state)),
	)

	snapshot := *g.session
	return &snapshot, nil
}

// Bound transitions the session from awaiting_binding to awaiting_action
// after the barcode has been registered.
func (g *Gate) Bound(token string) (*Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.lookupLocked(token)
	if err != nil {
		return nil, err
	}
	if s.State != StateAwaitingBinding {
		return nil, domainerrors.Conflictf("scan session is %s, expected %s", s.State, StateAwaitingBinding)
	}

	s.State = StateAwaitingAction
	snapshot := *s
	return &snapshot, nil
}

// Complete finishes the session and returns the gate to idle.
func (g *Gate) Complete(token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.lookupLocked(token)
	if err != nil {
		return err
	}
	if s.State != StateAwaitingAction {
		return domainerrors.Conflictf("scan session is %s, expected %s", s.State, StateAwaitingAction)
	}

	g.logger.Debug("scan session completed", slog.String("token", s.Token))
	g.session = nil
	return nil
}

// Cancel aborts the session regardless of state.
func (g *Gate) Cancel(token string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	s, err := g.lookupLocked(token)
	if err != nil {
		return err
	}

	g.logger.Debug("scan session cancelled", slog.String("token", s.Token))
	g.session = nil
	return nil
}

// Current returns a snapshot of the live session, or nil when idle.
func (g *Gate) Current() *Session {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.expireLocked()

	if g.session == nil {
		return nil
	}
	snapshot := *g.session
	return &snapshot
}

// Session lookups require a matching token. An expired session reads the
// same as no session.
func (g *Gate) lookupLocked(token string) (*Session, error) {
	g.expireLocked()

	if g.session == nil {
		return nil, domainerrors.NotFound("no active scan session")
	}
	if g.session.Token != token {
		return nil, domainerrors.Conflict("scan session token mismatch")
	}
	return g.session, nil
}

func (g *Gate) expireLocked() {
	if g.session == nil {
		return
	}
	if g.now().Sub(g.session.StartedAt) > sessionTTL {
		g.logger.Warn("scan session expired",
			slog.String("token", g.session.Token),
			slog.String("barcode", g.session.Barcode),
		)
		g.session = nil
	}
}
