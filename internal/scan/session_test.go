package scan

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	return NewGate(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGate_Accept_KnownBarcode(t *testing.T) {
	gate := newTestGate(t)

	session, err := gate.Accept("0123456789012", true)
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "0123456789012", session.Barcode)
	assert.Equal(t, StateAwaitingAction, session.State)
}

func TestGate_Accept_UnknownBarcode(t *testing.T) {
	gate := newTestGate(t)

	session, err := gate.Accept("999", false)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingBinding, session.State)
}

func TestGate_Accept_DuplicateDecodeDiscarded(t *testing.T) {
	gate := newTestGate(t)

	_, err := gate.Accept("0123456789012", true)
	require.NoError(t, err)

	// Scanner libraries fire the same decode several times per second.
	_, err = gate.Accept("0123456789012", true)
	require.Error(t, err)
	_, err = gate.Accept("another-code", true)
	require.Error(t, err)
}

func TestGate_BindThenComplete(t *testing.T) {
	gate := newTestGate(t)

	session, err := gate.Accept("999", false)
	require.NoError(t, err)

	bound, err := gate.Bound(session.Token)
	require.NoError(t, err)
	assert.Equal(t, StateAwaitingAction, bound.State)

	require.NoError(t, gate.Complete(session.Token))
	assert.Nil(t, gate.Current())

	// Gate is idle again, next decode is accepted.
	_, err = gate.Accept("another", true)
	require.NoError(t, err)
}

func TestGate_Bound_RequiresBindingState(t *testing.T) {
	gate := newTestGate(t)

	session, err := gate.Accept("0123456789012", true)
	require.NoError(t, err)

	_, err = gate.Bound(session.Token)
	require.Error(t, err)
}

func TestGate_Complete_RequiresActionState(t *testing.T) {
	gate := newTestGate(t)

	session, err := gate.Accept("999", false)
	require.NoError(t, err)

	require.Error(t, gate.Complete(session.Token))
}

func TestGate_TokenMismatch(t *testing.T) {
	gate := newTestGate(t)

	_, err := gate.Accept("0123456789012", true)
	require.NoError(t, err)

	require.Error(t, gate.Complete("wrong-token"))
}

func TestGate_Cancel(t *testing.T) {
	gate := newTestGate(t)

	session, err := gate.Accept("999", false)
	require.NoError(t, err)

	require.NoError(t, gate.Cancel(session.Token))
	assert.Nil(t, gate.Current())
}

func TestGate_NoActiveSession(t *testing.T) {
	gate := newTestGate(t)

	require.Error(t, gate.Complete("anything"))
	assert.Nil(t, gate.Current())
}

func TestGate_SessionExpires(t *testing.T) {
	gate := newTestGate(t)

	session, err := gate.Accept("0123456789012", true)
	require.NoError(t, err)

	gate.now = func() time.Time { return session.StartedAt.Add(sessionTTL + time.Second) }

	assert.Nil(t, gate.Current())

	// Expired session releases the gate for the next decode.
	_, err = gate.Accept("0123456789012", true)
	require.NoError(t, err)
}
