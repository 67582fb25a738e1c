package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_SetCountPreservesStatus(t *testing.T) {
	l := NewLedger()
	l.SetStatus("EGGS", StatusNeeded)

	l.SetCount("EGGS", "3")

	e := l.Entries["EGGS"]
	assert.Equal(t, "EGGS", e.ID)
	assert.Equal(t, "3", e.CurrentCount)
	assert.Equal(t, StatusNeeded, e.Status)
}

func TestLedger_SetCountDefaultsStatusToNone(t *testing.T) {
	l := NewLedger()

	l.SetCount("EGGS", "3")

	assert.Equal(t, StatusNone, l.Entries["EGGS"].Status)
}

func TestLedger_SetStatusPreservesCount(t *testing.T) {
	l := NewLedger()
	l.SetCount("EGGS", "3")

	l.SetStatus("EGGS", StatusNotNeeded)

	e := l.Entries["EGGS"]
	assert.Equal(t, "3", e.CurrentCount)
	assert.Equal(t, StatusNotNeeded, e.Status)
}

func TestLedger_SetStatusNoneRemovesEntry(t *testing.T) {
	l := NewLedger()
	l.SetCount("EGGS", "3")
	l.SetStatus("EGGS", StatusNeeded)

	l.SetStatus("EGGS", StatusNone)

	_, ok := l.Entries["EGGS"]
	assert.False(t, ok)
}

func TestLedger_Reset(t *testing.T) {
	l := NewLedger()
	l.SetCount("EGGS", "3")
	l.SetStatus("MILK", StatusNeeded)

	l.Reset()

	assert.Empty(t, l.Entries)
}

func TestLedger_NormalizeNilMap(t *testing.T) {
	l := &Ledger{}
	l.Normalize()
	require.NotNil(t, l.Entries)
	l.SetCount("EGGS", "1")
	assert.Len(t, l.Entries, 1)
}

func TestParseItemStatus(t *testing.T) {
	for _, raw := range []string{"needed", "not-needed", "none"} {
		_, ok := ParseItemStatus(raw)
		assert.True(t, ok, raw)
	}
	_, ok := ParseItemStatus("maybe")
	assert.False(t, ok)
}
