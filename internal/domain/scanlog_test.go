package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logEntry(id string, ts time.Time) ScanLogEntry {
	return ScanLogEntry{
		ID:        id,
		Barcode:   "012345",
		ItemName:  "HOT SAUCE",
		Quantity:  1,
		Timestamp: ts,
		Action:    ActionReceived,
	}
}

func TestScanLog_PrependIsMostRecentFirst(t *testing.T) {
	l := NewScanLog()
	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.Local)

	l.Prepend(logEntry("a", base))
	l.Prepend(logEntry("b", base.Add(time.Minute)))

	require.Equal(t, 2, l.Len())
	assert.Equal(t, "b", l.Entries[0].ID)
	assert.Equal(t, "a", l.Entries[1].ID)
}

func TestScanLog_Clear(t *testing.T) {
	l := NewScanLog()
	l.Prepend(logEntry("a", time.Now()))

	l.Clear()

	assert.Equal(t, 0, l.Len())
}

func TestScanLog_GroupedByDay(t *testing.T) {
	l := NewScanLog()
	monday := time.Date(2026, 8, 31, 9, 0, 0, 0, time.Local)
	tuesday := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)

	l.Prepend(logEntry("mon-early", monday))
	l.Prepend(logEntry("mon-late", monday.Add(2*time.Hour)))
	l.Prepend(logEntry("tue", tuesday))

	groups := l.GroupedByDay()

	require.Len(t, groups, 2)
	// Most recent date first.
	assert.Equal(t, "2026-09-01", groups[0].Date)
	assert.Equal(t, "2026-08-31", groups[1].Date)
	// Entries within a date most recent first.
	require.Len(t, groups[1].Entries, 2)
	assert.Equal(t, "mon-late", groups[1].Entries[0].ID)
	assert.Equal(t, "mon-early", groups[1].Entries[1].ID)
	// Human label derived from the group's own date.
	assert.Equal(t, "Tue, Sep 1", groups[0].Label)
}

func TestScanLog_GroupedByDayEmpty(t *testing.T) {
	assert.Empty(t, NewScanLog().GroupedByDay())
}

func TestParseScanAction(t *testing.T) {
	for _, raw := range []string{"received", "used", "counted"} {
		_, ok := ParseScanAction(raw)
		assert.True(t, ok, raw)
	}
	_, ok := ParseScanAction("returned")
	assert.False(t, ok)
}
