package domain

import (
	"sort"
	"time"
)

// ScanAction is the stock movement recorded by a confirmed scan.
type ScanAction string

const (
	// ActionReceived logs incoming stock and resolves the item's need.
	ActionReceived ScanAction = "received"
	// ActionUsed logs consumption; no ledger side effect.
	ActionUsed ScanAction = "used"
	// ActionCounted logs a stocktake and overwrites the ledger count.
	ActionCounted ScanAction = "counted"
)

// ParseScanAction validates a raw action string.
func ParseScanAction(raw string) (ScanAction, bool) {
	switch ScanAction(raw) {
	case ActionReceived, ActionUsed, ActionCounted:
		return ScanAction(raw), true
	}
	return "", false
}

// ScanLogEntry is one immutable record in the scan action history.
type ScanLogEntry struct {
	ID        string     `json:"id"`
	Barcode   string     `json:"barcode"`
	ItemName  string     `json:"itemName"`
	Quantity  int        `json:"quantity"`
	Timestamp time.Time  `json:"timestamp"`
	Action    ScanAction `json:"action"`
}

// ScanLog is the append-only, most-recent-first audit trail of scan-triggered
// stock events. Entries are never edited or deleted individually; the log
// supports bulk clear only.
type ScanLog struct {
	Entries []ScanLogEntry `json:"entries"`
}

// NewScanLog creates an empty log.
func NewScanLog() *ScanLog {
	return &ScanLog{}
}

// Prepend adds a new entry at the front of the log.
func (l *ScanLog) Prepend(entry ScanLogEntry) {
	l.Entries = append([]ScanLogEntry{entry}, l.Entries...)
}

// Clear empties the log unconditionally.
func (l *ScanLog) Clear() {
	l.Entries = nil
}

// Len returns the number of entries.
func (l *ScanLog) Len() int {
	return len(l.Entries)
}

// DayGroup is the history view's unit: all entries scanned on one local
// calendar date.
type DayGroup struct {
	// Date is the local calendar date key, formatted as 2006-01-02.
	Date string `json:"date"`
	// Label is the human-readable date, e.g. "Mon, Sep 1".
	Label   string         `json:"label"`
	Entries []ScanLogEntry `json:"entries"`
}

// GroupedByDay buckets entries by local calendar date, most recent date
// first, entries within a date most recent first.
func (l *ScanLog) GroupedByDay() []DayGroup {
	byDate := make(map[string][]ScanLogEntry)
	for _, e := range l.Entries {
		key := e.Timestamp.Local().Format("2006-01-02")
		byDate[key] = append(byDate[key], e)
	}

	groups := make([]DayGroup, 0, len(byDate))
	for key, entries := range byDate {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		})
		groups = append(groups, DayGroup{
			Date:    key,
			Label:   entries[0].Timestamp.Local().Format("Mon, Jan 2"),
			Entries: entries,
		})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date > groups[j].Date
	})
	return groups
}
