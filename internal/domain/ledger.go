package domain

// ItemStatus is the explicit per-item override on the checklist.
type ItemStatus string

const (
	// StatusNeeded flags the item for today's order regardless of counts.
	StatusNeeded ItemStatus = "needed"
	// StatusNotNeeded suppresses the item even when counts fall below par.
	StatusNotNeeded ItemStatus = "not-needed"
	// StatusNone means no explicit decision; need falls back to par math.
	// Entries with this status carry no information and are removed.
	StatusNone ItemStatus = "none"
)

// ParseItemStatus validates a raw status string.
func ParseItemStatus(raw string) (ItemStatus, bool) {
	switch ItemStatus(raw) {
	case StatusNeeded, StatusNotNeeded, StatusNone:
		return ItemStatus(raw), true
	}
	return "", false
}

// LedgerEntry is the per-item session state: the raw on-hand count as the
// user typed it, plus the explicit status override. The item name doubles as
// the entry ID.
type LedgerEntry struct {
	ID           string     `json:"id"`
	CurrentCount string     `json:"currentCount"`
	Status       ItemStatus `json:"status"`
}

// Ledger holds the ephemeral per-session counts and overrides, keyed by item
// name. It is independent of the catalog and cleared wholesale by a reset.
type Ledger struct {
	Entries map[string]LedgerEntry `json:"entries"`
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{Entries: make(map[string]LedgerEntry)}
}

// Normalize repairs a ledger loaded from storage.
func (l *Ledger) Normalize() {
	if l.Entries == nil {
		l.Entries = make(map[string]LedgerEntry)
	}
}

// SetCount records the raw count input for an item, preserving any status.
func (l *Ledger) SetCount(name, count string) {
	e := l.Entries[name]
	e.ID = name
	e.CurrentCount = count
	if e.Status == "" {
		e.Status = StatusNone
	}
	l.Entries[name] = e
}

// SetStatus records an explicit status override. Setting StatusNone removes
// the entry entirely, count included: a no-decision entry carries no
// information.
func (l *Ledger) SetStatus(name string, status ItemStatus) {
	if status == StatusNone {
		delete(l.Entries, name)
		return
	}
	e := l.Entries[name]
	e.ID = name
	e.Status = status
	l.Entries[name] = e
}

// Reset empties the ledger. The catalog and barcode registry are unaffected.
func (l *Ledger) Reset() {
	l.Entries = make(map[string]LedgerEntry)
}
