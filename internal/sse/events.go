// Package sse implements Server-Sent Events so an open checklist client
// refreshes live when the inventory changes.
package sse

import (
	"time"

	"github.com/prepstock/prepstock-server/internal/domain"
)

// EventType represents the type of SSE Event.
type EventType string

const (
	// EventCatalogUpdated fires on any catalog mutation (add, promote,
	// remove, par change).
	EventCatalogUpdated EventType = "catalog.updated"
	// EventLedgerUpdated fires on any count/status change or reset.
	EventLedgerUpdated EventType = "ledger.updated"
	// EventScanLogged fires when a scan action is committed.
	EventScanLogged EventType = "scan.logged"
	// EventScanHistoryCleared fires when the scan log is bulk-cleared.
	EventScanHistoryCleared EventType = "scan.history_cleared"
	// EventHeartbeat represents a connection keepalive event.
	EventHeartbeat EventType = "heartbeat"
)

// Event represents an SSE event to be sent to clients.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Type      EventType `json:"type"`
}

// LedgerEventData carries the recomputed order-list size so the client can
// update its "to get" badge without refetching.
type LedgerEventData struct {
	NeededCount int `json:"neededCount"`
}

// NewCatalogUpdatedEvent creates a catalog change event.
func NewCatalogUpdatedEvent(neededCount int) Event {
	return Event{
		Type:      EventCatalogUpdated,
		Timestamp: time.Now(),
		Data:      LedgerEventData{NeededCount: neededCount},
	}
}

// NewLedgerUpdatedEvent creates a ledger change event.
func NewLedgerUpdatedEvent(neededCount int) Event {
	return Event{
		Type:      EventLedgerUpdated,
		Timestamp: time.Now(),
		Data:      LedgerEventData{NeededCount: neededCount},
	}
}

// NewScanLoggedEvent creates an event for a committed scan action.
func NewScanLoggedEvent(entry domain.ScanLogEntry) Event {
	return Event{
		Type:      EventScanLogged,
		Timestamp: time.Now(),
		Data:      entry,
	}
}

// NewScanHistoryClearedEvent creates an event for a history bulk clear.
func NewScanHistoryClearedEvent() Event {
	return Event{
		Type:      EventScanHistoryCleared,
		Timestamp: time.Now(),
	}
}

// NewHeartbeatEvent creates a keepalive event.
func NewHeartbeatEvent() Event {
	return Event{
		Type:      EventHeartbeat,
		Timestamp: time.Now(),
	}
}
