package service

import (
	"github.com/prepstock/prepstock-server/internal/domain"
	"github.com/prepstock/prepstock-server/internal/scan"
)

// ItemView is one catalog item merged with its session state and derived
// need. Index is the item's position inside the authoritative category list,
// which positional operations (remove, par update) key on.
type ItemView struct {
	Name          string            `json:"name"`
	Index         int               `json:"index"`
	Par           *float64          `json:"par,omitempty"`
	Barcode       string            `json:"barcode,omitempty"`
	CurrentCount  string            `json:"currentCount,omitempty"`
	Status        domain.ItemStatus `json:"status"`
	OrderQuantity float64           `json:"orderQuantity"`
	Needed        bool              `json:"needed"`
}

// CategoryView is one category's items, name-sorted for display.
type CategoryView struct {
	Name      string     `json:"name"`
	ItemCount int        `json:"itemCount"`
	Items     []ItemView `json:"items"`
}

// SectionView is the filtered, display-ready listing of one section.
// Categories left empty by the filter are omitted.
type SectionView struct {
	Section    domain.Section `json:"section"`
	Query      string         `json:"query,omitempty"`
	Categories []CategoryView `json:"categories"`
}

// CatalogView is the full catalog in authoritative order.
type CatalogView struct {
	Sections    []SectionView `json:"sections"`
	NeededCount int           `json:"neededCount"`
}

// LedgerEntryView is one ledger entry with its derived need.
type LedgerEntryView struct {
	Name          string            `json:"name"`
	CurrentCount  string            `json:"currentCount,omitempty"`
	Status        domain.ItemStatus `json:"status"`
	OrderQuantity float64           `json:"orderQuantity"`
	Needed        bool              `json:"needed"`
}

// LedgerView is the whole session ledger plus the "items to get" total.
type LedgerView struct {
	Entries     []LedgerEntryView `json:"entries"`
	NeededCount int               `json:"neededCount"`
}

// ResolveResult is the outcome of resolving a scanned barcode. Known codes
// carry their binding and go straight to action selection; unknown codes
// require the client to bind first.
type ResolveResult struct {
	Token   string                 `json:"token"`
	State   scan.State             `json:"state"`
	Known   bool                   `json:"known"`
	Binding *domain.BarcodeBinding `json:"binding,omitempty"`
}

// HistoryView is the scan log grouped by local calendar date.
type HistoryView struct {
	Days  []domain.DayGroup `json:"days"`
	Total int               `json:"total"`
}

// ScannerSettings are the client scanner defaults served to the browser.
type ScannerSettings struct {
	CameraFacing string `json:"cameraFacing"`
	FrameRate    int    `json:"frameRate"`
	BoxWidth     int    `json:"boxWidth"`
	BoxHeight    int    `json:"boxHeight"`
}
