package domain

import "time"

// BarcodeBinding ties a scanned code to a catalog item reference. Bindings
// are created exactly once, at the first successful resolution of an unknown
// scan, and are immutable afterwards.
type BarcodeBinding struct {
	Barcode   string    `json:"barcode"`
	ItemName  string    `json:"itemName"`
	Section   Section   `json:"section"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// BarcodeRegistry is the persistent barcode -> item mapping, built
// incrementally as new codes are encountered.
type BarcodeRegistry struct {
	Bindings map[string]BarcodeBinding `json:"bindings"`
}

// NewBarcodeRegistry creates an empty registry.
func NewBarcodeRegistry() *BarcodeRegistry {
	return &BarcodeRegistry{Bindings: make(map[string]BarcodeBinding)}
}

// Normalize repairs a registry loaded from storage.
func (r *BarcodeRegistry) Normalize() {
	if r.Bindings == nil {
		r.Bindings = make(map[string]BarcodeBinding)
	}
}

// Lookup returns the binding for a scanned code.
func (r *BarcodeRegistry) Lookup(code string) (BarcodeBinding, bool) {
	b, ok := r.Bindings[code]
	return b, ok
}

// Bind records a new barcode binding. A code that is already bound keeps its
// original binding; Bind reports whether a new one was created.
func (r *BarcodeRegistry) Bind(code, itemName string, section Section, category string, now time.Time) bool {
	if _, ok := r.Bindings[code]; ok {
		return false
	}
	r.Bindings[code] = BarcodeBinding{
		Barcode:   code,
		ItemName:  itemName,
		Section:   section,
		Category:  category,
		CreatedAt: now,
	}
	return true
}
