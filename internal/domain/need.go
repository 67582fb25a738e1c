package domain

import (
	"math"
	"strconv"
)

// Need is the derived order suggestion for a single item.
type Need struct {
	// OrderQuantity is the par shortfall: max(0, par - count) when both are
	// known, otherwise 0.
	OrderQuantity float64 `json:"orderQuantity"`
	// Needed reports whether the item belongs on today's order list.
	Needed bool `json:"needed"`
}

// DeriveNeed computes the order suggestion for a ledger entry against the
// matching catalog item's par level. entry may be nil (no session state) and
// par may be nil (no target level configured).
//
// The precedence is fixed: an explicit status override is checked before any
// arithmetic, so "not-needed" wins even when the count sits below par.
func DeriveNeed(entry *LedgerEntry, par *float64) Need {
	n := Need{OrderQuantity: orderQuantity(entry, par)}

	if entry != nil {
		switch entry.Status {
		case StatusNeeded:
			n.Needed = true
			return n
		case StatusNotNeeded:
			n.Needed = false
			return n
		}
	}

	n.Needed = n.OrderQuantity > 0
	return n
}

// orderQuantity returns max(0, par-count) when the raw count parses as a
// finite number and a par is set; in every other case the shortfall is 0.
func orderQuantity(entry *LedgerEntry, par *float64) float64 {
	if entry == nil || par == nil {
		return 0
	}
	count, err := strconv.ParseFloat(entry.CurrentCount, 64)
	if err != nil || math.IsInf(count, 0) || math.IsNaN(count) {
		return 0
	}
	return math.Max(0, *par-count)
}

// NeededCount returns the system-wide "items to get" number: how many ledger
// entries derive as needed against the current catalog.
func NeededCount(ledger *Ledger, catalog *Catalog) int {
	count := 0
	for name, entry := range ledger.Entries {
		var par *float64
		if item, _, _, ok := catalog.FindItem(name); ok {
			par = item.Par
		}
		if DeriveNeed(&entry, par).Needed {
			count++
		}
	}
	return count
}
