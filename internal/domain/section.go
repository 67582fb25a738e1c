// Package domain contains the core data model for the PrepStock inventory server.
package domain

import "fmt"

// Section identifies one of the fixed top-level areas of the kitchen catalog.
type Section string

// The section set is closed: every catalog always carries exactly these four,
// in this order.
const (
	SectionDepot  Section = "DEPOT"
	SectionStore  Section = "STORE"
	SectionBakery Section = "BAKERY"
	SectionOther  Section = "OTHER"
)

// TemporaryCategory is the reserved category under OTHER that holds ad-hoc
// items pending promotion into the permanent catalog.
const TemporaryCategory = "TEMPORARY ITEMS"

// Sections returns the fixed section names in display order.
func Sections() []Section {
	return []Section{SectionDepot, SectionStore, SectionBakery, SectionOther}
}

// ParseSection validates a raw section name.
func ParseSection(raw string) (Section, error) {
	switch Section(raw) {
	case SectionDepot, SectionStore, SectionBakery, SectionOther:
		return Section(raw), nil
	}
	return "", fmt.Errorf("unknown section %q", raw)
}
