// Package normalize provides utilities for normalizing user-entered inventory data.
package normalize

import "strings"

// ItemName canonicalizes an item name: trimmed, inner whitespace collapsed,
// uppercased. The catalog, ledger, and barcode registry all key on this form.
func ItemName(raw string) string {
	return strings.ToUpper(strings.Join(strings.Fields(raw), " "))
}

// Category canonicalizes a category name the same way item names are.
func Category(raw string) string {
	return ItemName(raw)
}

// Barcode trims a decoded barcode string. No checksum validation is
// performed; any non-empty decoded string is accepted as an identifier.
func Barcode(raw string) string {
	return strings.TrimSpace(raw)
}
