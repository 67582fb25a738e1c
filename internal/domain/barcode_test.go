package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarcodeRegistry_BindOnce(t *testing.T) {
	r := NewBarcodeRegistry()
	first := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	created := r.Bind("012345", "HOT SAUCE", SectionStore, "GENERAL STORE", first)
	require.True(t, created)

	// A second bind for the same code is ignored; the original survives.
	created = r.Bind("012345", "SOMETHING ELSE", SectionDepot, "FROZEN", first.Add(time.Hour))
	assert.False(t, created)

	b, ok := r.Lookup("012345")
	require.True(t, ok)
	assert.Equal(t, "HOT SAUCE", b.ItemName)
	assert.Equal(t, SectionStore, b.Section)
	assert.Equal(t, "GENERAL STORE", b.Category)
	assert.Equal(t, first, b.CreatedAt)
}

func TestBarcodeRegistry_LookupMiss(t *testing.T) {
	r := NewBarcodeRegistry()

	_, ok := r.Lookup("nope")

	assert.False(t, ok)
	assert.Empty(t, r.Bindings)
}

func TestBarcodeRegistry_NormalizeNilMap(t *testing.T) {
	r := &BarcodeRegistry{}
	r.Normalize()
	assert.True(t, r.Bind("1", "X", SectionOther, TemporaryCategory, time.Now()))
}
