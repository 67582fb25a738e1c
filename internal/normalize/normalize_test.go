package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItemName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"lime wedges", "LIME WEDGES"},
		{"  hot   sauce  ", "HOT SAUCE"},
		{"EGGS", "EGGS"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ItemName(tt.in))
	}
}

func TestBarcode(t *testing.T) {
	assert.Equal(t, "012345", Barcode(" 012345 "))
	assert.Equal(t, "", Barcode("  "))
}
