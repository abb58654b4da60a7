package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateShipping(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		province string
		want     int64
	}{
		{"free at threshold", 50000, "Tierra del Fuego", 0},
		{"free above threshold", 80000, "Buenos Aires", 0},
		{"metro rate", 3000, "Buenos Aires", 2500},
		{"metro caba", 3000, "CABA", 2500},
		{"metro capital federal", 3000, "Capital Federal", 2500},
		{"central cordoba", 3000, "Cordoba", 3500},
		{"central santa fe", 3000, "santa fe", 3500},
		{"central mendoza", 3000, "MENDOZA", 3500},
		{"interior fallback", 3000, "Chubut", 4500},
		{"interior unknown", 3000, "", 4500},
		{"case and whitespace insensitive", 3000, "  buenos aires  ", 2500},
		{"just below threshold", 49999, "Salta", 4500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateShipping(tt.subtotal, tt.province))
		})
	}
}

func TestFormatOrderNumber(t *testing.T) {
	day := time.Date(2026, 1, 5, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "ORD-20260105-0001", FormatOrderNumber(day, 1))
	assert.Equal(t, "ORD-20260105-0042", FormatOrderNumber(day, 42))
	assert.Equal(t, "ORD-20260105-12345", FormatOrderNumber(day, 12345))

	// Local times are normalized to the UTC day.
	buenosAires := time.FixedZone("ART", -3*60*60)
	late := time.Date(2026, 1, 5, 22, 30, 0, 0, buenosAires)
	assert.Equal(t, "ORD-20260106-0001", FormatOrderNumber(late, 1))
}
