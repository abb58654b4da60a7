package order

import (
	"strings"
)

// FreeShippingThreshold is the subtotal (minor units) at which shipping is
// free regardless of destination.
const FreeShippingThreshold = 50000

// Shipping rates by destination tier, minor units.
const (
	ShippingRateMetro    = 2500
	ShippingRateCentral  = 3500
	ShippingRateInterior = 4500
)

// CalculateShipping returns the flat shipping cost for a subtotal and a
// destination province. Province matching is case-insensitive.
func CalculateShipping(subtotal int64, province string) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}

	switch strings.ToUpper(strings.TrimSpace(province)) {
	case "BUENOS AIRES", "CAPITAL FEDERAL", "CABA":
		return ShippingRateMetro
	case "CORDOBA", "SANTA FE", "MENDOZA":
		return ShippingRateCentral
	default:
		return ShippingRateInterior
	}
}
