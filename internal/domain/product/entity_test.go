package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_UnitDiscount(t *testing.T) {
	tests := []struct {
		name    string
		price   int64
		percent float64
		want    int64
	}{
		{"no discount", 1000, 0, 0},
		{"ten percent", 1000, 10, 100},
		{"rounds half up", 999, 10, 100},
		{"rounds down", 1004, 10, 100},
		{"full discount", 1000, 100, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Product{BasePrice: tt.price, DiscountPercent: tt.percent}
			assert.Equal(t, tt.want, p.UnitDiscount())
			assert.Equal(t, tt.price-tt.want, p.FinalPrice())
		})
	}
}

func TestProduct_OnSale(t *testing.T) {
	assert.False(t, (&Product{DiscountPercent: 0}).OnSale())
	assert.True(t, (&Product{DiscountPercent: 5}).OnSale())
}

func TestProduct_HasStock(t *testing.T) {
	p := &Product{Stock: 3}
	assert.True(t, p.HasStock(3))
	assert.False(t, p.HasStock(4))
	assert.True(t, p.HasStock(0))
}

func TestNewProduct(t *testing.T) {
	p := NewProduct("SKU-1", "Remera", "desc", 1000, 10, 5, 2, nil)
	assert.True(t, p.Active)
	assert.False(t, p.Featured)
	assert.Equal(t, uint(2), p.CategoryID)
	assert.Nil(t, p.BrandID)
}
