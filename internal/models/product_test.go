package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHotDeal(t *testing.T) {
	higher := 2500.0
	equal := 1800.0
	lower := 1500.0

	assert.False(t, Product{Price: 1800}.IsHotDeal(), "pas de prix barré")
	assert.True(t, Product{Price: 1800, OriginalPrice: &higher}.IsHotDeal())
	assert.False(t, Product{Price: 1800, OriginalPrice: &equal}.IsHotDeal(), "prix barré égal")
	assert.False(t, Product{Price: 1800, OriginalPrice: &lower}.IsHotDeal(), "prix barré inférieur")
}

func TestAvailable(t *testing.T) {
	// Sans override, le compteur de stock décide
	assert.True(t, Product{Stock: 10}.Available())
	assert.False(t, Product{Stock: 0}.Available())

	// L'override manuel prime sur le compteur
	assert.True(t, Product{Stock: 0, StockStatus: StockInStock}.Available())
	assert.False(t, Product{Stock: 10, StockStatus: StockOutOfStock}.Available())
	assert.False(t, Product{Stock: 10, StockStatus: StockComingSoon}.Available())

	// Corbeille = jamais achetable
	assert.False(t, Product{Stock: 10, IsDeleted: true}.Available())
	assert.False(t, Product{Stock: 10, StockStatus: StockInStock, IsDeleted: true}.Available())
}

func TestIsValidStockStatus(t *testing.T) {
	for _, s := range []string{"", StockInStock, StockOutOfStock, StockComingSoon} {
		assert.True(t, IsValidStockStatus(s), s)
	}
	assert.False(t, IsValidStockStatus("in_stock"))
	assert.False(t, IsValidStockStatus("available"))
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "৳", s.CurrencySymbol)
	assert.Equal(t, 60.0, s.DeliveryChargeInside)
	assert.Equal(t, 120.0, s.DeliveryChargeOutside)
	assert.True(t, s.Appearance.ShowHotOffers)
	assert.True(t, s.Appearance.ShowNewArrivals)
}
