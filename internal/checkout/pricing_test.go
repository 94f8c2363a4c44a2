package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackstone_back_end/internal/models"
)

func testSettings() models.SiteSettings {
	return models.SiteSettings{
		DeliveryChargeInside:  60,
		DeliveryChargeOutside: 120,
	}
}

func TestSubtotal(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "a", Price: 1250, Quantity: 1},
		{ProductID: "b", Price: 1800, Quantity: 1},
	}
	assert.Equal(t, 3050.0, Subtotal(items))

	items[1].Quantity = 3
	assert.Equal(t, 1250.0+3*1800.0, Subtotal(items))

	assert.Equal(t, 0.0, Subtotal(nil))
}

func TestShippingFeePerZone(t *testing.T) {
	settings := testSettings()

	inside, err := ShippingFee(settings, ZoneInsideDhaka)
	require.NoError(t, err)
	assert.Equal(t, 60.0, inside)

	outside, err := ShippingFee(settings, ZoneOutsideDhaka)
	require.NoError(t, err)
	assert.Equal(t, 120.0, outside)

	_, err = ShippingFee(settings, "by-air")
	assert.Error(t, err)
}

func TestComputeQuoteExampleFromCatalog(t *testing.T) {
	// panier 1250 + 1800, zone inside → 3050 + 60 = 3110
	items := []models.CartItem{
		{ProductID: "a", Price: 1250, Quantity: 1},
		{ProductID: "b", Price: 1800, Quantity: 1},
	}

	quote, err := ComputeQuote(items, testSettings(), ZoneInsideDhaka)
	require.NoError(t, err)
	assert.Equal(t, 3050.0, quote.Subtotal)
	assert.Equal(t, 60.0, quote.ShippingFee)
	assert.Equal(t, 3110.0, quote.Total)
}

func TestComputeQuoteTotalIsSubtotalPlusExactlyOneZoneFee(t *testing.T) {
	items := []models.CartItem{{ProductID: "a", Price: 999, Quantity: 2}}
	settings := testSettings()

	for _, zone := range []string{ZoneInsideDhaka, ZoneOutsideDhaka} {
		quote, err := ComputeQuote(items, settings, zone)
		require.NoError(t, err)
		fee, _ := ShippingFee(settings, zone)
		assert.Equal(t, quote.Subtotal+fee, quote.Total)
	}
}

func TestComputeQuoteEmptyCartBlocked(t *testing.T) {
	quote, err := ComputeQuote(nil, testSettings(), ZoneInsideDhaka)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, Quote{}, quote, "panier vide → tout à zéro")

	quote, err = ComputeQuote([]models.CartItem{}, testSettings(), ZoneOutsideDhaka)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0.0, quote.Total)
}

func TestComputeQuoteUnknownZone(t *testing.T) {
	items := []models.CartItem{{ProductID: "a", Price: 100, Quantity: 1}}
	_, err := ComputeQuote(items, testSettings(), "nowhere")
	assert.Error(t, err)
}
