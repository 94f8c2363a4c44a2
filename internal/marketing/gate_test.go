package marketing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"blackstone_back_end/internal/models"
)

func enabledModal() models.MarketingModalConfig {
	return models.MarketingModalConfig{
		Enabled:            true,
		Title:              "Get 10% off",
		DiscountPercentage: 10,
		CouponCode:         "WELCOME10",
	}
}

func TestShouldDisplayOnAllowedRoutes(t *testing.T) {
	cfg := enabledModal()

	cases := []struct {
		path string
		want bool
	}{
		{"/", true},
		{"", true},
		{"/products", true},
		{"/products/blackstone-watch", true},
		{"/categories", true},
		{"/categories/watches", true},
		{"/checkout", false},
		{"/cart", false},
		{"/productsale", false}, // préfixe proche mais hors liste blanche
		{"/admin", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ShouldDisplay(cfg, tc.path, false), "path %q", tc.path)
	}
}

func TestShouldDisplayNeverWhenSubscribed(t *testing.T) {
	cfg := enabledModal()
	for _, path := range []string{"/", "/products", "/categories/watches"} {
		assert.False(t, ShouldDisplay(cfg, path, true), "déjà abonné → jamais de modale (%s)", path)
	}
}

func TestShouldDisplayNeverWhenDisabled(t *testing.T) {
	cfg := enabledModal()
	cfg.Enabled = false
	assert.False(t, ShouldDisplay(cfg, "/products", false))
}

func TestDisplayDelayIsFixed(t *testing.T) {
	assert.Positive(t, DisplayDelay)
}
