package coupons

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blackstone_back_end/internal/models"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func validCoupon() models.Coupon {
	return models.Coupon{
		Code:      "SAVE10",
		Type:      models.CouponPercentage,
		Value:     10,
		MinAmount: 500,
		MaxUses:   100,
		UsedCount: 3,
		ExpiresAt: now.Add(30 * 24 * time.Hour),
		IsActive:  true,
	}
}

func TestValidatePercentage(t *testing.T) {
	v := Validate(validCoupon(), 2000, now)
	assert.True(t, v.IsValid)
	assert.Equal(t, 200.0, v.Discount)
	assert.Equal(t, models.CouponPercentage, v.Type)
	assert.Equal(t, "SAVE10", v.Code)
}

func TestValidateFixedCappedAtCartTotal(t *testing.T) {
	c := validCoupon()
	c.Type = models.CouponFixed
	c.Value = 300
	c.MinAmount = 0

	v := Validate(c, 1000, now)
	assert.True(t, v.IsValid)
	assert.Equal(t, 300.0, v.Discount)

	v = Validate(c, 150, now)
	assert.True(t, v.IsValid)
	assert.Equal(t, 150.0, v.Discount, "remise fixe plafonnée au total du panier")
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Coupon)
		total  float64
	}{
		{"inactif", func(c *models.Coupon) { c.IsActive = false }, 2000},
		{"expiré", func(c *models.Coupon) { c.ExpiresAt = now.Add(-time.Hour) }, 2000},
		{"limite atteinte", func(c *models.Coupon) { c.UsedCount = c.MaxUses }, 2000},
		{"sous le minimum", func(c *models.Coupon) {}, 499},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCoupon()
			tc.mutate(&c)
			v := Validate(c, tc.total, now)
			assert.False(t, v.IsValid)
			assert.NotEmpty(t, v.ErrorMessage)
			assert.Zero(t, v.Discount)
		})
	}
}

func TestValidateUnlimitedUses(t *testing.T) {
	c := validCoupon()
	c.MaxUses = 0 // 0 = illimité
	c.UsedCount = 99999

	v := Validate(c, 2000, now)
	assert.True(t, v.IsValid)
}
