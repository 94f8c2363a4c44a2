package coupons

import (
	"fmt"
	"time"

	"blackstone_back_end/internal/models"
)

// Validate contrôle un coupon contre un total de panier et calcule la
// remise qui s'appliquerait. Le coupon est validé et affiché côté
// boutique mais jamais déduit du total de commande : les deux systèmes
// sont volontairement découplés.
func Validate(coupon models.Coupon, cartTotal float64, now time.Time) models.CouponValidation {
	if !coupon.IsActive {
		return invalid("This coupon is no longer active")
	}

	if now.After(coupon.ExpiresAt) {
		return invalid("This coupon has expired")
	}

	if coupon.MaxUses > 0 && coupon.UsedCount >= coupon.MaxUses {
		return invalid("This coupon has reached its usage limit")
	}

	if cartTotal < coupon.MinAmount {
		return invalid(fmt.Sprintf("Minimum order amount is %.2f", coupon.MinAmount))
	}

	return models.CouponValidation{
		IsValid:  true,
		Discount: ComputeDiscount(coupon, cartTotal),
		Type:     coupon.Type,
		Code:     coupon.Code,
	}
}

// ComputeDiscount calcule la remise théorique d'un coupon déjà validé
func ComputeDiscount(coupon models.Coupon, cartTotal float64) float64 {
	switch coupon.Type {
	case models.CouponPercentage:
		return cartTotal * (coupon.Value / 100)
	case models.CouponFixed:
		// jamais plus que le panier lui-même
		if coupon.Value > cartTotal {
			return cartTotal
		}
		return coupon.Value
	}
	return 0
}

func invalid(msg string) models.CouponValidation {
	return models.CouponValidation{IsValid: false, ErrorMessage: msg}
}
