package checkout

import (
	"errors"
	"fmt"

	"blackstone_back_end/internal/models"
)

// Zones de livraison — deux tarifs forfaitaires configurés dans les réglages du site
const (
	ZoneInsideDhaka  = "inside_dhaka"
	ZoneOutsideDhaka = "outside_dhaka"
)

// Seul mode de paiement supporté
const PaymentCashOnDelivery = "cash_on_delivery"

var ErrEmptyCart = errors.New("le panier est vide")

// Quote est le chiffrage affiché au client et persisté tel quel dans la commande
type Quote struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shipping_fee"`
	Total       float64 `json:"total"`
}

// Subtotal calcule Σ(prix unitaire × quantité)
func Subtotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ShippingFee renvoie le forfait de la zone choisie — forfaitaire,
// ni au poids ni à l'article
func ShippingFee(settings models.SiteSettings, zone string) (float64, error) {
	switch zone {
	case ZoneInsideDhaka:
		return settings.DeliveryChargeInside, nil
	case ZoneOutsideDhaka:
		return settings.DeliveryChargeOutside, nil
	default:
		return 0, fmt.Errorf("zone de livraison inconnue: %q", zone)
	}
}

// ComputeQuote chiffre le panier : sous-total + forfait de zone = total.
// Panier vide → chiffrage à zéro et ErrEmptyCart, le checkout est bloqué en amont.
// Aucun coupon n'est déduit ici : le total persisté est toujours
// sous-total + forfait.
func ComputeQuote(items []models.CartItem, settings models.SiteSettings, zone string) (Quote, error) {
	if len(items) == 0 {
		return Quote{}, ErrEmptyCart
	}

	fee, err := ShippingFee(settings, zone)
	if err != nil {
		return Quote{}, err
	}

	subtotal := Subtotal(items)
	return Quote{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal + fee,
	}, nil
}
