package models

// SiteSettings est un document unique répliqué dans le cache Redis.
// Mise à jour par remplacement complet (PUT), pas de patch partiel.
type SiteSettings struct {
	SiteName              string               `bson:"site_name" json:"site_name"`
	CurrencySymbol        string               `bson:"currency_symbol" json:"currency_symbol"`
	DeliveryChargeInside  float64              `bson:"delivery_charge_inside" json:"delivery_charge_inside"`
	DeliveryChargeOutside float64              `bson:"delivery_charge_outside" json:"delivery_charge_outside"`
	Address               string               `bson:"address,omitempty" json:"address,omitempty"`
	Phone                 string               `bson:"phone,omitempty" json:"phone,omitempty"`
	Email                 string               `bson:"email,omitempty" json:"email,omitempty"`
	WhatsApp              string               `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	BusinessHours         map[string]string    `bson:"business_hours,omitempty" json:"business_hours,omitempty"`
	SocialLinks           SocialLinks          `bson:"social_links" json:"social_links"`
	Appearance            AppearanceSettings   `bson:"appearance" json:"appearance"`
	MarketingModal        MarketingModalConfig `bson:"marketing_modal" json:"marketing_modal"`
}

type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	TikTok    string `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
}

type AppearanceSettings struct {
	ShowHotOffers   bool `bson:"show_hot_offers" json:"show_hot_offers"`
	ShowNewArrivals bool `bson:"show_new_arrivals" json:"show_new_arrivals"`
}

type MarketingModalConfig struct {
	Enabled            bool    `bson:"enabled" json:"enabled"`
	Title              string  `bson:"title,omitempty" json:"title,omitempty"`
	Description        string  `bson:"description,omitempty" json:"description,omitempty"`
	DiscountPercentage float64 `bson:"discount_percentage,omitempty" json:"discount_percentage,omitempty"`
	CouponCode         string  `bson:"coupon_code,omitempty" json:"coupon_code,omitempty"`
}

// DefaultSettings sert de document initial tant que l'admin n'a rien configuré
func DefaultSettings() SiteSettings {
	return SiteSettings{
		SiteName:              "BlackStone BD",
		CurrencySymbol:        "৳",
		DeliveryChargeInside:  60,
		DeliveryChargeOutside: 120,
		Appearance: AppearanceSettings{
			ShowHotOffers:   true,
			ShowNewArrivals: true,
		},
	}
}
