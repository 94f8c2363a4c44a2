package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HotOffer est une campagne promotionnelle limitée dans le temps,
// distincte des coupons (voir models.Coupon)
type HotOffer struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL        string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	DiscountLabel   string             `bson:"discount_label,omitempty" json:"discount_label,omitempty"`
	StartsAt        time.Time          `bson:"starts_at" json:"starts_at"`
	EndsAt          time.Time          `bson:"ends_at" json:"ends_at"`
	TimerEndsAt     *time.Time         `bson:"timer_ends_at,omitempty" json:"timer_ends_at,omitempty"`
	IsActive        bool               `bson:"is_active" json:"is_active"`
	ProductIDs      []string           `bson:"product_ids,omitempty" json:"product_ids,omitempty"`
	PageTitle       string             `bson:"page_title,omitempty" json:"page_title,omitempty"`
	PageDescription string             `bson:"page_description,omitempty" json:"page_description,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
