package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name           string             `bson:"name" json:"name"`
	Slug           string             `bson:"slug" json:"slug"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	ImageURL       string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	ProductCount   int                `bson:"product_count" json:"product_count"`
	ParentCategory *string            `bson:"parent_category,omitempty" json:"parent_category,omitempty"`
	SubCategories  []string           `bson:"sub_categories,omitempty" json:"sub_categories,omitempty"`
	IsHot          bool               `bson:"is_hot" json:"is_hot"`
	IsFeatured     bool               `bson:"is_featured" json:"is_featured"`
	CreatedAt      *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
