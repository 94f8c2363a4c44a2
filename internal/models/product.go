package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts de stock (override manuel du compteur)
const (
	StockInStock    = "in-stock"
	StockOutOfStock = "out-of-stock"
	StockComingSoon = "coming-soon"
)

type Product struct {
	ID            gocql.UUID `json:"id" db:"product_id"`
	Name          string     `json:"name" db:"name"`
	Description   string     `json:"description" db:"description"`
	Price         float64    `json:"price" db:"price"`
	OriginalPrice *float64   `json:"original_price,omitempty" db:"original_price"`
	Category      string     `json:"category" db:"category"`
	SubCategory   string     `json:"sub_category,omitempty" db:"sub_category"`
	ImageURLs     []string   `json:"image_urls" db:"image_urls"`
	Stock         int        `json:"stock" db:"stock"`
	StockStatus   string     `json:"stock_status,omitempty" db:"stock_status"`
	Rating        float64    `json:"rating" db:"rating"`
	ReviewCount   int        `json:"review_count" db:"review_count"`
	Sizes         []string   `json:"sizes,omitempty" db:"sizes"`
	Colors        []string   `json:"colors,omitempty" db:"colors"`
	IsFeatured    bool       `json:"is_featured" db:"is_featured"`
	IsNew         bool       `json:"is_new" db:"is_new"`
	IsDeleted     bool       `json:"is_deleted" db:"is_deleted"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}

// IsHotDeal indique si le produit est en promo (prix barré strictement supérieur au prix actuel)
func (p Product) IsHotDeal() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price
}

// IsValidStockStatus vérifie l'appartenance à l'énumération ; vide = pas d'override
func IsValidStockStatus(s string) bool {
	switch s {
	case "", StockInStock, StockOutOfStock, StockComingSoon:
		return true
	}
	return false
}

// Available indique si le produit est achetable. L'override manuel prime
// quand il est posé ; sinon c'est le compteur de stock qui décide.
func (p Product) Available() bool {
	if p.IsDeleted {
		return false
	}
	switch p.StockStatus {
	case StockInStock:
		return true
	case StockOutOfStock, StockComingSoon:
		return false
	}
	return p.Stock > 0
}
