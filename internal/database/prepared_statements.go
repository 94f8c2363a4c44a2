package database

import (
	"log"
	"sync"

	"github.com/gocql/gocql"
)

const productColumns = `product_id, name, description, price, original_price, category, sub_category,
	image_urls, stock, stock_status, rating, review_count, sizes, colors,
	is_featured, is_new, is_deleted, created_at, updated_at`

var preparedOnce sync.Once

// InitPreparedStatements chauffe le cache de prepared statements de gocql
// pour le hot path produits. Les textes de requête doivent rester identiques
// à ceux des handlers : gocql réutilise le statement préparé par texte exact.
func InitPreparedStatements() {
	preparedOnce.Do(func() {
		session, err := GetProductsSession()
		if err != nil {
			log.Printf("⚠️ Impossible d'initialiser les prepared statements: %v", err)
			return
		}

		warmup := []struct {
			query string
			args  []interface{}
		}{
			{`SELECT ` + productColumns + ` FROM products`, nil},
			{`SELECT ` + productColumns + ` FROM products WHERE product_id = ?`, []interface{}{gocql.UUID{}}},
		}

		for _, w := range warmup {
			if err := session.Query(w.query, w.args...).Iter().Close(); err != nil {
				log.Printf("⚠️ Échec préparation statement: %v", err)
				return
			}
		}

		log.Println("✅ Prepared statements initialisés")
	})
}
