package product

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blackstone_back_end/internal/catalog"
	"blackstone_back_end/internal/services"
)

//
// 🔎 GET /api/products/search?q=…
//
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	// 1️⃣ Elasticsearch en priorité
	results, err := services.SearchProducts(query)
	if err == nil && len(results) > 0 {
		ctx := context.Background()
		visible := make([]map[string]interface{}, 0, len(results))
		for _, hit := range results {
			// Les produits en corbeille ne sortent jamais en boutique
			if hit["is_deleted"] == true {
				continue
			}
			// URLs signées MinIO pour chaque résultat
			if urls, ok := hit["image_urls"].([]interface{}); ok {
				signed := []string{}
				for _, u := range urls {
					if str, ok := u.(string); ok && str != "" {
						if signedURL, err := services.GenerateSignedURL(ctx, str, 24*time.Hour); err == nil {
							signed = append(signed, signedURL)
						}
					}
				}
				hit["image_urls"] = signed
			}
			visible = append(visible, hit)
		}
		c.JSON(http.StatusOK, visible)
		return
	}

	// 2️⃣ Repli : filtrage en mémoire sur la collection complète
	products, err := fetchAllProducts(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
		return
	}

	matched := catalog.Filter(catalog.ActiveView(products), catalog.Criteria{Query: query})
	c.JSON(http.StatusOK, matched)
}
