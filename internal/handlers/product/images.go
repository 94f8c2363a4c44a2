package product

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"blackstone_back_end/internal/cache"
	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/services"
)

//
// 🪣 POST /api/admin/products/:id/images — upload d'une image produit (multipart)
//
func UploadProductImage(c *gin.Context) {
	productID := c.Param("id")

	productUUID, err := gocql.ParseUUID(productID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	product, err := loadProduct(session, productUUID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	// 5 Mo max, comme côté front
	if fileHeader.Size > 5*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be smaller than 5MB"})
		return
	}

	ctx := context.Background()

	objectName, err := services.UploadImage(ctx, "products", fileHeader)
	if err != nil {
		log.Printf("❌ Erreur upload MinIO: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	product.ImageURLs = append(product.ImageURLs, objectName)
	product.UpdatedAt = time.Now()

	if err := session.Query(`UPDATE products SET image_urls = ?, updated_at = ? WHERE product_id = ?`,
		product.ImageURLs, product.UpdatedAt, productUUID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach image"})
		return
	}

	cache.InvalidateProducts(ctx)

	signedURL, err := services.GenerateSignedURL(ctx, objectName, 24*time.Hour)
	if err != nil {
		signedURL = objectName
	}

	log.Printf("🪣 Image ajoutée au produit %s: %s", productID, objectName)
	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded", "object_name": objectName, "url": signedURL})
}
