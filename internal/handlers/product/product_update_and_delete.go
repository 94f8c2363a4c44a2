package product

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"go.mongodb.org/mongo-driver/bson"

	"blackstone_back_end/internal/cache"
	"blackstone_back_end/internal/catalog"
	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
	"blackstone_back_end/internal/services"
)

//
// 🟠 PUT /api/products/:id — remplacement complet (admin)
//
func UpdateProduct(c *gin.Context) {
	productUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.IsValidStockStatus(p.StockStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown stock status"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	existing, err := loadProduct(session, productUUID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	// PUT = objet complet ; l'identité et le drapeau corbeille sont préservés,
	// dernier écrivain gagnant pour tout le reste
	p.ID = productUUID
	p.IsDeleted = existing.IsDeleted
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()

	if err := insertProduct(session, p); err != nil {
		log.Printf("❌ Erreur mise à jour produit %s: %v", productUUID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	go services.IndexProduct(p)
	cache.InvalidateProducts(context.Background())

	c.JSON(http.StatusOK, p)
}

//
// 🗑️ DELETE /api/products/:id — corbeille (soft delete, admin)
//
func SoftDeleteProduct(c *gin.Context) {
	setDeletedFlag(c, true)
}

//
// ♻️ POST /api/products/:id/restore — restauration depuis la corbeille (admin)
//
func RestoreProduct(c *gin.Context) {
	setDeletedFlag(c, false)
}

// setDeletedFlag bascule le drapeau corbeille et réaligne le compteur
// de la catégorie ; les autres colonnes du produit ne bougent pas
func setDeletedFlag(c *gin.Context, deleted bool) {
	productUUID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	existing, err := loadProduct(session, productUUID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if existing.IsDeleted == deleted {
		// Déjà dans l'état demandé : le compteur de catégorie ne doit pas bouger
		c.JSON(http.StatusOK, gin.H{"message": "Product unchanged"})
		return
	}

	if err := session.Query(`UPDATE products SET is_deleted = ?, updated_at = ? WHERE product_id = ?`,
		deleted, time.Now(), productUUID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	ctx := context.Background()

	// ✅ Le compteur de la catégorie suit la visibilité boutique
	delta := 1
	if deleted {
		delta = -1
	}
	database.MongoCatalogDB.Collection("categories").
		UpdateOne(ctx, bson.M{"name": existing.Category}, bson.M{"$inc": bson.M{"product_count": delta}})

	cache.InvalidateProducts(ctx)

	if deleted {
		// Invisible en boutique → hors de l'index de recherche
		go services.RemoveProductFromIndex(productUUID.String())
		log.Printf("🗑️ Produit %s déplacé vers la corbeille", productUUID)
		c.JSON(http.StatusOK, gin.H{"message": "Product moved to trash"})
		return
	}

	if p, err := loadProduct(session, productUUID); err == nil {
		go services.IndexProduct(*p)
	}
	log.Printf("♻️ Produit %s restauré", productUUID)
	c.JSON(http.StatusOK, gin.H{"message": "Product restored"})
}

//
// 🔵 GET /api/products/trash — corbeille du back office (admin)
//
func GetTrashedProducts(c *gin.Context) {
	products, err := fetchAllProducts(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, catalog.TrashView(products))
}

// loadProduct lit un produit unique par ID
func loadProduct(session *gocql.Session, id gocql.UUID) (*models.Product, error) {
	iter := session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id).Iter()
	products, err := scanProducts(iter)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, gocql.ErrNotFound
	}
	return &products[0], nil
}
