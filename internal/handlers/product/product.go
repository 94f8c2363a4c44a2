package product

import (
	"context"
	"net/http"
	"strconv"
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

const productColumns = `product_id, name, description, price, original_price, category, sub_category,
	image_urls, stock, stock_status, rating, review_count, sizes, colors,
	is_featured, is_new, is_deleted, created_at, updated_at`

// scanProducts consomme un iterateur ScyllaDB colonne par colonne
func scanProducts(iter *gocql.Iter) ([]models.Product, error) {
	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.Category,
		&p.SubCategory, &p.ImageURLs, &p.Stock, &p.StockStatus, &p.Rating, &p.ReviewCount,
		&p.Sizes, &p.Colors, &p.IsFeatured, &p.IsNew, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // Reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

// fetchAllProducts lit la collection complète (cache Redis, sinon ScyllaDB)
func fetchAllProducts(ctx context.Context) ([]models.Product, error) {
	if cached, ok := cache.GetCachedProducts(ctx); ok {
		return cached, nil
	}

	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).Iter()
	products, err := scanProducts(iter)
	if err != nil {
		return nil, err
	}

	cache.StoreProducts(ctx, products)
	return products, nil
}

// parseCriteria construit les filtres catalogue depuis la query string
func parseCriteria(c *gin.Context) catalog.Criteria {
	crit := catalog.Criteria{
		Query:       c.Query("q"),
		Category:    c.Query("category"),
		SubCategory: c.Query("sub_category"),
		HotOnly:     c.Query("hot") == "true",
	}
	if v, err := strconv.ParseFloat(c.Query("min_price"), 64); err == nil {
		crit.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("max_price"), 64); err == nil {
		crit.MaxPrice = &v
	}
	return crit
}

//
// 🔵 GET /api/products — vue boutique, filtres en conjonction
//
func GetAllProducts(c *gin.Context) {
	ctx := context.Background()

	products, err := fetchAllProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	active := catalog.ActiveView(products)
	filtered := catalog.Filter(active, parseCriteria(c))

	c.JSON(http.StatusOK, filtered)
}

//
// 🔵 GET /api/products/hot — promos uniquement (prix barré > prix)
//
func GetHotProducts(c *gin.Context) {
	ctx := context.Background()

	products, err := fetchAllProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, catalog.HotProducts(catalog.ActiveView(products)))
}

//
// 🔵 GET /api/products/featured
//
func GetFeaturedProducts(c *gin.Context) {
	ctx := context.Background()

	products, err := fetchAllProducts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	featured := make([]models.Product, 0)
	for _, p := range catalog.ActiveView(products) {
		if p.IsFeatured {
			featured = append(featured, p)
		}
	}

	c.JSON(http.StatusOK, featured)
}

//
// 🔵 GET /api/products/:id
//
func GetProductByID(c *gin.Context) {
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

	iter := session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, productUUID).Iter()
	products, err := scanProducts(iter)
	if err != nil || len(products) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	p := products[0]
	if p.IsDeleted {
		// Un produit à la corbeille n'est pas visible en boutique
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, p)
}

//
// 🟢 POST /api/products — création (admin)
//
func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if p.Name == "" || p.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fields 'name' and 'category' are required"})
		return
	}
	if !models.IsValidStockStatus(p.StockStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown stock status"})
		return
	}

	ctx := context.Background()

	// ✅ Vérifie que la catégorie existe
	count, err := database.MongoCatalogDB.Collection("categories").
		CountDocuments(ctx, bson.M{"name": p.Category})
	if err != nil || count == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown category"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	p.ID = gocql.TimeUUID()
	p.IsDeleted = false
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := insertProduct(session, p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	// ✅ Compteur de produits de la catégorie
	database.MongoCatalogDB.Collection("categories").
		UpdateOne(ctx, bson.M{"name": p.Category}, bson.M{"$inc": bson.M{"product_count": 1}})

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)

	cache.InvalidateProducts(ctx)

	c.JSON(http.StatusCreated, p)
}

// insertProduct écrit le produit (INSERT = upsert côté Scylla, utilisé
// aussi par le remplacement complet)
func insertProduct(session *gocql.Session, p models.Product) error {
	query := `INSERT INTO products (` + productColumns + `)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	return session.Query(query,
		p.ID, p.Name, p.Description, p.Price, p.OriginalPrice, p.Category, p.SubCategory,
		p.ImageURLs, p.Stock, p.StockStatus, p.Rating, p.ReviewCount, p.Sizes, p.Colors,
		p.IsFeatured, p.IsNew, p.IsDeleted, p.CreatedAt, p.UpdatedAt,
	).Exec()
}
