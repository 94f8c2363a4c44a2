package user

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
)

const cartTTL = 7 * 24 * time.Hour

func cartKey(userID string) string {
	return "cart:" + userID
}

func loadCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	raw, err := database.Redis.Get(ctx, cartKey(userID)).Result()
	if err != nil {
		// Clé absente = panier vide
		return []models.CartItem{}, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []models.CartItem{}, nil
	}
	return items, nil
}

func saveCart(ctx context.Context, userID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, cartKey(userID), data, cartTTL).Err()
}

// sameVariant identifie une ligne de panier : produit + taille + couleur
func sameVariant(a, b models.CartItem) bool {
	return a.ProductID == b.ProductID && a.Size == b.Size && a.Color == b.Color
}

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := context.Background()

	items, err := loadCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	var subtotal float64
	var count int
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
		count += it.Quantity
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "subtotal": subtotal, "item_count": count})
}

//
// 🛒 POST /api/cart — ajoute un article (prix relu côté serveur)
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required,min=1"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item", "details": err.Error()})
		return
	}

	productUUID, err := gocql.ParseUUID(req.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	// ✅ Le prix vient toujours du catalogue, jamais du client
	var p models.Product
	if err := session.Query(`SELECT product_id, name, price, stock, stock_status, is_deleted, image_urls FROM products WHERE product_id = ?`,
		productUUID).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.StockStatus, &p.IsDeleted, &p.ImageURLs); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if p.IsDeleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	if !p.Available() {
		c.JSON(http.StatusConflict, gin.H{"error": "Product is out of stock"})
		return
	}

	ctx := context.Background()
	items, err := loadCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	newItem := models.CartItem{
		ProductID: req.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
	}
	if len(p.ImageURLs) > 0 {
		newItem.ImageURL = p.ImageURLs[0]
	}

	merged := false
	for i := range items {
		if sameVariant(items[i], newItem) {
			items[i].Quantity += req.Quantity
			items[i].Price = p.Price
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, newItem)
	}

	if err := saveCart(ctx, userID, items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "items": items})
}

//
// 🛒 PUT /api/cart — change la quantité d'une ligne (0 = suppression)
//
func UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"min=0"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart update"})
		return
	}

	ctx := context.Background()
	items, err := loadCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	target := models.CartItem{ProductID: req.ProductID, Size: req.Size, Color: req.Color}
	updated := make([]models.CartItem, 0, len(items))
	found := false
	for _, it := range items {
		if sameVariant(it, target) {
			found = true
			if req.Quantity > 0 {
				it.Quantity = req.Quantity
				updated = append(updated, it)
			}
			continue
		}
		updated = append(updated, it)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
		return
	}

	if err := saveCart(ctx, userID, updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated", "items": updated})
}

//
// 🛒 DELETE /api/cart/:product_id
//
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("product_id")
	target := models.CartItem{
		ProductID: productID,
		Size:      c.Query("size"),
		Color:     c.Query("color"),
	}

	ctx := context.Background()
	items, err := loadCart(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
		return
	}

	updated := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if sameVariant(it, target) {
			continue
		}
		updated = append(updated, it)
	}

	if err := saveCart(ctx, userID, updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed", "items": updated})
}

//
// 🛒 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	if err := database.Redis.Del(context.Background(), cartKey(userID)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
