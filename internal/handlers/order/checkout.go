package order

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blackstone_back_end/internal/cache"
	"blackstone_back_end/internal/checkout"
	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
	"blackstone_back_end/internal/utils"
)

func ordersCollection() *mongo.Collection {
	return database.MongoOrdersDB.Collection("orders")
}

//
// 💰 POST /api/orders/checkout — commande en contre-remboursement
//
func Checkout(c *gin.Context) {
	userID := c.GetString("user_id")
	email := c.GetString("email")

	var req struct {
		CustomerName string `json:"customer_name" binding:"required"`
		Phone        string `json:"phone" binding:"required"`
		Address      string `json:"address" binding:"required"`
		DeliveryZone string `json:"delivery_zone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Shipping details are incomplete", "details": err.Error()})
		return
	}

	ctx := context.Background()

	// 1️⃣ Panier depuis Redis
	raw, err := database.Redis.Get(ctx, "cart:"+userID).Result()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}
	var cartItems []models.CartItem
	if err := json.Unmarshal([]byte(raw), &cartItems); err != nil || len(cartItems) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	// 2️⃣ Relit prix et stock en direct, jamais les valeurs du panier
	orderItems := make([]models.OrderItem, 0, len(cartItems))
	pricedItems := make([]models.CartItem, 0, len(cartItems))
	for _, item := range cartItems {
		productUUID, err := gocql.ParseUUID(item.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product in cart: " + item.Name})
			return
		}

		var p models.Product
		if err := session.Query(`SELECT product_id, name, price, stock, stock_status, is_deleted, image_urls FROM products WHERE product_id = ?`,
			productUUID).Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.StockStatus, &p.IsDeleted, &p.ImageURLs); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Product no longer available: " + item.Name})
			return
		}
		if !p.Available() {
			c.JSON(http.StatusConflict, gin.H{"error": "Product no longer available: " + p.Name})
			return
		}
		if p.Stock < item.Quantity {
			c.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock for " + p.Name})
			return
		}

		oi := models.OrderItem{
			ProductID: item.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Color:     item.Color,
		}
		if len(p.ImageURLs) > 0 {
			oi.ImageURL = p.ImageURLs[0]
		}
		orderItems = append(orderItems, oi)
		pricedItems = append(pricedItems, models.CartItem{
			ProductID: item.ProductID, Price: p.Price, Quantity: item.Quantity,
		})
	}

	// 3️⃣ Devis côté serveur : sous-total + frais de zone, rien d'autre
	settings, err := cache.GetSettings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site settings"})
		return
	}

	quote, err := checkout.ComputeQuote(pricedItems, settings, req.DeliveryZone)
	if err != nil {
		if err == checkout.ErrEmptyCart {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown delivery zone"})
		return
	}

	now := time.Now()
	order := models.Order{
		UserID:        userID,
		CustomerName:  req.CustomerName,
		Email:         email,
		Phone:         req.Phone,
		Address:       req.Address,
		DeliveryZone:  req.DeliveryZone,
		Items:         orderItems,
		Subtotal:      quote.Subtotal,
		ShippingFee:   quote.ShippingFee,
		Total:         quote.Total,
		Status:        models.OrderPending,
		PaymentMethod: checkout.PaymentCashOnDelivery,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res, err := ordersCollection().InsertOne(ctx, order)
	if err != nil {
		log.Printf("❌ Erreur création commande: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}

	// 4️⃣ Décrémente le stock produit par produit
	for _, item := range orderItems {
		productUUID, _ := gocql.ParseUUID(item.ProductID)
		if err := session.Query(`UPDATE products SET stock = stock - ?, updated_at = ? WHERE product_id = ?`,
			item.Quantity, now, productUUID).Exec(); err != nil {
			log.Printf("⚠️ Erreur décrément stock %s: %v", item.ProductID, err)
		}
	}
	cache.InvalidateProducts(ctx)

	// 5️⃣ Vide le panier et met à jour les compteurs client
	database.Redis.Del(ctx, "cart:"+userID)
	database.MongoAuthDB.Collection("users").UpdateOne(ctx, bson.M{"_id": userID},
		bson.M{"$inc": bson.M{"total_orders": 1, "total_spent": quote.Total}})

	// 6️⃣ Email de confirmation en arrière-plan
	go utils.SendOrderConfirmationEmail(order)

	log.Printf("💰 Commande créée: %s (total: %.2f)", order.ID.Hex(), quote.Total)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order": order})
}

//
// 💰 POST /api/orders/quote — devis sans commande (affichage checkout)
//
func Quote(c *gin.Context) {
	userID := c.GetString("user_id")

	zone := c.Query("delivery_zone")
	if zone == "" {
		zone = checkout.ZoneInsideDhaka
	}

	ctx := context.Background()

	raw, err := database.Redis.Get(ctx, "cart:"+userID).Result()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil || len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty"})
		return
	}

	settings, err := cache.GetSettings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site settings"})
		return
	}

	quote, err := checkout.ComputeQuote(items, settings, zone)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown delivery zone"})
		return
	}

	c.JSON(http.StatusOK, quote)
}
