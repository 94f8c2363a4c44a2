package order

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackstone_back_end/internal/models"
)

//
// 🔵 GET /api/orders/user — historique du client connecté
//
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := ordersCollection().Find(context.Background(), bson.M{"user_id": userID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	orders := make([]models.Order, 0)
	if err := cursor.All(context.Background(), &orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

//
// 🔵 GET /api/orders/:id — détail, réservé au propriétaire (ou admin)
//
func GetOrderByID(c *gin.Context) {
	order, ok := loadOwnedOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order)
}

//
// 📱 GET /api/orders/:id/qr — QR code PNG pointant vers la page de suivi
//
func GetOrderTrackingQR(c *gin.Context) {
	order, ok := loadOwnedOrder(c)
	if !ok {
		return
	}

	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		frontend = "http://localhost:3000"
	}
	trackingURL := frontend + "/orders/" + order.ID.Hex()

	png, err := qrcode.Encode(trackingURL, qrcode.Medium, 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

// loadOwnedOrder charge la commande et vérifie que l'appelant y a droit
func loadOwnedOrder(c *gin.Context) (*models.Order, bool) {
	userID := c.GetString("user_id")
	role := c.GetString("role")

	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return nil, false
	}

	var order models.Order
	if err := ordersCollection().FindOne(context.Background(), bson.M{"_id": orderID}).Decode(&order); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return nil, false
	}

	if order.UserID != userID && role != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return nil, false
	}

	return &order, true
}
