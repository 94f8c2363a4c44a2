package admin

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
)

//
// 🔴 GET /api/admin/customers — fiches clients avec compteurs d'achats
//
func GetAllCustomers(c *gin.Context) {
	ctx := context.Background()

	filter := bson.M{"role": bson.M{"$ne": "admin"}}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}
	if q := c.Query("q"); q != "" {
		filter["$or"] = []bson.M{
			{"name": bson.M{"$regex": q, "$options": "i"}},
			{"email": bson.M{"$regex": q, "$options": "i"}},
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit < 1 || limit > 200 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "join_date", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := database.MongoAuthDB.Collection("users").Find(ctx, filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customers"})
		return
	}

	customers := make([]models.User, 0)
	if err := cursor.All(ctx, &customers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode customers"})
		return
	}

	total, _ := database.MongoAuthDB.Collection("users").CountDocuments(ctx, filter)

	c.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"total":     total,
		"page":      page,
		"limit":     limit,
	})
}

//
// 🔴 PUT /api/admin/customers/:id/status — blocage / déblocage
//
func UpdateCustomerStatus(c *gin.Context) {
	customerID := c.Param("id")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	switch req.Status {
	case models.UserActive, models.UserBlocked, models.UserInactive:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown account status"})
		return
	}

	res, err := database.MongoAuthDB.Collection("users").UpdateOne(context.Background(),
		bson.M{"_id": customerID},
		bson.M{"$set": bson.M{"status": req.Status}})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}

	log.Printf("👤 Client %s → %s", customerID, req.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Customer status updated", "status": req.Status})
}
