package product

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackstone_back_end/internal/cache"
	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
)

//
// ⭐ POST /api/products/:id/reviews — avis client (authentifié)
//
func CreateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("id")

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment" binding:"max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review data", "details": err.Error()})
		return
	}

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

	if _, err := loadProduct(session, productUUID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	ctx := context.Background()

	// Nom affiché depuis le compte
	var user models.User
	userName := "Customer"
	if err := database.MongoAuthDB.Collection("users").
		FindOne(ctx, bson.M{"_id": userID}).Decode(&user); err == nil && user.Name != "" {
		userName = user.Name
	}

	review := models.Review{
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if _, err := database.MongoContentDB.Collection("reviews").InsertOne(ctx, review); err != nil {
		log.Printf("❌ Erreur création avis: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	// ✅ Recalcule note moyenne + compteur sur le produit
	go recomputeProductRating(productUUID, productID)

	log.Printf("⭐ Avis créé pour produit %s (note: %d/5)", productID, req.Rating)
	c.JSON(http.StatusCreated, gin.H{"message": "Review created", "review": review})
}

//
// 🔵 GET /api/products/:id/reviews
//
func GetProductReviews(c *gin.Context) {
	productID := c.Param("id")
	ctx := context.Background()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := database.MongoContentDB.Collection("reviews").
		Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	reviews := make([]models.Review, 0)
	if err := cursor.All(ctx, &reviews); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode reviews"})
		return
	}

	var totalRating int
	for _, r := range reviews {
		totalRating += r.Rating
	}
	var averageRating float64
	if len(reviews) > 0 {
		averageRating = float64(totalRating) / float64(len(reviews))
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":        reviews,
		"total_reviews":  len(reviews),
		"average_rating": averageRating,
	})
}

// recomputeProductRating réaligne rating et review_count après chaque avis
func recomputeProductRating(productUUID gocql.UUID, productID string) {
	ctx := context.Background()

	cursor, err := database.MongoContentDB.Collection("reviews").Find(ctx, bson.M{"product_id": productID})
	if err != nil {
		log.Printf("⚠️ Erreur lecture avis pour recalcul: %v", err)
		return
	}

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return
	}

	var total int
	for _, r := range reviews {
		total += r.Rating
	}
	var average float64
	if len(reviews) > 0 {
		average = float64(total) / float64(len(reviews))
	}

	session, err := database.GetProductsSession()
	if err != nil {
		return
	}

	if err := session.Query(`UPDATE products SET rating = ?, review_count = ?, updated_at = ? WHERE product_id = ?`,
		average, len(reviews), time.Now(), productUUID).Exec(); err != nil {
		log.Printf("⚠️ Erreur mise à jour note produit %s: %v", productID, err)
		return
	}

	cache.InvalidateProducts(ctx)
}
