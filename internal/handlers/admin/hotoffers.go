package admin

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
)

func hotOffersCollection() *mongo.Collection {
	return database.MongoContentDB.Collection("hot_offers")
}

//
// 🔥 GET /api/hot-offers — campagnes actives côté boutique
//
func GetActiveHotOffers(c *gin.Context) {
	now := time.Now()
	filter := bson.M{
		"is_active": true,
		"starts_at": bson.M{"$lte": now},
		"ends_at":   bson.M{"$gte": now},
	}

	opts := options.Find().SetSort(bson.D{{Key: "ends_at", Value: 1}})
	cursor, err := hotOffersCollection().Find(context.Background(), filter, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hot offers"})
		return
	}

	offers := make([]models.HotOffer, 0)
	if err := cursor.All(context.Background(), &offers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode hot offers"})
		return
	}

	c.JSON(http.StatusOK, offers)
}

//
// 🔴 GET /api/admin/hot-offers — toutes les campagnes, actives ou non
//
func GetAllHotOffers(c *gin.Context) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := hotOffersCollection().Find(context.Background(), bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hot offers"})
		return
	}

	offers := make([]models.HotOffer, 0)
	if err := cursor.All(context.Background(), &offers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode hot offers"})
		return
	}

	c.JSON(http.StatusOK, offers)
}

//
// 🔴 POST /api/admin/hot-offers
//
func CreateHotOffer(c *gin.Context) {
	var offer models.HotOffer
	if err := c.ShouldBindJSON(&offer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hot offer", "details": err.Error()})
		return
	}

	if offer.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}
	if !offer.EndsAt.After(offer.StartsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ends_at must be after starts_at"})
		return
	}

	offer.ID = primitive.NewObjectID()
	offer.CreatedAt = time.Now()
	offer.UpdatedAt = offer.CreatedAt

	if _, err := hotOffersCollection().InsertOne(context.Background(), offer); err != nil {
		log.Printf("❌ Erreur création offre: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create hot offer"})
		return
	}

	log.Printf("🔥 Offre créée: %s", offer.Title)
	c.JSON(http.StatusCreated, gin.H{"message": "Hot offer created", "offer": offer})
}

//
// 🔴 PUT /api/admin/hot-offers/:id — remplacement complet
//
func UpdateHotOffer(c *gin.Context) {
	offerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	var offer models.HotOffer
	if err := c.ShouldBindJSON(&offer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid hot offer", "details": err.Error()})
		return
	}
	if !offer.EndsAt.After(offer.StartsAt) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ends_at must be after starts_at"})
		return
	}

	offer.ID = offerID
	offer.UpdatedAt = time.Now()

	res, err := hotOffersCollection().ReplaceOne(context.Background(), bson.M{"_id": offerID}, offer)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hot offer"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hot offer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hot offer updated", "offer": offer})
}

//
// 🔴 DELETE /api/admin/hot-offers/:id — suppression définitive (pas de corbeille)
//
func DeleteHotOffer(c *gin.Context) {
	offerID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	res, err := hotOffersCollection().DeleteOne(context.Background(), bson.M{"_id": offerID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hot offer"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hot offer not found"})
		return
	}

	log.Printf("🗑️ Offre supprimée: %s", offerID.Hex())
	c.JSON(http.StatusOK, gin.H{"message": "Hot offer deleted"})
}
