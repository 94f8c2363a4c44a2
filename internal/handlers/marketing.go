package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blackstone_back_end/internal/cache"
	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/marketing"
	"blackstone_back_end/internal/models"
	"blackstone_back_end/internal/utils"
)

func subscribersCollection() *mongo.Collection {
	return database.MongoContentDB.Collection("subscribers")
}

//
// 📣 GET /api/marketing/modal?path=/products&email=…
// Le front interroge avant d'afficher la modale promotionnelle.
//
func GetMarketingModal(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		path = "/"
	}

	// Drapeau détenu par le client (local storage), transmis tel quel.
	// Déjà abonné = jamais de modale, sans même charger les réglages.
	if c.Query("subscribed") == "true" {
		c.JSON(http.StatusOK, gin.H{"display": false})
		return
	}

	ctx := context.Background()

	settings, err := cache.GetSettings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	// Filet côté serveur quand le client fournit aussi son email
	subscribed := false
	if email := strings.ToLower(strings.TrimSpace(c.Query("email"))); email != "" {
		count, err := subscribersCollection().CountDocuments(ctx, bson.M{"email": email})
		if err == nil && count > 0 {
			subscribed = true
		}
	}

	if !marketing.ShouldDisplay(settings.MarketingModal, path, subscribed) {
		c.JSON(http.StatusOK, gin.H{"display": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"display":  true,
		"delay_ms": marketing.DisplayDelay.Milliseconds(),
		"modal":    settings.MarketingModal,
	})
}

//
// 📣 POST /api/marketing/subscribe — idempotent par email
//
func Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email is required"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx := context.Background()

	settings, err := cache.GetSettings(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	// Déjà inscrit : renvoie le même coupon sans créer de doublon
	var existing models.Subscriber
	err = subscribersCollection().FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Already subscribed",
			"coupon_code": existing.CouponCode,
		})
		return
	}
	if err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	sub := models.Subscriber{
		Email:        email,
		CouponCode:   settings.MarketingModal.CouponCode,
		SubscribedAt: time.Now(),
	}
	if _, err := subscribersCollection().InsertOne(ctx, sub); err != nil {
		log.Printf("❌ Erreur inscription newsletter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}

	// 📤 Envoi du code promo en arrière-plan
	go utils.SendSubscriptionEmail(email, settings.MarketingModal.CouponCode, settings.MarketingModal.DiscountPercentage)

	log.Printf("📣 Nouvel abonné: %s", email)
	c.JSON(http.StatusCreated, gin.H{
		"message":     "Subscribed",
		"coupon_code": sub.CouponCode,
	})
}
