package admin

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"blackstone_back_end/internal/cache"
	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
)

//
// 🔵 GET /api/settings — lecture publique (cache Redis)
//
func GetSettings(c *gin.Context) {
	settings, err := cache.GetSettings(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

//
// 🔴 PUT /api/admin/settings — remplacement complet du document
//
func UpdateSettings(c *gin.Context) {
	var settings models.SiteSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings", "details": err.Error()})
		return
	}

	if settings.DeliveryChargeInside < 0 || settings.DeliveryChargeOutside < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery charges cannot be negative"})
		return
	}

	ctx := context.Background()
	opts := options.Replace().SetUpsert(true)
	if _, err := database.MongoContentDB.Collection("settings").
		ReplaceOne(ctx, bson.M{}, settings, opts); err != nil {
		log.Printf("❌ Erreur mise à jour paramètres: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}

	cache.InvalidateSettings(ctx)

	log.Println("⚙️ Paramètres du site mis à jour")
	c.JSON(http.StatusOK, gin.H{"message": "Settings updated", "settings": settings})
}
