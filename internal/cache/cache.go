package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
)

const (
	SettingsCacheTTL = 5 * time.Minute
	ProductCacheTTL  = 10 * time.Minute

	settingsKey      = "settings:site"
	ProductsCacheKey = "products:all"
)

// GetSettings récupère les réglages du site depuis Redis, sinon MongoDB.
// S'il n'existe aucun document, les réglages par défaut sont installés.
func GetSettings(ctx context.Context) (models.SiteSettings, error) {
	if data, err := database.Redis.Get(ctx, settingsKey).Result(); err == nil {
		var settings models.SiteSettings
		if json.Unmarshal([]byte(data), &settings) == nil {
			return settings, nil
		}
	}

	var settings models.SiteSettings
	err := database.MongoContentDB.Collection("settings").
		FindOne(ctx, bson.M{}).
		Decode(&settings)
	if err != nil {
		// Premier démarrage : on installe le document par défaut
		settings = models.DefaultSettings()
		if _, insErr := database.MongoContentDB.Collection("settings").InsertOne(ctx, settings); insErr != nil {
			return settings, insErr
		}
	}

	if data, err := json.Marshal(settings); err == nil {
		database.Redis.Set(ctx, settingsKey, data, SettingsCacheTTL)
	}

	return settings, nil
}

// InvalidateSettings invalide le miroir Redis des réglages
func InvalidateSettings(ctx context.Context) {
	database.Redis.Del(ctx, settingsKey)
}

// InvalidateProducts invalide la liste produits en cache
func InvalidateProducts(ctx context.Context) {
	database.Redis.Del(ctx, ProductsCacheKey)
}

// GetCachedProducts récupère la liste produits complète depuis Redis
func GetCachedProducts(ctx context.Context) ([]models.Product, bool) {
	data, err := database.Redis.Get(ctx, ProductsCacheKey).Result()
	if err != nil || data == "" {
		return nil, false
	}
	var products []models.Product
	if json.Unmarshal([]byte(data), &products) != nil {
		return nil, false
	}
	return products, true
}

// StoreProducts met la liste produits complète en cache
func StoreProducts(ctx context.Context, products []models.Product) {
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, ProductsCacheKey, data, ProductCacheTTL)
	}
}
