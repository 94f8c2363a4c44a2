package product

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
)

func categoryCollection() *mongo.Collection {
	return database.MongoCatalogDB.Collection("categories")
}

const categoriesCacheKey = "categories:all"

//
// 🟢 POST /api/categories — création (admin)
//
func CreateCategory(c *gin.Context) {
	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if cat.Name == "" || cat.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fields 'name' and 'slug' are required"})
		return
	}

	ctx := context.Background()

	// Un seul niveau de hiérarchie : le parent doit être une catégorie racine
	if cat.ParentCategory != nil {
		var parent models.Category
		err := categoryCollection().FindOne(ctx, bson.M{"name": *cat.ParentCategory}).Decode(&parent)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Parent category not found"})
			return
		}
		if parent.ParentCategory != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nested sub-categories are not supported"})
			return
		}
	}

	now := time.Now()
	cat.CreatedAt = &now
	cat.ProductCount = 0

	res, err := categoryCollection().InsertOne(ctx, cat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}

	database.Redis.Del(ctx, categoriesCacheKey)

	c.JSON(http.StatusCreated, gin.H{"id": res.InsertedID})
}

//
// 🔵 GET /api/categories
//
func GetAllCategories(c *gin.Context) {
	ctx := context.Background()

	// Cache Redis
	if val, err := database.Redis.Get(ctx, categoriesCacheKey).Result(); err == nil {
		var cached []models.Category
		if json.Unmarshal([]byte(val), &cached) == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	cursor, err := categoryCollection().Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}

	cats := make([]models.Category, 0)
	if err := cursor.All(ctx, &cats); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode categories"})
		return
	}

	if data, err := json.Marshal(cats); err == nil {
		database.Redis.Set(ctx, categoriesCacheKey, data, time.Hour)
	}

	c.JSON(http.StatusOK, cats)
}

//
// 🟠 PUT /api/categories/:id — remplacement complet (admin)
//
func UpdateCategory(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	var cat models.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat.ID = objID

	ctx := context.Background()
	res, err := categoryCollection().ReplaceOne(ctx, bson.M{"_id": objID}, cat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	database.Redis.Del(ctx, categoriesCacheKey)

	c.JSON(http.StatusOK, cat)
}

//
// ❌ DELETE /api/categories/:id — suppression définitive (admin)
//
func DeleteCategory(c *gin.Context) {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
		return
	}

	ctx := context.Background()
	res, err := categoryCollection().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	database.Redis.Del(ctx, categoriesCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
