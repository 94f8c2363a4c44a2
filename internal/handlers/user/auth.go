package user

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/middleware"
	"blackstone_back_end/internal/models"
	"blackstone_back_end/internal/utils"
)

func usersCollection() *mongo.Collection {
	return database.MongoAuthDB.Collection("users")
}

//
// 🟢 POST /api/register
//
func Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Phone    string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration data", "details": err.Error()})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx := context.Background()

	// Unicité de l'email
	count, err := usersCollection().CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("❌ Erreur hashage mot de passe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    email,
		Password: hashed,
		Phone:    req.Phone,
		Role:     "customer",
		Provider: "local",
		Status:   models.UserActive,
		JoinDate: time.Now(),
	}

	if _, err := usersCollection().InsertOne(ctx, user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	log.Printf("✅ Nouveau compte: %s", email)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

//
// 🟢 POST /api/login
//
func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid credentials format"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	ctx := context.Background()

	var user models.User
	err := usersCollection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		middleware.RecordFailedLogin(email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if user.Status == models.UserBlocked {
		c.JSON(http.StatusForbidden, gin.H{"error": "This account has been blocked"})
		return
	}

	if user.Provider != "local" && user.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "This account uses social login"})
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.Password)
	if err != nil || !valid {
		middleware.RecordFailedLogin(email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	// 🔄 Migration transparente bcrypt → argon2id au login
	if utils.IsBcryptHash(user.Password) {
		if newHash, err := utils.HashPassword(req.Password); err == nil {
			usersCollection().UpdateOne(ctx, bson.M{"_id": user.ID},
				bson.M{"$set": bson.M{"password": newHash}})
			log.Printf("🔄 Hash migré vers argon2id pour %s", email)
		}
	}

	middleware.ResetLoginAttempts(email)

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	log.Printf("✅ Connexion: %s", email)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}
