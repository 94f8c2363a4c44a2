package user

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"blackstone_back_end/internal/models"
	"blackstone_back_end/internal/utils"
)

//
// 🔌 GET /api/auth/:provider — démarre le flow OAuth (Google, Facebook)
//
func BeginOAuth(c *gin.Context) {
	provider := c.Param("provider")
	q := c.Request.URL.Query()
	q.Add("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

//
// 🔌 GET /api/auth/:provider/callback
//
func OAuthCallback(c *gin.Context) {
	provider := c.Param("provider")
	q := c.Request.URL.Query()
	q.Add("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Printf("❌ Erreur OAuth %s: %v", provider, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Social login failed"})
		return
	}

	user, err := findOrCreateOAuthUser(gothUser, provider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign in"})
		return
	}

	if user.Status == models.UserBlocked {
		c.JSON(http.StatusForbidden, gin.H{"error": "This account has been blocked"})
		return
	}

	token, err := utils.GenerateJWT(*user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	// Redirige vers le front avec le token
	frontend := os.Getenv("FRONTEND_URL")
	if frontend == "" {
		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, frontend+"/auth/callback?token="+token)
}

func findOrCreateOAuthUser(gothUser goth.User, provider string) (*models.User, error) {
	ctx := context.Background()
	email := strings.ToLower(strings.TrimSpace(gothUser.Email))

	var user models.User
	err := usersCollection().FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == nil {
		// Compte existant : rattache le provider si besoin
		if user.ProviderID == "" {
			usersCollection().UpdateOne(ctx, bson.M{"_id": user.ID},
				bson.M{"$set": bson.M{"provider": provider, "provider_id": gothUser.UserID}})
		}
		return &user, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	user = models.User{
		ID:         uuid.NewString(),
		Name:       gothUser.Name,
		Email:      email,
		Role:       "customer",
		Provider:   provider,
		ProviderID: gothUser.UserID,
		Status:     models.UserActive,
		JoinDate:   time.Now(),
	}
	if _, err := usersCollection().InsertOne(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ Nouveau compte via %s: %s", provider, email)
	return &user, nil
}
