package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"go.mongodb.org/mongo-driver/bson"

	"blackstone_back_end/internal/database"
)

// AuditPriceChanges trace les changements de prix effectués en back office
func AuditPriceChanges() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Capturer le body de la requête
		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Next()
			return
		}

		// Restaurer le body pour les handlers suivants
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var requestData map[string]interface{}
		if err := json.Unmarshal(bodyBytes, &requestData); err != nil {
			c.Next()
			return
		}

		newPrice, exists := requestData["price"]
		if !exists {
			c.Next()
			return
		}

		productID := c.Param("id")
		oldPrice, priceErr := getProductPrice(productID)

		c.Next()

		// N'enregistre que si la mise à jour a réussi
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}

		// Ancien prix illisible : on ne fabrique pas de donnée d'audit
		if priceErr != nil {
			log.Printf("⚠️ Audit prix ignoré pour %s: ancien prix illisible (%v)", productID, priceErr)
			return
		}

		entry := bson.M{
			"action":     "product_price_change",
			"product_id": productID,
			"old_price":  oldPrice,
			"new_price":  newPrice,
			"admin":      c.GetString("email"),
			"created_at": time.Now(),
		}
		if _, err := database.MongoContentDB.Collection("audit_logs").
			InsertOne(context.Background(), entry); err != nil {
			log.Printf("⚠️ Erreur écriture audit: %v", err)
			return
		}

		log.Printf("💰 Changement de prix audité: produit %s (%.2f → %v)", productID, oldPrice, newPrice)
	}
}

func getProductPrice(productID string) (float64, error) {
	productUUID, err := gocql.ParseUUID(productID)
	if err != nil {
		return 0, err
	}

	session, err := database.GetProductsSession()
	if err != nil {
		return 0, err
	}

	var price float64
	if err := session.Query(`SELECT price FROM products WHERE product_id = ?`, productUUID).
		Scan(&price); err != nil {
		return 0, err
	}
	return price, nil
}
