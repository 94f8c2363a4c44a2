package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
	"blackstone_back_end/internal/utils"
)

//
// ✉️ POST /api/contact — message client, stocké puis relayé par email
//
func SubmitContactMessage(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Subject string `json:"subject"`
		Message string `json:"message" binding:"required,max=2000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact message", "details": err.Error()})
		return
	}

	msg := models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}

	if _, err := database.MongoContentDB.Collection("contact_messages").
		InsertOne(context.Background(), msg); err != nil {
		log.Printf("❌ Erreur enregistrement message contact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	go utils.SendContactRelayEmail(msg)

	c.JSON(http.StatusCreated, gin.H{"message": "Message sent"})
}

//
// 🔴 GET /api/admin/contact-messages
//
func GetContactMessages(c *gin.Context) {
	cursor, err := database.MongoContentDB.Collection("contact_messages").
		Find(context.Background(), bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
		return
	}

	messages := make([]models.ContactMessage, 0)
	if err := cursor.All(context.Background(), &messages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
