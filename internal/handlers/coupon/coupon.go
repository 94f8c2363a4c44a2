package coupon

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"blackstone_back_end/internal/coupons"
	"blackstone_back_end/internal/database"
	"blackstone_back_end/internal/models"
)

const couponColumns = "coupon_id, code, type, value, min_amount, max_uses, used_count, expires_at, is_active, created_by, created_at, updated_at"

func findCouponByCode(session *gocql.Session, code string) (models.Coupon, error) {
	var cp models.Coupon
	err := session.Query(`SELECT `+couponColumns+` FROM coupons WHERE code = ?`, code).
		Scan(&cp.ID, &cp.Code, &cp.Type, &cp.Value, &cp.MinAmount,
			&cp.MaxUses, &cp.UsedCount, &cp.ExpiresAt, &cp.IsActive,
			&cp.CreatedBy, &cp.CreatedAt, &cp.UpdatedAt)
	return cp, err
}

//
// 🎟️ GET /api/coupons/validate?code=…&cart_total=…
//
func ValidateCoupon(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Query("code")))
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon code is required"})
		return
	}

	cartTotal, err := strconv.ParseFloat(c.DefaultQuery("cart_total", "0"), 64)
	if err != nil || cartTotal < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart total"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	cp, err := findCouponByCode(session, code)
	if err != nil {
		c.JSON(http.StatusOK, models.CouponValidation{
			IsValid:      false,
			ErrorMessage: "Coupon not found",
		})
		return
	}

	result := coupons.Validate(cp, cartTotal, time.Now())
	c.JSON(http.StatusOK, result)
}

//
// 🔴 POST /api/admin/coupons
//
func CreateCoupon(c *gin.Context) {
	var req struct {
		Code      string  `json:"code" binding:"required"`
		Type      string  `json:"type" binding:"required"`
		Value     float64 `json:"value" binding:"required,gt=0"`
		MinAmount float64 `json:"min_amount"`
		MaxUses   int     `json:"max_uses"`
		ExpiresAt string  `json:"expires_at" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon data", "details": err.Error()})
		return
	}

	if req.Type != models.CouponPercentage && req.Type != models.CouponFixed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon type must be 'percentage' or 'fixed'"})
		return
	}
	if req.Type == models.CouponPercentage && req.Value > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Percentage cannot exceed 100"})
		return
	}

	expiresAt, err := time.Parse(time.RFC3339, req.ExpiresAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "expires_at must be RFC3339"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if _, err := findCouponByCode(session, code); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "A coupon with this code already exists"})
		return
	}

	now := time.Now()
	cp := models.Coupon{
		ID:        gocql.TimeUUID(),
		Code:      code,
		Type:      req.Type,
		Value:     req.Value,
		MinAmount: req.MinAmount,
		MaxUses:   req.MaxUses,
		UsedCount: 0,
		ExpiresAt: expiresAt,
		IsActive:  true,
		CreatedBy: c.GetString("email"),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := session.Query(`INSERT INTO coupons (`+couponColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cp.ID, cp.Code, cp.Type, cp.Value, cp.MinAmount, cp.MaxUses, cp.UsedCount,
		cp.ExpiresAt, cp.IsActive, cp.CreatedBy, cp.CreatedAt, cp.UpdatedAt).Exec(); err != nil {
		log.Printf("❌ Erreur création coupon: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
		return
	}

	log.Printf("🎟️ Coupon créé: %s (%s %.2f)", cp.Code, cp.Type, cp.Value)
	c.JSON(http.StatusCreated, gin.H{"message": "Coupon created", "coupon": cp})
}

//
// 🔴 GET /api/admin/coupons
//
func GetAllCoupons(c *gin.Context) {
	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	iter := session.Query(`SELECT ` + couponColumns + ` FROM coupons`).Iter()

	list := make([]models.Coupon, 0)
	var cp models.Coupon
	for iter.Scan(&cp.ID, &cp.Code, &cp.Type, &cp.Value, &cp.MinAmount,
		&cp.MaxUses, &cp.UsedCount, &cp.ExpiresAt, &cp.IsActive,
		&cp.CreatedBy, &cp.CreatedAt, &cp.UpdatedAt) {
		list = append(list, cp)
	}
	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load coupons"})
		return
	}

	c.JSON(http.StatusOK, list)
}

//
// 🔴 PUT /api/admin/coupons/:code — activation, plafond, expiration
//
func UpdateCoupon(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	cp, err := findCouponByCode(session, code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	var req struct {
		IsActive  *bool    `json:"is_active"`
		MaxUses   *int     `json:"max_uses"`
		MinAmount *float64 `json:"min_amount"`
		ExpiresAt *string  `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon update"})
		return
	}

	if req.IsActive != nil {
		cp.IsActive = *req.IsActive
	}
	if req.MaxUses != nil {
		cp.MaxUses = *req.MaxUses
	}
	if req.MinAmount != nil {
		cp.MinAmount = *req.MinAmount
	}
	if req.ExpiresAt != nil {
		t, err := time.Parse(time.RFC3339, *req.ExpiresAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expires_at must be RFC3339"})
			return
		}
		cp.ExpiresAt = t
	}
	cp.UpdatedAt = time.Now()

	if err := session.Query(`UPDATE coupons SET is_active = ?, max_uses = ?, min_amount = ?, expires_at = ?, updated_at = ? WHERE code = ?`,
		cp.IsActive, cp.MaxUses, cp.MinAmount, cp.ExpiresAt, cp.UpdatedAt, code).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon updated", "coupon": cp})
}

//
// 🔴 DELETE /api/admin/coupons/:code
//
func DeleteCoupon(c *gin.Context) {
	code := strings.ToUpper(strings.TrimSpace(c.Param("code")))

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection error"})
		return
	}

	if _, err := findCouponByCode(session, code); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	if err := session.Query(`DELETE FROM coupons WHERE code = ?`, code).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
		return
	}

	log.Printf("🗑️ Coupon supprimé: %s", code)
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}
