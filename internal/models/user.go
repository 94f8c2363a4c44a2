package models

import "time"

// Statuts de compte client
const (
	UserActive   = "active"
	UserBlocked  = "blocked"
	UserInactive = "inactive"
)

type User struct {
	ID          string    `bson:"_id" json:"user_id"`
	Name        string    `bson:"name" json:"name,omitempty"`
	Email       string    `bson:"email" json:"email"`
	Password    string    `bson:"password" json:"-"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Address     string    `bson:"address,omitempty" json:"address,omitempty"`
	Role        string    `bson:"role" json:"role,omitempty"`
	Provider    string    `bson:"provider" json:"provider,omitempty"`
	ProviderID  string    `bson:"provider_id,omitempty" json:"-"`
	Status      string    `bson:"status" json:"status"`
	TotalOrders int       `bson:"total_orders" json:"total_orders"`
	TotalSpent  float64   `bson:"total_spent" json:"total_spent"`
	JoinDate    time.Time `bson:"join_date" json:"join_date"`
}
