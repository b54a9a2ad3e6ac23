package entities

import (
	"github.com/google/uuid"
)

type ShoppingItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ProductID   uuid.UUID `json:"product_id"`
	FridgeID    uuid.UUID `json:"fridge_id"`
	Name        string    `json:"name"`
	ProductType string    `json:"product_type"`
	Mass        float64   `json:"mass"`
	Quantity    string    `json:"quantity"` // mass + unit, e.g. "500г"

	User    *User    `gorm:"foreignKey:UserID"`
	Product *Product `gorm:"foreignKey:ProductID"`
	Timestamp
}
