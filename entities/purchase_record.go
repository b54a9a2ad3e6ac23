package entities

import (
	"github.com/google/uuid"
)

// PurchaseRecord accumulates repurchases of the same product, merged by
// (user, name, type, mass) instead of growing a new row per purchase.
type PurchaseRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"uniqueIndex:idx_purchase_merge" json:"user_id"`
	Name        string    `gorm:"uniqueIndex:idx_purchase_merge" json:"name"`
	ProductType string    `gorm:"uniqueIndex:idx_purchase_merge" json:"product_type"`
	Mass        float64   `gorm:"uniqueIndex:idx_purchase_merge" json:"mass"`
	Quantity    int       `json:"quantity"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
