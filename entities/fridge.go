package entities

import (
	"github.com/google/uuid"
)

type Fridge struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Title  string    `json:"title"`

	User     *User      `gorm:"foreignKey:UserID"`
	Products []*Product `gorm:"foreignKey:FridgeID"`
	Timestamp
}
