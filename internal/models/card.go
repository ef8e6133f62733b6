package models

import (
	"time"

	"github.com/google/uuid"
)

// Card is a business listing published by a business account.
type Card struct {
	BaseModel
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Image       Image     `gorm:"embedded;embeddedPrefix:image_" json:"image"`
	Address     Address   `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;index" json:"created_by"`
	Owner       *User     `gorm:"foreignKey:CreatedBy" json:"owner,omitempty"`
	Likes       []User    `gorm:"many2many:card_likes" json:"likes,omitempty"`
}

// CardLike is the join table behind Card.Likes. The composite primary key
// guarantees a user appears at most once per card, even under concurrent
// toggles.
type CardLike struct {
	CardID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"card_id"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
