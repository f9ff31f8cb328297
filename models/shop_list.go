package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopList struct {
	ID        string `gorm:"primaryKey;size:36"`
	Store     string `gorm:"not null"`
	Public    bool   `gorm:"not null"`
	Done      bool   `gorm:"not null"`
	CreatorID string `gorm:"not null;size:36;index"`
	Creator   User   `gorm:"foreignKey:CreatorID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (l *ShopList) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
