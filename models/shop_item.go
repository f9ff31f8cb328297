package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ShopItem struct {
	ID         string   `gorm:"primaryKey;size:36"`
	Name       string   `gorm:"not null"`
	Quantity   string   `gorm:"not null"`
	Remarks    string
	ShopListID string   `gorm:"not null;size:36;index"`
	ShopList   ShopList `gorm:"foreignKey:ShopListID"`
	// 作成者は帰属情報のみ。カスケード削除の経路ではない
	CreatorID  string   `gorm:"not null;size:36;index"`
	Creator    User     `gorm:"foreignKey:CreatorID"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (i *ShopItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
