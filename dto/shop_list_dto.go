package dto

import "time"

type CreateShopListInput struct {
	Store   string `json:"store" binding:"required,max=100"`
	Public  *bool  `json:"public"`
	Done    *bool  `json:"done"`
	Creator string `json:"creator" binding:"required,uuid"`
}

// UpdateShopListInput: Creator は受け付けるが無視される
type UpdateShopListInput struct {
	ID      string  `json:"id" binding:"required,uuid"`
	Store   *string `json:"store" binding:"omitempty,min=1,max=100"`
	Public  *bool   `json:"public"`
	Done    *bool   `json:"done"`
	Creator *string `json:"creator"`
}

type ShopListResource struct {
	ID            string    `json:"id"`
	Store         string    `json:"store"`
	Public        bool      `json:"public"`
	Done          bool      `json:"done"`
	Creator       string    `json:"creator"`
	CreatorName   string    `json:"creatorName"`
	CreatedAt     time.Time `json:"createdAt"`
	ShopItemCount int64     `json:"shopItemCount"`
}

type ShopperResource struct {
	ShopLists []ShopListResource `json:"shopLists"`
}
