package dto

import "time"

type CreateShopItemInput struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Quantity string  `json:"quantity" binding:"required,max=100"`
	Remarks  *string `json:"remarks" binding:"omitempty,max=100"`
	Creator  string  `json:"creator" binding:"required,uuid"`
	ShopList string  `json:"shopList" binding:"required,uuid"`
}

// UpdateShopItemInput: Creator と ShopList は受け付けるが無視される。
// Remarks に空文字を渡すと備考を消す
type UpdateShopItemInput struct {
	ID       string  `json:"id" binding:"required,uuid"`
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Quantity *string `json:"quantity" binding:"omitempty,min=1,max=100"`
	Remarks  *string `json:"remarks" binding:"omitempty,max=100"`
	Creator  *string `json:"creator"`
	ShopList *string `json:"shopList"`
}

type ShopItemResource struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Quantity      string    `json:"quantity"`
	Remarks       string    `json:"remarks,omitempty"`
	Creator       string    `json:"creator"`
	CreatorName   string    `json:"creatorName"`
	CreatedAt     time.Time `json:"createdAt"`
	ShopList      string    `json:"shopList"`
	ShopListStore string    `json:"shopListStore"`
}

type ShopListItemsResource struct {
	ShopItems []ShopItemResource `json:"shopItems"`
}
