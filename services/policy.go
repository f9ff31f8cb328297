package services

import (
	"gin-shoplist/constants"
	"gin-shoplist/dto"
)

// Caller is the identity resolved from the request token. The zero value is anonymous.
type Caller struct {
	UserID string
	Role   string
}

func (c Caller) IsAuthenticated() bool {
	return c.UserID != ""
}

func (c Caller) IsAdmin() bool {
	return c.IsAuthenticated() && c.Role == constants.RoleAdmin
}

func (c Caller) is(userID string) bool {
	return c.IsAuthenticated() && c.UserID == userID
}

func CanReadShopList(c Caller, list *dto.ShopListResource) bool {
	return list.Public || c.is(list.Creator)
}

func CanReadShopItem(c Caller, list *dto.ShopListResource, item *dto.ShopItemResource) bool {
	return list.Public || c.is(list.Creator) || c.is(item.Creator)
}

func CanCreateShopItem(c Caller, list *dto.ShopListResource) bool {
	return list.Public || c.is(list.Creator)
}

func CanModifyShopList(c Caller, list *dto.ShopListResource) bool {
	return c.is(list.Creator)
}

func CanModifyShopItem(c Caller, list *dto.ShopListResource, item *dto.ShopItemResource) bool {
	return c.is(list.Creator) || c.is(item.Creator)
}

// CanActAs: 他人名義でリストやアイテムを作れるのは管理者のみ
func CanActAs(c Caller, userID string) bool {
	return c.is(userID) || c.IsAdmin()
}

func CanManageUsers(c Caller) bool {
	return c.IsAdmin()
}

func CanReadUser(c Caller, userID string) bool {
	return c.IsAdmin() || c.is(userID)
}

func CanDeleteUser(c Caller, userID string) bool {
	return c.IsAdmin() && c.UserID != userID
}
