package services

import (
	"errors"
	"strings"

	"gin-shoplist/apperrors"
	"gin-shoplist/dto"
	"gin-shoplist/models"
	"gin-shoplist/repositories"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// notFoundOr maps a missing record to NotFound and passes other errors through.
func notFoundOr(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewNotFound(message)
	}
	return err
}

func toUserResource(u *models.User) *dto.UserResource {
	return &dto.UserResource{ID: u.ID, Name: u.Name, Email: u.Email, Admin: u.Admin}
}

func toShopListResource(l *models.ShopList, itemCount int64) *dto.ShopListResource {
	return &dto.ShopListResource{
		ID:            l.ID,
		Store:         l.Store,
		Public:        l.Public,
		Done:          l.Done,
		Creator:       l.CreatorID,
		CreatorName:   l.Creator.Name,
		CreatedAt:     l.CreatedAt,
		ShopItemCount: itemCount,
	}
}

func toShopItemResource(i *models.ShopItem) *dto.ShopItemResource {
	return &dto.ShopItemResource{
		ID:            i.ID,
		Name:          i.Name,
		Quantity:      i.Quantity,
		Remarks:       i.Remarks,
		Creator:       i.CreatorID,
		CreatorName:   i.Creator.Name,
		CreatedAt:     i.CreatedAt,
		ShopList:      i.ShopListID,
		ShopListStore: i.ShopList.Store,
	}
}
