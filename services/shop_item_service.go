package services

import (
	"context"
	"errors"

	"gin-shoplist/apperrors"
	"gin-shoplist/constants"
	"gin-shoplist/dto"
	"gin-shoplist/models"
	"gin-shoplist/repositories"
)

type IShopItemService interface {
	FindByID(ctx context.Context, id string) (*dto.ShopItemResource, error)
	FindByShopList(ctx context.Context, shopListID string) (*dto.ShopListItemsResource, error)
	Create(ctx context.Context, input dto.CreateShopItemInput) (*dto.ShopItemResource, error)
	Update(ctx context.Context, input dto.UpdateShopItemInput) (*dto.ShopItemResource, error)
	Delete(ctx context.Context, id string) error
}

type ShopItemService struct {
	store *repositories.Store
}

func NewShopItemService(store *repositories.Store) IShopItemService {
	return &ShopItemService{store: store}
}

func (s *ShopItemService) FindByID(ctx context.Context, id string) (*dto.ShopItemResource, error) {
	item, err := s.store.ShopItems.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, constants.ErrShopItemNotFound)
	}
	return toShopItemResource(item), nil
}

func (s *ShopItemService) FindByShopList(ctx context.Context, shopListID string) (*dto.ShopListItemsResource, error) {
	if _, err := s.store.ShopLists.FindByID(ctx, shopListID); err != nil {
		return nil, notFoundOr(err, constants.ErrShopListNotFound)
	}
	items, err := s.store.ShopItems.FindByShopList(ctx, shopListID)
	if err != nil {
		return nil, err
	}
	resource := &dto.ShopListItemsResource{ShopItems: make([]dto.ShopItemResource, 0, len(items))}
	for i := range items {
		resource.ShopItems = append(resource.ShopItems, *toShopItemResource(&items[i]))
	}
	return resource, nil
}

// Create は閉じたリストへの追加を StateConflict で拒否する。ID と作成日時はシステムが採番する
func (s *ShopItemService) Create(ctx context.Context, input dto.CreateShopItemInput) (*dto.ShopItemResource, error) {
	item := &models.ShopItem{
		Name:       input.Name,
		Quantity:   input.Quantity,
		ShopListID: input.ShopList,
		CreatorID:  input.Creator,
	}
	if input.Remarks != nil {
		item.Remarks = *input.Remarks
	}

	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		creator, err := tx.Users.FindByID(ctx, input.Creator)
		if err != nil {
			return invalidReferenceOr(err, constants.ErrInvalidCreator)
		}
		list, err := tx.ShopLists.FindByID(ctx, input.ShopList)
		if err != nil {
			return invalidReferenceOr(err, constants.ErrInvalidShopList)
		}
		if list.Done {
			return apperrors.NewStateConflict(constants.ErrShopListClosed)
		}
		item.Creator = *creator
		item.ShopList = *list
		return tx.ShopItems.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return toShopItemResource(item), nil
}

// Update changes name, quantity and remarks. Parent list and creator stay as they are.
func (s *ShopItemService) Update(ctx context.Context, input dto.UpdateShopItemInput) (*dto.ShopItemResource, error) {
	if input.ID == "" {
		return nil, apperrors.NewNotFound(constants.ErrShopItemNotFound)
	}

	var item *models.ShopItem
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		var err error
		item, err = tx.ShopItems.FindByID(ctx, input.ID)
		if err != nil {
			return notFoundOr(err, constants.ErrShopItemNotFound)
		}
		if input.Name != nil {
			item.Name = *input.Name
		}
		if input.Quantity != nil {
			item.Quantity = *input.Quantity
		}
		if input.Remarks != nil {
			item.Remarks = *input.Remarks
		}
		return notFoundOr(tx.ShopItems.Update(ctx, item), constants.ErrShopItemNotFound)
	})
	if err != nil {
		return nil, err
	}
	return toShopItemResource(item), nil
}

func (s *ShopItemService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewNotFound(constants.ErrShopItemNotFound)
	}
	return deleteShopItem(ctx, s.store, id)
}

func deleteShopItem(ctx context.Context, st *repositories.Store, id string) error {
	deleted, err := st.ShopItems.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted != 1 {
		return apperrors.NewNotFound(constants.ErrShopItemNotFound)
	}
	return nil
}

func invalidReferenceOr(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewInvalidReference(message)
	}
	return err
}
