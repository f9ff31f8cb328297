package services

import (
	"context"

	"gin-shoplist/apperrors"
	"gin-shoplist/constants"
	"gin-shoplist/dto"
	"gin-shoplist/models"
	"gin-shoplist/repositories"

	"github.com/rs/zerolog/log"
)

type IShopListService interface {
	FindByID(ctx context.Context, id string) (*dto.ShopListResource, error)
	Create(ctx context.Context, input dto.CreateShopListInput) (*dto.ShopListResource, error)
	Update(ctx context.Context, input dto.UpdateShopListInput) (*dto.ShopListResource, error)
	Delete(ctx context.Context, id string) error
}

type ShopListService struct {
	store *repositories.Store
}

func NewShopListService(store *repositories.Store) IShopListService {
	return &ShopListService{store: store}
}

func (s *ShopListService) FindByID(ctx context.Context, id string) (*dto.ShopListResource, error) {
	list, err := s.store.ShopLists.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, constants.ErrShopListNotFound)
	}
	count, err := s.store.ShopItems.CountByShopList(ctx, list.ID)
	if err != nil {
		return nil, err
	}
	return toShopListResource(list, count), nil
}

func (s *ShopListService) Create(ctx context.Context, input dto.CreateShopListInput) (*dto.ShopListResource, error) {
	list := &models.ShopList{
		Store:     input.Store,
		CreatorID: input.Creator,
	}
	if input.Public != nil {
		list.Public = *input.Public
	}
	if input.Done != nil {
		list.Done = *input.Done
	}

	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		creator, err := tx.Users.FindByID(ctx, input.Creator)
		if err != nil {
			return invalidReferenceOr(err, constants.ErrInvalidCreator)
		}
		list.Creator = *creator
		return tx.ShopLists.Create(ctx, list)
	})
	if err != nil {
		return nil, err
	}
	return toShopListResource(list, 0), nil
}

// Update changes store, public and done. A different creator in the input is ignored.
func (s *ShopListService) Update(ctx context.Context, input dto.UpdateShopListInput) (*dto.ShopListResource, error) {
	if input.ID == "" {
		return nil, apperrors.NewNotFound(constants.ErrShopListNotFound)
	}

	var list *models.ShopList
	var count int64
	err := s.store.Transaction(ctx, func(tx *repositories.Store) error {
		var err error
		list, err = tx.ShopLists.FindByID(ctx, input.ID)
		if err != nil {
			return notFoundOr(err, constants.ErrShopListNotFound)
		}
		if input.Store != nil {
			list.Store = *input.Store
		}
		if input.Public != nil {
			list.Public = *input.Public
		}
		if input.Done != nil {
			list.Done = *input.Done
		}
		if err := tx.ShopLists.Update(ctx, list); err != nil {
			return notFoundOr(err, constants.ErrShopListNotFound)
		}
		count, err = tx.ShopItems.CountByShopList(ctx, list.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toShopListResource(list, count), nil
}

func (s *ShopListService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.NewNotFound(constants.ErrShopListNotFound)
	}
	return s.store.Transaction(ctx, func(tx *repositories.Store) error {
		return deleteShopList(ctx, tx, id)
	})
}

// deleteShopList removes the list after deleting each of its items through
// deleteShopItem. st is expected to be bound to a transaction.
func deleteShopList(ctx context.Context, st *repositories.Store, id string) error {
	itemIDs, err := st.ShopItems.FindIDsByShopList(ctx, id)
	if err != nil {
		return err
	}
	for _, itemID := range itemIDs {
		if err := deleteShopItem(ctx, st, itemID); err != nil {
			return err
		}
	}

	deleted, err := st.ShopLists.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted != 1 {
		return apperrors.NewNotFound(constants.ErrShopListNotFound)
	}
	log.Debug().Str("shop_list_id", id).Int("shop_items", len(itemIDs)).Msg("shop list deleted")
	return nil
}
