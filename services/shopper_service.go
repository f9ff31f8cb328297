package services

import (
	"context"

	"gin-shoplist/dto"
	"gin-shoplist/repositories"
)

type IShopperService interface {
	GetShopper(ctx context.Context, userID string) (*dto.ShopperResource, error)
}

type ShopperService struct {
	store *repositories.Store
}

func NewShopperService(store *repositories.Store) IShopperService {
	return &ShopperService{store: store}
}

// GetShopper returns every public list plus the lists owned by userID.
// Without a userID only public lists are returned.
func (s *ShopperService) GetShopper(ctx context.Context, userID string) (*dto.ShopperResource, error) {
	lists, err := s.store.ShopLists.FindVisible(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(lists))
	for _, l := range lists {
		ids = append(ids, l.ID)
	}
	counts, err := s.store.ShopItems.CountByShopLists(ctx, ids)
	if err != nil {
		return nil, err
	}

	resource := &dto.ShopperResource{ShopLists: make([]dto.ShopListResource, 0, len(lists))}
	for i := range lists {
		resource.ShopLists = append(resource.ShopLists, *toShopListResource(&lists[i], counts[lists[i].ID]))
	}
	return resource, nil
}
