package services

import (
	"context"

	"gin-shoplist/apperrors"
	"gin-shoplist/dto"
	"gin-shoplist/repositories"

	"github.com/rs/zerolog/log"
)

type PrefillAdmin struct {
	Email    string
	Name     string
	Password string
}

// Prefill seeds an empty database with an admin and two sample lists.
// It does nothing when any user exists.
func Prefill(ctx context.Context, store *repositories.Store, users IUserService, lists IShopListService, items IShopItemService, admin PrefillAdmin) error {
	count, err := store.Users.CountUsers(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		log.Info().Int64("users", count).Msg("database not empty, skipping prefill")
		return nil
	}
	if admin.Password == "" {
		return apperrors.NewConfiguration("PREFILL_ADMIN_PASSWORD not set")
	}

	yes := true
	user, err := users.Create(ctx, dto.CreateUserInput{
		Name:     admin.Name,
		Email:    admin.Email,
		Password: admin.Password,
		Admin:    &yes,
	})
	if err != nil {
		return err
	}

	public, err := lists.Create(ctx, dto.CreateShopListInput{Store: "Wochenmarkt", Public: &yes, Creator: user.ID})
	if err != nil {
		return err
	}
	private, err := lists.Create(ctx, dto.CreateShopListInput{Store: "Drogerie", Creator: user.ID})
	if err != nil {
		return err
	}

	seed := []dto.CreateShopItemInput{
		{Name: "Äpfel", Quantity: "1 kg", ShopList: public.ID, Creator: user.ID},
		{Name: "Eier", Quantity: "10 Stück", ShopList: public.ID, Creator: user.ID},
		{Name: "Zahnpasta", Quantity: "1", ShopList: private.ID, Creator: user.ID},
	}
	for _, input := range seed {
		if _, err := items.Create(ctx, input); err != nil {
			return err
		}
	}
	log.Info().Str("admin", user.Email).Int("shop_items", len(seed)).Msg("database prefilled")
	return nil
}
