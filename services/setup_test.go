package services

import (
	"context"
	"testing"
	"time"

	"gin-shoplist/dto"
	"gin-shoplist/infra"
	"gin-shoplist/repositories"
	"gin-shoplist/security"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testEnv struct {
	store    *repositories.Store
	hasher   security.PasswordHasher
	auth     IAuthenticationService
	tokens   *TokenService
	users    IUserService
	lists    IShopListService
	items    IShopItemService
	shoppers IShopperService
}

func setup(t *testing.T) *testEnv {
	t.Helper()
	db, err := infra.SetupTestDB()
	require.NoError(t, err)

	store := repositories.NewStore(db)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	auth := NewAuthenticationService(store.Users, hasher)
	return &testEnv{
		store:    store,
		hasher:   hasher,
		auth:     auth,
		tokens:   NewTokenService(auth, TokenConfig{Secret: "test-secret", TTL: time.Hour}).(*TokenService),
		users:    NewUserService(store, hasher),
		lists:    NewShopListService(store),
		items:    NewShopItemService(store),
		shoppers: NewShopperService(store),
	}
}

func boolPtr(b bool) *bool { return &b }
func strPtr(s string) *string { return &s }

func (e *testEnv) createUser(t *testing.T, name string, admin bool) *dto.UserResource {
	t.Helper()
	u, err := e.users.Create(context.Background(), dto.CreateUserInput{
		Name:     name,
		Email:    name + "@example.com",
		Password: "Geheim_123",
		Admin:    boolPtr(admin),
	})
	require.NoError(t, err)
	return u
}

func (e *testEnv) createList(t *testing.T, creator *dto.UserResource, public bool) *dto.ShopListResource {
	t.Helper()
	l, err := e.lists.Create(context.Background(), dto.CreateShopListInput{
		Store:   "Aldi",
		Public:  boolPtr(public),
		Creator: creator.ID,
	})
	require.NoError(t, err)
	return l
}

func (e *testEnv) createItem(t *testing.T, list *dto.ShopListResource, creator *dto.UserResource) *dto.ShopItemResource {
	t.Helper()
	i, err := e.items.Create(context.Background(), dto.CreateShopItemInput{
		Name:     "Milch",
		Quantity: "2 l",
		ShopList: list.ID,
		Creator:  creator.ID,
	})
	require.NoError(t, err)
	return i
}
