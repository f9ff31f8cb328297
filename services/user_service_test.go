package services

import (
	"context"
	"testing"

	"gin-shoplist/apperrors"
	"gin-shoplist/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	env := setup(t)

	u, err := env.users.Create(ctx, dto.CreateUserInput{Name: "John", Email: " John@Example.COM", Password: "Geheim_123"})
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "john@example.com", u.Email)
	assert.False(t, u.Admin)

	stored, err := env.store.Users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Geheim_123", stored.Password)
	assert.True(t, env.hasher.Verify(stored.Password, "Geheim_123"))
}

func TestCreateUserDuplicates(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	env.createUser(t, "john", false)

	_, err := env.users.Create(ctx, dto.CreateUserInput{Name: "other", Email: "JOHN@example.com", Password: "Geheim_123"})
	assert.True(t, apperrors.Is(err, apperrors.CodeDuplicateKey))

	_, err = env.users.Create(ctx, dto.CreateUserInput{Name: "john", Email: "other@example.com", Password: "Geheim_123"})
	assert.True(t, apperrors.Is(err, apperrors.CodeDuplicateKey))
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	john := env.createUser(t, "john", false)

	updated, err := env.users.Update(ctx, dto.UpdateUserInput{
		ID:       john.ID,
		Email:    strPtr("JOHNNY@example.com"),
		Password: strPtr("Neu_Geheim_456"),
		Admin:    boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "johnny@example.com", updated.Email)
	assert.Equal(t, "john", updated.Name)
	assert.True(t, updated.Admin)

	res, err := env.auth.Login(ctx, "johnny@example.com", "Neu_Geheim_456")
	require.NoError(t, err)
	assert.True(t, res.Success)

	res, err = env.auth.Login(ctx, "johnny@example.com", "Geheim_123")
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestUpdateUserKeepsPasswordWhenOmitted(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	john := env.createUser(t, "john", false)

	_, err := env.users.Update(ctx, dto.UpdateUserInput{ID: john.ID, Name: strPtr("jonathan")})
	require.NoError(t, err)

	res, err := env.auth.Login(ctx, "john@example.com", "Geheim_123")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "jonathan", res.Name)
}

func TestUpdateUserErrors(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	john := env.createUser(t, "john", false)
	env.createUser(t, "jane", false)

	_, err := env.users.Update(ctx, dto.UpdateUserInput{})
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))

	_, err = env.users.Update(ctx, dto.UpdateUserInput{ID: "00000000-0000-0000-0000-000000000000"})
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))

	_, err = env.users.Update(ctx, dto.UpdateUserInput{ID: john.ID, Email: strPtr("jane@example.com")})
	assert.True(t, apperrors.Is(err, apperrors.CodeDuplicateKey))

	_, err = env.users.Update(ctx, dto.UpdateUserInput{ID: john.ID, Name: strPtr("jane")})
	assert.True(t, apperrors.Is(err, apperrors.CodeDuplicateKey))

	same, err := env.users.Update(ctx, dto.UpdateUserInput{ID: john.ID, Email: strPtr("john@example.com"), Name: strPtr("john")})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", same.Email)
}

func TestFindAllUsers(t *testing.T) {
	env := setup(t)
	env.createUser(t, "john", false)
	env.createUser(t, "jane", true)

	all, err := env.users.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all.Users, 2)
}

func TestDeleteUserCascades(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	john := env.createUser(t, "john", false)
	jane := env.createUser(t, "jane", false)

	var johnLists []string
	for n := 0; n < 3; n++ {
		l := env.createList(t, john, n%2 == 0)
		johnLists = append(johnLists, l.ID)
		for m := 0; m <= n; m++ {
			env.createItem(t, l, john)
		}
	}
	janeList := env.createList(t, jane, true)
	env.createItem(t, janeList, jane)
	johnsItemOnJanesList := env.createItem(t, janeList, john)

	require.NoError(t, env.users.Delete(ctx, john.ID))

	_, err := env.users.FindByID(ctx, john.ID)
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))

	remaining, err := env.store.ShopLists.FindIDsByCreator(ctx, john.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
	for _, id := range johnLists {
		count, err := env.store.ShopItems.CountByShopList(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, count)
	}

	// 他人のリスト上のアイテムは帰属情報のみなので残る
	janeItems, err := env.items.FindByShopList(ctx, janeList.ID)
	require.NoError(t, err)
	assert.Len(t, janeItems.ShopItems, 2)
	_, err = env.items.FindByID(ctx, johnsItemOnJanesList.ID)
	assert.NoError(t, err)
}

func TestDeleteUserNotFound(t *testing.T) {
	env := setup(t)

	err := env.users.Delete(context.Background(), "")
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))

	err = env.users.Delete(context.Background(), "00000000-0000-0000-0000-000000000000")
	assert.True(t, apperrors.Is(err, apperrors.CodeNotFound))
}
