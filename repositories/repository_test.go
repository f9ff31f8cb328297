package repositories

import (
	"context"
	"errors"
	"testing"

	"gin-shoplist/infra"
	"gin-shoplist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	db, err := infra.SetupTestDB()
	require.NoError(t, err)
	return NewStore(db)
}

func createUser(t *testing.T, s *Store, name string) *models.User {
	t.Helper()
	u := &models.User{Email: name + "@example.com", Name: name, Password: "hash"}
	require.NoError(t, s.Users.Create(context.Background(), u))
	return u
}

func createList(t *testing.T, s *Store, creator *models.User, public bool) *models.ShopList {
	t.Helper()
	l := &models.ShopList{Store: "Aldi", Public: public, CreatorID: creator.ID}
	require.NoError(t, s.ShopLists.Create(context.Background(), l))
	return l
}

func createItem(t *testing.T, s *Store, list *models.ShopList, creator *models.User) *models.ShopItem {
	t.Helper()
	i := &models.ShopItem{Name: "Milch", Quantity: "2 l", ShopListID: list.ID, CreatorID: creator.ID}
	require.NoError(t, s.ShopItems.Create(context.Background(), i))
	return i
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)

	u := createUser(t, s, "john")
	assert.NotEmpty(t, u.ID)

	found, err := s.Users.FindByEmail(ctx, "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, found.ID)

	_, err = s.Users.FindByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	dup := &models.User{Email: "john@example.com", Name: "other", Password: "hash"}
	assert.ErrorIs(t, s.Users.Create(ctx, dup), ErrDuplicateKey)

	count, err := s.Users.CountByName(ctx, "john")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	found.Name = "johnny"
	found.Admin = true
	require.NoError(t, s.Users.Update(ctx, found))
	reloaded, err := s.Users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "johnny", reloaded.Name)
	assert.True(t, reloaded.Admin)

	assert.ErrorIs(t, s.Users.Update(ctx, &models.User{ID: "missing"}), ErrNotFound)

	n, err := s.Users.Delete(ctx, u.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	total, err := s.Users.CountUsers(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestShopListRepositoryFindVisible(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	a := createUser(t, s, "a")
	b := createUser(t, s, "b")

	publicA := createList(t, s, a, true)
	privateA := createList(t, s, a, false)
	publicB := createList(t, s, b, true)
	privateB := createList(t, s, b, false)

	ids := func(lists []models.ShopList) []string {
		out := make([]string, 0, len(lists))
		for _, l := range lists {
			out = append(out, l.ID)
		}
		return out
	}

	anonymous, err := s.ShopLists.FindVisible(ctx, "")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{publicA.ID, publicB.ID}, ids(anonymous))

	forA, err := s.ShopLists.FindVisible(ctx, a.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{publicA.ID, privateA.ID, publicB.ID}, ids(forA))
	for _, l := range forA {
		assert.NotEmpty(t, l.Creator.Name)
	}

	forB, err := s.ShopLists.FindVisible(ctx, b.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{publicA.ID, publicB.ID, privateB.ID}, ids(forB))
}

func TestShopListRepositoryUpdateKeepsCreator(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	a := createUser(t, s, "a")
	b := createUser(t, s, "b")
	l := createList(t, s, a, false)

	l.Store = "Lidl"
	l.Done = true
	l.CreatorID = b.ID
	require.NoError(t, s.ShopLists.Update(ctx, l))

	reloaded, err := s.ShopLists.FindByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lidl", reloaded.Store)
	assert.True(t, reloaded.Done)
	assert.Equal(t, a.ID, reloaded.CreatorID)
	assert.Equal(t, "a", reloaded.Creator.Name)
}

func TestShopItemRepositoryCounts(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	a := createUser(t, s, "a")
	l1 := createList(t, s, a, true)
	l2 := createList(t, s, a, true)
	empty := createList(t, s, a, true)
	createItem(t, s, l1, a)
	createItem(t, s, l1, a)
	createItem(t, s, l2, a)

	counts, err := s.ShopItems.CountByShopLists(ctx, []string{l1.ID, l2.ID, empty.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[l1.ID])
	assert.EqualValues(t, 1, counts[l2.ID])
	assert.Zero(t, counts[empty.ID])

	n, err := s.ShopItems.CountByShopList(ctx, l1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	ids, err := s.ShopItems.FindIDsByShopList(ctx, l1.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	items, err := s.ShopItems.FindByShopList(ctx, l1.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Aldi", items[0].ShopList.Store)
	assert.Equal(t, "a", items[0].Creator.Name)
}

func TestShopItemRepositoryUpdateKeepsParentAndCreator(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	a := createUser(t, s, "a")
	b := createUser(t, s, "b")
	l1 := createList(t, s, a, true)
	l2 := createList(t, s, b, true)
	item := createItem(t, s, l1, a)

	item.Name = "Brot"
	item.Remarks = "Vollkorn"
	item.ShopListID = l2.ID
	item.CreatorID = b.ID
	require.NoError(t, s.ShopItems.Update(ctx, item))

	reloaded, err := s.ShopItems.FindByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brot", reloaded.Name)
	assert.Equal(t, "Vollkorn", reloaded.Remarks)
	assert.Equal(t, l1.ID, reloaded.ShopListID)
	assert.Equal(t, a.ID, reloaded.CreatorID)
}

func TestStoreTransactionRollsBack(t *testing.T) {
	ctx := context.Background()
	s := setupStore(t)
	a := createUser(t, s, "a")
	l := createList(t, s, a, true)

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(tx *Store) error {
		n, err := tx.ShopLists.Delete(ctx, l.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, n)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = s.ShopLists.FindByID(ctx, l.ID)
	assert.NoError(t, err)
}
