package services

import (
	"context"
	"testing"

	"gin-shoplist/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	john := env.createUser(t, "john", false)
	admin := env.createUser(t, "admin", true)

	res, err := env.auth.Login(ctx, "  JOHN@example.com ", "Geheim_123")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, john.ID, res.ID)
	assert.Equal(t, "john", res.Name)
	assert.Equal(t, constants.RoleUser, res.Role)

	res, err = env.auth.Login(ctx, "admin@example.com", "Geheim_123")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, admin.ID, res.ID)
	assert.Equal(t, constants.RoleAdmin, res.Role)
}

func TestLoginFailureRevealsNothing(t *testing.T) {
	ctx := context.Background()
	env := setup(t)
	env.createUser(t, "john", false)

	password := "Geheim_123"
	for i := range password {
		mutated := []byte(password)
		mutated[i]++
		res, err := env.auth.Login(ctx, "john@example.com", string(mutated))
		require.NoError(t, err)
		assert.Equal(t, &LoginResult{Success: false}, res, "mutation at %d", i)
	}

	unknown, err := env.auth.Login(ctx, "nobody@example.com", password)
	require.NoError(t, err)
	assert.Equal(t, &LoginResult{Success: false}, unknown)

	empty, err := env.auth.Login(ctx, "", "")
	require.NoError(t, err)
	assert.False(t, empty.Success)
}
