package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

func newUserService(t *testing.T) (*UserService, *gormFixture) {
	t.Helper()
	client := newTestDB(t)
	return NewUserService(repository.NewUserRepository(client), newTestLogger()), &gormFixture{client: client}
}

func TestUserRegister(t *testing.T) {
	svc, _ := newUserService(t)

	user, token, err := svc.Register("test@example.com", "secretpass123", nil)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "secretpass123", user.Password)
	assert.Equal(t, []string{db.RoleUser}, user.GetRoles())
}

func TestUserRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newUserService(t)

	_, _, err := svc.Register("test@example.com", "secretpass123", nil)
	require.NoError(t, err)

	_, _, err = svc.Register("test@example.com", "otherpass123", nil)
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestUserLogin(t *testing.T) {
	svc, _ := newUserService(t)
	_, registerToken, err := svc.Register("test@example.com", "secretpass123", nil)
	require.NoError(t, err)

	t.Run("valid credentials rotate the token", func(t *testing.T) {
		token, err := svc.Login("test@example.com", "secretpass123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.NotEqual(t, registerToken, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("test@example.com", "wrongpass123")
		assert.ErrorIs(t, err, ErrLoginPasswordDoesNotMatch)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Login("nobody@example.com", "secretpass123")
		assert.ErrorIs(t, err, ErrLoginUserNotFound)
	})
}

func TestUserFindOneByToken(t *testing.T) {
	svc, _ := newUserService(t)
	_, token, err := svc.Register("test@example.com", "secretpass123", nil)
	require.NoError(t, err)

	user, err := svc.FindOneByToken(token)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "test@example.com", user.Email)

	missing, err := svc.FindOneByToken("no-such-token")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserUpgradePassword(t *testing.T) {
	svc, _ := newUserService(t)
	user, _, err := svc.Register("test@example.com", "secretpass123", nil)
	require.NoError(t, err)

	require.NoError(t, svc.UpgradePassword(user, "newsecret456"))

	_, err = svc.Login("test@example.com", "newsecret456")
	require.NoError(t, err)
	_, err = svc.Login("test@example.com", "secretpass123")
	assert.ErrorIs(t, err, ErrLoginPasswordDoesNotMatch)
}

func TestUserRolesRoundTripThroughStore(t *testing.T) {
	svc, _ := newUserService(t)
	user, _, err := svc.Register("admin@example.com", "secretpass123", []string{db.RoleAdmin})
	require.NoError(t, err)

	stored, err := svc.FindOneByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsAdmin())
	assert.Contains(t, stored.GetRoles(), db.RoleUser)
}
