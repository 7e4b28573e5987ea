package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

func TestGuestUserSaveDeduplicatesByEmail(t *testing.T) {
	client := newTestDB(t)
	svc := NewGuestUserService(repository.NewGuestUserRepository(client), newTestLogger())

	require.NoError(t, svc.Save(&db.GuestUser{Email: "guest@example.com"}))
	require.NoError(t, svc.Save(&db.GuestUser{Email: "guest@example.com"}))

	var count int64
	require.NoError(t, client.Model(&db.GuestUser{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGuestUserSaveKeepsDistinctEmails(t *testing.T) {
	client := newTestDB(t)
	svc := NewGuestUserService(repository.NewGuestUserRepository(client), newTestLogger())

	require.NoError(t, svc.Save(&db.GuestUser{Email: "one@example.com"}))
	require.NoError(t, svc.Save(&db.GuestUser{Email: "two@example.com"}))

	var count int64
	require.NoError(t, client.Model(&db.GuestUser{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestGuestUserSaveDiscardSilently(t *testing.T) {
	client := newTestDB(t)
	svc := NewGuestUserService(repository.NewGuestUserRepository(client), newTestLogger())

	first := db.GuestUser{Email: "guest@example.com"}
	require.NoError(t, svc.Save(&first))

	// The duplicate is discarded without an error and never gets an id.
	dup := db.GuestUser{Email: "guest@example.com"}
	require.NoError(t, svc.Save(&dup))
	assert.Zero(t, dup.ID)
	assert.NotZero(t, first.ID)
}
