package test_functional

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	AppBaseURL url.URL
	DBConn     *pgx.Conn
)

// FlushDB empties every table, children first.
func FlushDB() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	tables := []string{"task_tags", "comments", "tasks", "tags", "categories", "artists", "genres", "guest_users", "users"}
	for _, table := range tables {
		if _, err := DBConn.Exec(ctx, "DELETE FROM "+table); err != nil {
			panic(err)
		}
	}
}

func TestRegister(t *testing.T) {
	u := AppBaseURL
	u.Path = "/auth/register"

	t.Run("successful register", func(t *testing.T) {
		defer FlushDB()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		type Resp struct {
			Token string `json:"token"`
		}

		resp, err := resty.New().
			R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetResult(&Resp{}).
			SetBody(`
			{"email": "test@gmail.com", "password": "111111111111"}
		`).
			Post(u.String())
		assert.Nil(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode())

		got, ok := resp.Result().(*Resp)
		assert.True(t, ok)
		assert.NotEmpty(t, got.Token)

		var (
			id    uint64
			token string
		)
		err = DBConn.QueryRow(ctx, "SELECT id, token FROM users WHERE token=$1", got.Token).Scan(&id, &token)
		assert.Nil(t, err)

		assert.Equal(t, token, got.Token)
	})

	t.Run("bad body", func(t *testing.T) {
		defer FlushDB()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		resp, err := resty.New().
			R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetBody(`
			{"something": "???"}
		`).
			Post(u.String())
		assert.Nil(t, err)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})
}

func TestTaskCrud(t *testing.T) {
	defer FlushDB()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()

	registerURL := AppBaseURL
	registerURL.Path = "/auth/register"
	taskURL := AppBaseURL
	taskURL.Path = "/task"

	type tokenResp struct {
		Token string `json:"token"`
	}
	type taskResp struct {
		ID       uint64 `json:"id"`
		Title    string `json:"title"`
		TagsText string `json:"tags_text"`
	}
	type pageResp struct {
		Items      []taskResp `json:"items"`
		TotalCount int64      `json:"total_count"`
	}

	cl := resty.New()

	resp, err := cl.R().
		SetHeader("Content-Type", "application/json").
		SetContext(ctx).
		SetResult(&tokenResp{}).
		SetBody(`{"email": "crud@gmail.com", "password": "111111111111"}`).
		Post(registerURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	token := resp.Result().(*tokenResp).Token

	var categoryID uint64
	err = DBConn.QueryRow(ctx,
		"INSERT INTO categories (title, created_at, updated_at) VALUES ('Rock', now(), now()) RETURNING id",
	).Scan(&categoryID)
	require.Nil(t, err)

	resp, err = cl.R().
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Token", token).
		SetContext(ctx).
		SetResult(&taskResp{}).
		SetBody(map[string]interface{}{
			"title":       "Midnight Signal",
			"category_id": categoryID,
			"tags":        "vinyl, live",
		}).
		Post(taskURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	created := resp.Result().(*taskResp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "vinyl,  live", created.TagsText)

	resp, err = cl.R().
		SetContext(ctx).
		SetResult(&pageResp{}).
		Get(taskURL.String())
	require.Nil(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	listed := resp.Result().(*pageResp)
	assert.Equal(t, int64(1), listed.TotalCount)
}

func TestGuestTaskCreate(t *testing.T) {
	defer FlushDB()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	taskURL := AppBaseURL
	taskURL.Path = "/task"

	var categoryID uint64
	err := DBConn.QueryRow(ctx,
		"INSERT INTO categories (title, created_at, updated_at) VALUES ('Pop', now(), now()) RETURNING id",
	).Scan(&categoryID)
	require.Nil(t, err)

	cl := resty.New()
	for i := 0; i < 2; i++ {
		resp, err := cl.R().
			SetHeader("Content-Type", "application/json").
			SetContext(ctx).
			SetBody(map[string]interface{}{
				"title":       "Anonymous Song",
				"category_id": categoryID,
				"guest_email": "guest@gmail.com",
			}).
			Post(taskURL.String())
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
	}

	var guestCount int64
	err = DBConn.QueryRow(ctx, "SELECT COUNT(*) FROM guest_users WHERE email=$1", "guest@gmail.com").Scan(&guestCount)
	require.Nil(t, err)
	assert.Equal(t, int64(1), guestCount)
}
