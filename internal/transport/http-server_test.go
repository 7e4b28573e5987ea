package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/songlist-dev/songlist-back/internal/db"
)

func TestCensorBody(t *testing.T) {
	b := `{
		"email": "email@email.com",
		"password": "123456789123"
	}`

	got := censorBody([]byte(b))
	assert.JSONEq(t, `{
		"email": "email@email.com",
		"password": "$censored"
	}`, string(got))
}

func TestCensorBodyWithoutPassword(t *testing.T) {
	b := `{"email": "email@email.com"}`

	got := censorBody([]byte(b))
	assert.JSONEq(t, b, string(got))
}

func TestCensorBodyNonJSON(t *testing.T) {
	b := `not json at all`

	got := censorBody([]byte(b))
	assert.Equal(t, b, string(got))
}

func newTestContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestCurrentUser(t *testing.T) {
	c := newTestContext(t, "/task")
	assert.Nil(t, CurrentUser(c))

	user := &db.User{GormForkedModel: db.GormForkedModel{ID: 1}}
	c.Set("user", user)
	assert.Equal(t, user, CurrentUser(c))
}

func TestRequireAdmin(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		c := newTestContext(t, "/user")
		_, err := RequireAdmin(c)
		assert.Error(t, err)
	})

	t.Run("non-admin", func(t *testing.T) {
		c := newTestContext(t, "/user")
		c.Set("user", &db.User{})
		_, err := RequireAdmin(c)
		assert.Error(t, err)
	})

	t.Run("admin", func(t *testing.T) {
		c := newTestContext(t, "/user")
		c.Set("user", &db.User{Roles: []string{db.RoleAdmin}})
		_, err := RequireAdmin(c)
		assert.NoError(t, err)
	})
}

func TestGetPageParam(t *testing.T) {
	assert.Equal(t, 1, GetPageParam(newTestContext(t, "/task")))
	assert.Equal(t, 3, GetPageParam(newTestContext(t, "/task?page=3")))
	assert.Equal(t, 1, GetPageParam(newTestContext(t, "/task?page=abc")))
	assert.Equal(t, -2, GetPageParam(newTestContext(t, "/task?page=-2")))
}
