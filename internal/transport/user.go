package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type (
	UserUpdateReq struct {
		Email    string   `json:"email" validate:"omitempty,email"`
		Password string   `json:"password" validate:"omitempty,min=8"`
		Roles    []string `json:"roles"`
	}

	UserResp struct {
		ID    uint64   `json:"id"`
		Email string   `json:"email"`
		Roles []string `json:"roles"`
	}
)

func (s *HTTPServer) UserIndex(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	page, err := s.users.GetPaginatedList(GetPageParam(c))
	if err != nil {
		return err
	}

	resp := PageResp[UserResp]{
		Items:      make([]UserResp, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	for i := range page.Items {
		resp.Items[i] = UserResp{
			ID:    page.Items[i].ID,
			Email: page.Items[i].Email,
			Roles: page.Items[i].GetRoles(),
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// UserUpdate lets users change their own email and password; role changes
// are reserved for admins.
func (s *HTTPServer) UserUpdate(c echo.Context) error {
	actor, err := RequireUser(c)
	if err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	if actor.ID != id && !actor.IsAdmin() {
		return c.NoContent(http.StatusForbidden)
	}

	user, err := s.users.FindOneByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return c.NoContent(http.StatusNotFound)
	}

	req := UserUpdateReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Roles != nil {
		if !actor.IsAdmin() {
			return c.NoContent(http.StatusForbidden)
		}
		user.Roles = req.Roles
	}
	if err := s.users.Save(user); err != nil {
		return err
	}

	if req.Password != "" {
		if err := s.users.UpgradePassword(user, req.Password); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, UserResp{
		ID:    user.ID,
		Email: user.Email,
		Roles: user.GetRoles(),
	})
}
