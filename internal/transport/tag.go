package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type (
	TagReq struct {
		Title string `json:"title" validate:"required"`
	}

	TagResp struct {
		ID    uint64 `json:"id"`
		Title string `json:"title"`
	}
)

func (s *HTTPServer) TagIndex(c echo.Context) error {
	page, err := s.tags.GetPaginatedList(GetPageParam(c))
	if err != nil {
		return err
	}

	resp := PageResp[TagResp]{
		Items:      make([]TagResp, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	for i := range page.Items {
		resp.Items[i] = TagResp{ID: page.Items[i].ID, Title: page.Items[i].Title}
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) TagShow(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	tag, err := s.tags.FindOneByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, TagResp{ID: tag.ID, Title: tag.Title})
}

func (s *HTTPServer) TagCreate(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	req := TagReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	tag := db.Tag{Title: req.Title}
	if err := s.tags.Save(&tag); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TagResp{ID: tag.ID, Title: tag.Title})
}

func (s *HTTPServer) TagUpdate(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	tag, err := s.tags.FindOneByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return c.NoContent(http.StatusNotFound)
	}

	req := TagReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	tag.Title = req.Title
	if err := s.tags.Save(tag); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, TagResp{ID: tag.ID, Title: tag.Title})
}

func (s *HTTPServer) TagDelete(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	tag, err := s.tags.FindOneByID(id)
	if err != nil {
		return err
	}
	if tag == nil {
		return c.NoContent(http.StatusNotFound)
	}

	if err := s.tags.Delete(tag); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
