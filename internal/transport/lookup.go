package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type (
	CategoryReq struct {
		Title string `json:"title" validate:"required"`
	}

	CategoryResp struct {
		ID    uint64 `json:"id"`
		Title string `json:"title"`
	}

	ArtistReq struct {
		Name string `json:"name" validate:"required"`
	}

	ArtistResp struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}

	GenreReq struct {
		Name string `json:"name" validate:"required"`
	}

	GenreResp struct {
		ID   uint64 `json:"id"`
		Name string `json:"name"`
	}
)

func (s *HTTPServer) CategoryIndex(c echo.Context) error {
	page, err := s.categories.GetPaginatedList(GetPageParam(c))
	if err != nil {
		return err
	}

	resp := PageResp[CategoryResp]{
		Items:      make([]CategoryResp, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	for i := range page.Items {
		resp.Items[i] = CategoryResp{ID: page.Items[i].ID, Title: page.Items[i].Title}
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) CategoryShow(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	category, err := s.categories.FindOneByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, CategoryResp{ID: category.ID, Title: category.Title})
}

func (s *HTTPServer) CategoryCreate(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	req := CategoryReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	category := db.Category{Title: req.Title}
	if err := s.categories.Save(&category); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CategoryResp{ID: category.ID, Title: category.Title})
}

func (s *HTTPServer) CategoryUpdate(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	category, err := s.categories.FindOneByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return c.NoContent(http.StatusNotFound)
	}

	req := CategoryReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	category.Title = req.Title
	if err := s.categories.Save(category); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, CategoryResp{ID: category.ID, Title: category.Title})
}

// CategoryDelete refuses to remove a category that still has tasks.
func (s *HTTPServer) CategoryDelete(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	category, err := s.categories.FindOneByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return c.NoContent(http.StatusNotFound)
	}

	if !s.categories.CanBeDeleted(category) {
		return echo.NewHTTPError(http.StatusConflict, "category is still referenced by tasks")
	}

	if err := s.categories.Delete(category); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *HTTPServer) ArtistIndex(c echo.Context) error {
	page, err := s.artists.GetPaginatedList(GetPageParam(c))
	if err != nil {
		return err
	}

	resp := PageResp[ArtistResp]{
		Items:      make([]ArtistResp, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	for i := range page.Items {
		resp.Items[i] = ArtistResp{ID: page.Items[i].ID, Name: page.Items[i].Name}
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) ArtistShow(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	artist, err := s.artists.FindOneByID(id)
	if err != nil {
		return err
	}
	if artist == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, ArtistResp{ID: artist.ID, Name: artist.Name})
}

func (s *HTTPServer) ArtistCreate(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	req := ArtistReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	artist := db.Artist{Name: req.Name}
	if err := s.artists.Save(&artist); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ArtistResp{ID: artist.ID, Name: artist.Name})
}

func (s *HTTPServer) ArtistUpdate(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	artist, err := s.artists.FindOneByID(id)
	if err != nil {
		return err
	}
	if artist == nil {
		return c.NoContent(http.StatusNotFound)
	}

	req := ArtistReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	artist.Name = req.Name
	if err := s.artists.Save(artist); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ArtistResp{ID: artist.ID, Name: artist.Name})
}

func (s *HTTPServer) ArtistDelete(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	artist, err := s.artists.FindOneByID(id)
	if err != nil {
		return err
	}
	if artist == nil {
		return c.NoContent(http.StatusNotFound)
	}

	if !s.artists.CanBeDeleted(artist) {
		return echo.NewHTTPError(http.StatusConflict, "artist is still referenced by tasks")
	}

	if err := s.artists.Delete(artist); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *HTTPServer) GenreIndex(c echo.Context) error {
	page, err := s.genres.GetPaginatedList(GetPageParam(c))
	if err != nil {
		return err
	}

	resp := PageResp[GenreResp]{
		Items:      make([]GenreResp, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	for i := range page.Items {
		resp.Items[i] = GenreResp{ID: page.Items[i].ID, Name: page.Items[i].Name}
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) GenreShow(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	genre, err := s.genres.FindOneByID(id)
	if err != nil {
		return err
	}
	if genre == nil {
		return c.NoContent(http.StatusNotFound)
	}
	return c.JSON(http.StatusOK, GenreResp{ID: genre.ID, Name: genre.Name})
}

func (s *HTTPServer) GenreCreate(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	req := GenreReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	genre := db.Genre{Name: req.Name}
	if err := s.genres.Save(&genre); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, GenreResp{ID: genre.ID, Name: genre.Name})
}

func (s *HTTPServer) GenreUpdate(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	genre, err := s.genres.FindOneByID(id)
	if err != nil {
		return err
	}
	if genre == nil {
		return c.NoContent(http.StatusNotFound)
	}

	req := GenreReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	genre.Name = req.Name
	if err := s.genres.Save(genre); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, GenreResp{ID: genre.ID, Name: genre.Name})
}

func (s *HTTPServer) GenreDelete(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	genre, err := s.genres.FindOneByID(id)
	if err != nil {
		return err
	}
	if genre == nil {
		return c.NoContent(http.StatusNotFound)
	}

	if !s.genres.CanBeDeleted(genre) {
		return echo.NewHTTPError(http.StatusConflict, "genre is still referenced by tasks")
	}

	if err := s.genres.Delete(genre); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
