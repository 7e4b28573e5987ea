package transport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/songlist-dev/songlist-back/internal/auth"
	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

type (
	TaskReq struct {
		Title      string  `json:"title" validate:"required"`
		CategoryID uint64  `json:"category_id" validate:"required"`
		ArtistID   *uint64 `json:"artist_id"`
		GenreID    *uint64 `json:"genre_id"`
		// Tags is the free-text comma-separated field; missing tags are
		// created during binding.
		Tags string `json:"tags"`
		// GuestEmail identifies an anonymous submitter on create.
		GuestEmail string `json:"guest_email" validate:"omitempty,email"`
	}

	BlockReq struct {
		Blocked bool `json:"blocked"`
	}

	TaskResp struct {
		ID         uint64       `json:"id"`
		Title      string       `json:"title"`
		Blocked    bool         `json:"blocked"`
		CreatedAt  time.Time    `json:"created_at"`
		UpdatedAt  time.Time    `json:"updated_at"`
		Category   CategoryResp `json:"category"`
		Artist     *ArtistResp  `json:"artist,omitempty"`
		Genre      *GenreResp   `json:"genre,omitempty"`
		OwnerID    *uint64      `json:"owner_id,omitempty"`
		OwnerEmail string       `json:"owner_email,omitempty"`
		Tags       []TagResp    `json:"tags"`
		TagsText   string       `json:"tags_text"`
	}

	TaskShowResp struct {
		Task     TaskResp              `json:"task"`
		Comments PageResp[CommentResp] `json:"comments"`
	}
)

func (s *HTTPServer) taskResp(task *db.Task) TaskResp {
	resp := TaskResp{
		ID:        task.ID,
		Title:     task.Title,
		Blocked:   task.Blocked,
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
		Category:  CategoryResp{ID: task.Category.ID, Title: task.Category.Title},
		OwnerID:   task.UserID,
		Tags:      make([]TagResp, len(task.Tags)),
		TagsText:  s.transformer.ToText(task.Tags),
	}
	if task.Artist != nil {
		resp.Artist = &ArtistResp{ID: task.Artist.ID, Name: task.Artist.Name}
	}
	if task.Genre != nil {
		resp.Genre = &GenreResp{ID: task.Genre.ID, Name: task.Genre.Name}
	}
	if task.User != nil {
		resp.OwnerEmail = task.User.Email
	}
	for i := range task.Tags {
		resp.Tags[i] = TagResp{ID: task.Tags[i].ID, Title: task.Tags[i].Title}
	}
	return resp
}

func (s *HTTPServer) TaskIndex(c echo.Context) error {
	filters := repository.TaskFilters{}
	if v, err := strconv.ParseUint(c.QueryParam("filters_category_id"), 10, 64); err == nil {
		filters.CategoryID = v
	}
	if v, err := strconv.ParseUint(c.QueryParam("filters_tag_id"), 10, 64); err == nil {
		filters.TagID = v
	}

	page, err := s.tasks.GetPaginatedList(GetPageParam(c), filters)
	if err != nil {
		return err
	}

	resp := PageResp[TaskResp]{
		Items:      make([]TaskResp, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	for i := range page.Items {
		resp.Items[i] = s.taskResp(&page.Items[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) TaskShow(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	task, err := s.tasks.FindOneByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return c.NoContent(http.StatusNotFound)
	}

	comments, err := s.comments.GetPaginatedListByTask(task.ID, GetPageParam(c))
	if err != nil {
		return err
	}

	resp := TaskShowResp{
		Task: s.taskResp(task),
		Comments: PageResp[CommentResp]{
			Items:      make([]CommentResp, len(comments.Items)),
			TotalCount: comments.TotalCount,
			Page:       comments.Page,
			PageSize:   comments.PageSize,
		},
	}
	for i := range comments.Items {
		resp.Comments.Items[i] = commentResp(&comments.Items[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// TaskCreate accepts both authenticated and anonymous submissions. Anonymous
// ones must carry a guest email, which is stored once per address.
func (s *HTTPServer) TaskCreate(c echo.Context) error {
	req := TaskReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	user := CurrentUser(c)
	if user == nil {
		if req.GuestEmail == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "guest_email is required for anonymous tasks")
		}
		if err := s.guests.Save(&db.GuestUser{Email: req.GuestEmail}); err != nil {
			return err
		}
	}

	tags, err := s.transformer.FromText(req.Tags)
	if err != nil {
		return err
	}

	task := db.Task{
		Title:      req.Title,
		CategoryID: req.CategoryID,
		ArtistID:   req.ArtistID,
		GenreID:    req.GenreID,
	}
	if user != nil {
		task.UserID = &user.ID
	}
	for i := range tags {
		task.AddTag(&tags[i])
	}

	if err := s.tasks.Save(&task); err != nil {
		return err
	}

	saved, err := s.tasks.FindOneByID(task.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.taskResp(saved))
}

func (s *HTTPServer) TaskUpdate(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	task, err := s.tasks.FindOneByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return c.NoContent(http.StatusNotFound)
	}

	if !s.voter.Vote(auth.ActionEdit, task, CurrentUser(c)) {
		return c.NoContent(http.StatusForbidden)
	}

	req := TaskReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	tags, err := s.transformer.FromText(req.Tags)
	if err != nil {
		return err
	}

	task.Title = req.Title
	task.CategoryID = req.CategoryID
	task.ArtistID = req.ArtistID
	task.GenreID = req.GenreID
	task.Tags = nil
	for i := range tags {
		task.AddTag(&tags[i])
	}

	if err := s.tasks.Save(task); err != nil {
		return err
	}

	saved, err := s.tasks.FindOneByID(task.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.taskResp(saved))
}

func (s *HTTPServer) TaskDelete(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	task, err := s.tasks.FindOneByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return c.NoContent(http.StatusNotFound)
	}

	if !s.voter.Vote(auth.ActionDelete, task, CurrentUser(c)) {
		return c.NoContent(http.StatusForbidden)
	}

	if err := s.tasks.Delete(task); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *HTTPServer) TaskBlock(c echo.Context) error {
	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	task, err := s.tasks.FindOneByID(id)
	if err != nil {
		return err
	}
	if task == nil {
		return c.NoContent(http.StatusNotFound)
	}

	if !s.voter.Vote(auth.ActionBlock, task, CurrentUser(c)) {
		return c.NoContent(http.StatusForbidden)
	}

	req := BlockReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	if err := s.tasks.SetBlocked(task, req.Blocked); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s.taskResp(task))
}
