package transport

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type (
	CommentReq struct {
		Content string `json:"content" validate:"required"`
		Nick    string `json:"nick" validate:"required"`
	}

	CommentResp struct {
		ID       uint64  `json:"id"`
		Content  string  `json:"content"`
		Nick     string  `json:"nick"`
		AuthorID *uint64 `json:"author_id,omitempty"`
		TaskID   uint64  `json:"task_id"`
	}
)

func commentResp(comment *db.Comment) CommentResp {
	return CommentResp{
		ID:       comment.ID,
		Content:  comment.Content,
		Nick:     comment.Nick,
		AuthorID: comment.AuthorID,
		TaskID:   comment.TaskID,
	}
}

func (s *HTTPServer) CommentIndex(c echo.Context) error {
	page, err := s.comments.GetPaginatedList(GetPageParam(c))
	if err != nil {
		return err
	}

	resp := PageResp[CommentResp]{
		Items:      make([]CommentResp, len(page.Items)),
		TotalCount: page.TotalCount,
		Page:       page.Page,
		PageSize:   page.PageSize,
	}
	for i := range page.Items {
		resp.Items[i] = commentResp(&page.Items[i])
	}
	return c.JSON(http.StatusOK, resp)
}

// CommentCreate attaches a comment to a task; anonymous commenters are
// identified by their nick only.
func (s *HTTPServer) CommentCreate(c echo.Context) error {
	taskID, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}

	task, err := s.tasks.FindOneByID(taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return c.NoContent(http.StatusNotFound)
	}

	req := CommentReq{}
	if err := BindAndValidate(c, &req); err != nil {
		return err
	}

	comment := db.Comment{
		Content: req.Content,
		Nick:    req.Nick,
		TaskID:  task.ID,
	}
	if user := CurrentUser(c); user != nil {
		comment.AuthorID = &user.ID
	}

	if err := s.comments.Save(&comment); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, commentResp(&comment))
}

func (s *HTTPServer) CommentDelete(c echo.Context) error {
	if _, err := RequireAdmin(c); err != nil {
		return err
	}

	id, err := GetAndParseParam(c, "id")
	if err != nil {
		return err
	}
	comment, err := s.comments.FindOneByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return c.NoContent(http.StatusNotFound)
	}

	if err := s.comments.Delete(comment); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
