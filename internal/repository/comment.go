package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(client *gorm.DB) *CommentRepository {
	return &CommentRepository{db: client}
}

func (r *CommentRepository) ListPage(page int) (*db.Page[db.Comment], error) {
	return paginate[db.Comment](r.db.Model(&db.Comment{}).Preload("Author"), "id ASC", page)
}

func (r *CommentRepository) ListPageByTask(taskID uint64, page int) (*db.Page[db.Comment], error) {
	query := r.db.Model(&db.Comment{}).Preload("Author").Where("task_id = ?", taskID)
	return paginate[db.Comment](query, "id ASC", page)
}

func (r *CommentRepository) FindOneByID(id uint64) (*db.Comment, error) {
	comment := db.Comment{}
	res := r.db.Preload("Author").First(&comment, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &comment, nil
}

func (r *CommentRepository) Save(comment *db.Comment) error {
	return r.db.Save(comment).Error
}

func (r *CommentRepository) Delete(comment *db.Comment) error {
	return r.db.Delete(comment).Error
}
