package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(client *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: client}
}

func (r *CategoryRepository) ListPage(page int) (*db.Page[db.Category], error) {
	return paginate[db.Category](r.db.Model(&db.Category{}), "updated_at DESC", page)
}

func (r *CategoryRepository) FindOneByID(id uint64) (*db.Category, error) {
	category := db.Category{}
	res := r.db.First(&category, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &category, nil
}

func (r *CategoryRepository) Save(category *db.Category) error {
	return r.db.Save(category).Error
}

func (r *CategoryRepository) Delete(category *db.Category) error {
	return r.db.Delete(category).Error
}
