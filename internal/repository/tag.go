package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(client *gorm.DB) *TagRepository {
	return &TagRepository{db: client}
}

func (r *TagRepository) ListPage(page int) (*db.Page[db.Tag], error) {
	return paginate[db.Tag](r.db.Model(&db.Tag{}), "id ASC", page)
}

func (r *TagRepository) FindOneByID(id uint64) (*db.Tag, error) {
	tag := db.Tag{}
	res := r.db.First(&tag, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &tag, nil
}

// FindOneByTitle matches the title exactly, whitespace included.
func (r *TagRepository) FindOneByTitle(title string) (*db.Tag, error) {
	tag := db.Tag{}
	res := r.db.Where("title = ?", title).First(&tag)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &tag, nil
}

func (r *TagRepository) Save(tag *db.Tag) error {
	return r.db.Save(tag).Error
}

func (r *TagRepository) Delete(tag *db.Tag) error {
	return r.db.Select(clause.Associations).Delete(tag).Error
}
