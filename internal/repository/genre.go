package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type GenreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(client *gorm.DB) *GenreRepository {
	return &GenreRepository{db: client}
}

func (r *GenreRepository) ListPage(page int) (*db.Page[db.Genre], error) {
	return paginate[db.Genre](r.db.Model(&db.Genre{}), "updated_at DESC", page)
}

func (r *GenreRepository) FindOneByID(id uint64) (*db.Genre, error) {
	genre := db.Genre{}
	res := r.db.First(&genre, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &genre, nil
}

func (r *GenreRepository) Save(genre *db.Genre) error {
	return r.db.Save(genre).Error
}

func (r *GenreRepository) Delete(genre *db.Genre) error {
	return r.db.Delete(genre).Error
}
