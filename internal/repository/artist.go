package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type ArtistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(client *gorm.DB) *ArtistRepository {
	return &ArtistRepository{db: client}
}

func (r *ArtistRepository) ListPage(page int) (*db.Page[db.Artist], error) {
	return paginate[db.Artist](r.db.Model(&db.Artist{}), "updated_at DESC", page)
}

func (r *ArtistRepository) FindOneByID(id uint64) (*db.Artist, error) {
	artist := db.Artist{}
	res := r.db.First(&artist, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &artist, nil
}

func (r *ArtistRepository) Save(artist *db.Artist) error {
	return r.db.Save(artist).Error
}

func (r *ArtistRepository) Delete(artist *db.Artist) error {
	return r.db.Delete(artist).Error
}
