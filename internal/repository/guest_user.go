package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type GuestUserRepository struct {
	db *gorm.DB
}

func NewGuestUserRepository(client *gorm.DB) *GuestUserRepository {
	return &GuestUserRepository{db: client}
}

func (r *GuestUserRepository) ListPage(page int) (*db.Page[db.GuestUser], error) {
	return paginate[db.GuestUser](r.db.Model(&db.GuestUser{}), "id ASC", page)
}

func (r *GuestUserRepository) FindOneByEmail(email string) (*db.GuestUser, error) {
	guest := db.GuestUser{}
	res := r.db.Where("email = ?", email).First(&guest)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &guest, nil
}

func (r *GuestUserRepository) Save(guest *db.GuestUser) error {
	return r.db.Save(guest).Error
}

func (r *GuestUserRepository) Delete(guest *db.GuestUser) error {
	return r.db.Delete(guest).Error
}
