package repository

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/songlist-dev/songlist-back/internal/db"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(client *gorm.DB) *UserRepository {
	return &UserRepository{db: client}
}

func (r *UserRepository) ListPage(page int) (*db.Page[db.User], error) {
	return paginate[db.User](r.db.Model(&db.User{}), "id ASC", page)
}

func (r *UserRepository) FindOneByID(id uint64) (*db.User, error) {
	user := db.User{}
	res := r.db.First(&user, id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &user, nil
}

func (r *UserRepository) FindOneByEmail(email string) (*db.User, error) {
	user := db.User{}
	res := r.db.Where("email = ?", email).First(&user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &user, nil
}

func (r *UserRepository) FindOneByToken(token string) (*db.User, error) {
	user := db.User{}
	res := r.db.Where("token = ?", token).First(&user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &user, nil
}

func (r *UserRepository) Save(user *db.User) error {
	return r.db.Save(user).Error
}

func (r *UserRepository) Delete(user *db.User) error {
	return r.db.Delete(user).Error
}
