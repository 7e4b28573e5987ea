package repository

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/songlist-dev/songlist-back/internal/db"
)

var Module = fx.Provide(
	NewTaskRepository,
	NewCategoryRepository,
	NewArtistRepository,
	NewGenreRepository,
	NewTagRepository,
	NewCommentRepository,
	NewUserRepository,
	NewGuestUserRepository,
)

// paginate counts the query's full result set and fetches one fixed-size
// page of it. Pages outside the valid range come back empty, not as errors.
func paginate[T any](query *gorm.DB, order string, page int) (*db.Page[T], error) {
	result := &db.Page[T]{
		Items:    make([]T, 0),
		Page:     page,
		PageSize: db.ItemsPerPage,
	}

	if err := query.Session(&gorm.Session{}).Count(&result.TotalCount).Error; err != nil {
		return nil, err
	}

	if page < 1 {
		return result, nil
	}

	res := query.Session(&gorm.Session{}).
		Order(order).
		Offset((page - 1) * db.ItemsPerPage).
		Limit(db.ItemsPerPage).
		Find(&result.Items)
	if res.Error != nil {
		return nil, res.Error
	}

	return result, nil
}
