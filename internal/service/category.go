package service

import (
	"go.uber.org/zap"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

type CategoryService struct {
	categoryRepository *repository.CategoryRepository
	taskRepository     *repository.TaskRepository
	logger             *zap.SugaredLogger
}

func NewCategoryService(categoryRepository *repository.CategoryRepository, taskRepository *repository.TaskRepository, l *zap.SugaredLogger) *CategoryService {
	return &CategoryService{
		categoryRepository: categoryRepository,
		taskRepository:     taskRepository,
		logger:             l,
	}
}

func (s *CategoryService) GetPaginatedList(page int) (*db.Page[db.Category], error) {
	return s.categoryRepository.ListPage(page)
}

func (s *CategoryService) FindOneByID(id uint64) (*db.Category, error) {
	return s.categoryRepository.FindOneByID(id)
}

func (s *CategoryService) Save(category *db.Category) error {
	return s.categoryRepository.Save(category)
}

// Delete removes the category without re-checking references; callers are
// expected to consult CanBeDeleted first.
func (s *CategoryService) Delete(category *db.Category) error {
	return s.categoryRepository.Delete(category)
}

// CanBeDeleted is true iff no task references the category. A failing count
// query counts as "cannot delete".
func (s *CategoryService) CanBeDeleted(category *db.Category) bool {
	count, err := s.taskRepository.CountByCategory(category)
	if err != nil {
		s.logger.Warnw("count tasks by category", "category_id", category.ID, "error", err)
		return false
	}
	return count <= 0
}
