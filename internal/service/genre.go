package service

import (
	"go.uber.org/zap"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

type GenreService struct {
	genreRepository *repository.GenreRepository
	taskRepository  *repository.TaskRepository
	logger          *zap.SugaredLogger
}

func NewGenreService(genreRepository *repository.GenreRepository, taskRepository *repository.TaskRepository, l *zap.SugaredLogger) *GenreService {
	return &GenreService{
		genreRepository: genreRepository,
		taskRepository:  taskRepository,
		logger:          l,
	}
}

func (s *GenreService) GetPaginatedList(page int) (*db.Page[db.Genre], error) {
	return s.genreRepository.ListPage(page)
}

func (s *GenreService) FindOneByID(id uint64) (*db.Genre, error) {
	return s.genreRepository.FindOneByID(id)
}

func (s *GenreService) Save(genre *db.Genre) error {
	return s.genreRepository.Save(genre)
}

func (s *GenreService) Delete(genre *db.Genre) error {
	return s.genreRepository.Delete(genre)
}

func (s *GenreService) CanBeDeleted(genre *db.Genre) bool {
	count, err := s.taskRepository.CountByGenre(genre)
	if err != nil {
		s.logger.Warnw("count tasks by genre", "genre_id", genre.ID, "error", err)
		return false
	}
	return count <= 0
}
