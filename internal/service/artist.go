package service

import (
	"go.uber.org/zap"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

type ArtistService struct {
	artistRepository *repository.ArtistRepository
	taskRepository   *repository.TaskRepository
	logger           *zap.SugaredLogger
}

func NewArtistService(artistRepository *repository.ArtistRepository, taskRepository *repository.TaskRepository, l *zap.SugaredLogger) *ArtistService {
	return &ArtistService{
		artistRepository: artistRepository,
		taskRepository:   taskRepository,
		logger:           l,
	}
}

func (s *ArtistService) GetPaginatedList(page int) (*db.Page[db.Artist], error) {
	return s.artistRepository.ListPage(page)
}

func (s *ArtistService) FindOneByID(id uint64) (*db.Artist, error) {
	return s.artistRepository.FindOneByID(id)
}

func (s *ArtistService) Save(artist *db.Artist) error {
	return s.artistRepository.Save(artist)
}

func (s *ArtistService) Delete(artist *db.Artist) error {
	return s.artistRepository.Delete(artist)
}

func (s *ArtistService) CanBeDeleted(artist *db.Artist) bool {
	count, err := s.taskRepository.CountByArtist(artist)
	if err != nil {
		s.logger.Warnw("count tasks by artist", "artist_id", artist.ID, "error", err)
		return false
	}
	return count <= 0
}
