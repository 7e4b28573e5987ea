package service

import (
	"go.uber.org/zap"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

type TagService struct {
	tagRepository *repository.TagRepository
	logger        *zap.SugaredLogger
}

func NewTagService(tagRepository *repository.TagRepository, l *zap.SugaredLogger) *TagService {
	return &TagService{
		tagRepository: tagRepository,
		logger:        l,
	}
}

func (s *TagService) GetPaginatedList(page int) (*db.Page[db.Tag], error) {
	return s.tagRepository.ListPage(page)
}

func (s *TagService) FindOneByID(id uint64) (*db.Tag, error) {
	return s.tagRepository.FindOneByID(id)
}

func (s *TagService) FindOneByTitle(title string) (*db.Tag, error) {
	return s.tagRepository.FindOneByTitle(title)
}

func (s *TagService) Save(tag *db.Tag) error {
	return s.tagRepository.Save(tag)
}

func (s *TagService) Delete(tag *db.Tag) error {
	return s.tagRepository.Delete(tag)
}

// ResolveByTitle looks a tag up by its exact title and creates it when
// absent. The returned flag tells the caller whether a row was written, so
// side-effecting resolution stays distinguishable from a pure read.
func (s *TagService) ResolveByTitle(title string) (*db.Tag, bool, error) {
	tag, err := s.tagRepository.FindOneByTitle(title)
	if err != nil {
		return nil, false, err
	}
	if tag != nil {
		return tag, false, nil
	}

	tag = &db.Tag{Title: title}
	if err := s.tagRepository.Save(tag); err != nil {
		return nil, false, err
	}
	return tag, true, nil
}
