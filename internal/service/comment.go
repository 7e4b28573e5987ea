package service

import (
	"go.uber.org/zap"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

type CommentService struct {
	commentRepository *repository.CommentRepository
	logger            *zap.SugaredLogger
}

func NewCommentService(commentRepository *repository.CommentRepository, l *zap.SugaredLogger) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		logger:            l,
	}
}

func (s *CommentService) GetPaginatedList(page int) (*db.Page[db.Comment], error) {
	return s.commentRepository.ListPage(page)
}

func (s *CommentService) GetPaginatedListByTask(taskID uint64, page int) (*db.Page[db.Comment], error) {
	return s.commentRepository.ListPageByTask(taskID, page)
}

func (s *CommentService) FindOneByID(id uint64) (*db.Comment, error) {
	return s.commentRepository.FindOneByID(id)
}

func (s *CommentService) Save(comment *db.Comment) error {
	return s.commentRepository.Save(comment)
}

func (s *CommentService) Delete(comment *db.Comment) error {
	return s.commentRepository.Delete(comment)
}
