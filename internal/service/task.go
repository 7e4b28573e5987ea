package service

import (
	"go.uber.org/zap"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

type TaskService struct {
	taskRepository *repository.TaskRepository
	logger         *zap.SugaredLogger
}

func NewTaskService(taskRepository *repository.TaskRepository, l *zap.SugaredLogger) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		logger:         l,
	}
}

func (s *TaskService) GetPaginatedList(page int, filters repository.TaskFilters) (*db.Page[db.Task], error) {
	return s.taskRepository.ListPage(page, filters)
}

func (s *TaskService) FindOneByID(id uint64) (*db.Task, error) {
	return s.taskRepository.FindOneByID(id)
}

func (s *TaskService) Save(task *db.Task) error {
	return s.taskRepository.Save(task)
}

func (s *TaskService) Delete(task *db.Task) error {
	return s.taskRepository.Delete(task)
}

func (s *TaskService) SetBlocked(task *db.Task, blocked bool) error {
	task.Blocked = blocked
	return s.taskRepository.Save(task)
}
