package service

import (
	"go.uber.org/zap"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

type GuestUserService struct {
	guestUserRepository *repository.GuestUserRepository
	logger              *zap.SugaredLogger
}

func NewGuestUserService(guestUserRepository *repository.GuestUserRepository, l *zap.SugaredLogger) *GuestUserService {
	return &GuestUserService{
		guestUserRepository: guestUserRepository,
		logger:              l,
	}
}

func (s *GuestUserService) GetPaginatedList(page int) (*db.Page[db.GuestUser], error) {
	return s.guestUserRepository.ListPage(page)
}

// Save persists the guest user unless a row with the same email already
// exists, in which case the new instance is silently discarded. The check is
// lookup-then-insert, so concurrent identical saves can still race.
func (s *GuestUserService) Save(guest *db.GuestUser) error {
	existing, err := s.guestUserRepository.FindOneByEmail(guest.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	return s.guestUserRepository.Save(guest)
}
