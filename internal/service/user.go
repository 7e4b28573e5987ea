package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/songlist-dev/songlist-back/internal/db"
	"github.com/songlist-dev/songlist-back/internal/repository"
)

var (
	ErrLoginUserNotFound         = errors.New("user not found")
	ErrLoginPasswordDoesNotMatch = errors.New("password does not match")
	ErrEmailAlreadyRegistered    = errors.New("email already registered")
)

type UserService struct {
	userRepository *repository.UserRepository
	logger         *zap.SugaredLogger
}

func NewUserService(userRepository *repository.UserRepository, l *zap.SugaredLogger) *UserService {
	return &UserService{
		userRepository: userRepository,
		logger:         l,
	}
}

func (s *UserService) GetPaginatedList(page int) (*db.Page[db.User], error) {
	return s.userRepository.ListPage(page)
}

func (s *UserService) FindOneByID(id uint64) (*db.User, error) {
	return s.userRepository.FindOneByID(id)
}

func (s *UserService) FindOneByToken(token string) (*db.User, error) {
	return s.userRepository.FindOneByToken(token)
}

func (s *UserService) Save(user *db.User) error {
	return s.userRepository.Save(user)
}

func (s *UserService) Delete(user *db.User) error {
	return s.userRepository.Delete(user)
}

func (s *UserService) Register(email, pass string, roles []string) (*db.User, string, error) {
	existing, err := s.userRepository.FindOneByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailAlreadyRegistered
	}

	hash, err := s.bcryptGen(pass)
	if err != nil {
		return nil, "", errors.Wrap(err, "bcryptGen")
	}
	token := uuid.New().String()
	user := db.User{
		Email:    email,
		Password: hash,
		Token:    token,
		Roles:    roles,
	}
	if err := s.userRepository.Save(&user); err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

func (s *UserService) Login(email, pass string) (string, error) {
	user, err := s.userRepository.FindOneByEmail(email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrLoginUserNotFound
	}

	if err := s.bcryptCheck(user.Password, pass); err != nil {
		return "", ErrLoginPasswordDoesNotMatch
	}

	token := uuid.New().String()
	user.Token = token
	if err := s.userRepository.Save(user); err != nil {
		return "", errors.Wrap(err, "update token")
	}

	return token, nil
}

func (s *UserService) UpgradePassword(user *db.User, pass string) error {
	hash, err := s.bcryptGen(pass)
	if err != nil {
		return errors.Wrap(err, "bcryptGen")
	}
	user.Password = hash
	return s.userRepository.Save(user)
}

func (s *UserService) bcryptGen(pass string) (string, error) {
	passwordHashB, err := bcrypt.GenerateFromPassword([]byte(pass), 14)
	if err != nil {
		return "", errors.Wrap(err, "generate password hash")
	}
	return string(passwordHashB), nil
}

func (s *UserService) bcryptCheck(hash, pass string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
}
