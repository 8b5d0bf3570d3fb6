package service

import (
	"context"
	"errors"

	"inkwell/internal/auth"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/utils"

	"github.com/sirupsen/logrus"
)

// UserService handles signup and login.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Register creates a new user. The username-uniqueness check here is a
// read followed by a write, so two concurrent signups with the same name
// can both succeed. That matches the behavior this app has always had;
// closing it would need a unique constraint.
func (s *UserService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil, utils.NewAppError(utils.ErrUserExists, "The user already exists", nil)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewDatabaseError(err)
	}

	user := &models.User{
		Username: username,
		Password: auth.HashPassword(username, password),
		Email:    email,
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, utils.NewDatabaseError(err)
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID, "username": username}).Info("user registered")
	return user, nil
}

// Authenticate checks a username/password pair and returns the user on
// success. Unknown users and bad passwords report the same error.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewAppError(utils.ErrInvalidCredentials, "Invalid login", nil)
	}
	if err != nil {
		return nil, utils.NewDatabaseError(err)
	}
	if !auth.VerifyPassword(username, password, user.Password) {
		return nil, utils.NewAppError(utils.ErrInvalidCredentials, "Invalid login", nil)
	}
	return user, nil
}
