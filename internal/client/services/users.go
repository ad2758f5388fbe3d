package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/geofield/borelog/internal/client/models"
	"github.com/geofield/borelog/internal/logging"
)

type usersAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, email, password string, role models.Role) (models.User, error)
	DeleteUser(ctx context.Context, email string) error
}

// UsersService manages accounts. Callers gate these operations on the admin
// role; the server enforces it regardless.
type UsersService struct {
	api    usersAPI
	logger logging.Logger
}

func NewUsersService(api usersAPI, logger logging.Logger) *UsersService {
	return &UsersService{api: api, logger: logger}
}

func (s *UsersService) List(ctx context.Context) ([]models.User, error) {
	return s.api.ListUsers(ctx)
}

func (s *UsersService) Create(ctx context.Context, email, password string, role models.Role) (models.User, error) {
	user, err := s.api.CreateUser(ctx, email, password, role)
	if err != nil {
		return models.User{}, err
	}
	s.logger.Info(ctx, "user created", "email", user.Email, "role", user.Role)
	return user, nil
}

// Delete removes the target account. Deleting the account you are logged in
// as is refused locally so an admin cannot strand their own session.
func (s *UsersService) Delete(ctx context.Context, actorEmail, targetEmail string) error {
	if strings.EqualFold(actorEmail, targetEmail) {
		return fmt.Errorf("cannot delete the currently signed-in account")
	}
	if err := s.api.DeleteUser(ctx, targetEmail); err != nil {
		return err
	}
	s.logger.Info(ctx, "user deleted", "email", targetEmail)
	return nil
}
