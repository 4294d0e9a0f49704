package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/shareit-app/backend/internal/domain/user"
)

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UpdateUserRequest is the partial-update payload; blank fields are kept.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserView is the response representation of a user.
type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserService implements user account management.
type UserService struct {
	users  user.Repository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users user.Repository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// CreateUser registers a new user. A duplicate email is a conflict.
func (s *UserService) CreateUser(ctx context.Context, req CreateUserRequest) (*UserView, error) {
	u, err := user.New(req.Name, req.Email)
	if err != nil {
		return nil, err
	}
	saved, err := s.users.Save(ctx, u)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.Int64("user_id", saved.ID))
	result := toUserView(saved)
	return &result, nil
}

// UpdateUser applies a partial update to the user's profile.
func (s *UserService) UpdateUser(ctx context.Context, userID int64, req UpdateUserRequest) (*UserView, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.ApplyPatch(req.Name, req.Email)
	updated, err := s.users.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	result := toUserView(updated)
	return &result, nil
}

// GetUser retrieves a user by id.
func (s *UserService) GetUser(ctx context.Context, userID int64) (*UserView, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := toUserView(u)
	return &result, nil
}

// ListUsers retrieves every registered user.
func (s *UserService) ListUsers(ctx context.Context) ([]UserView, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]UserView, len(users))
	for i, u := range users {
		views[i] = toUserView(u)
	}
	return views, nil
}

// DeleteUser removes a user by id.
func (s *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Int64("user_id", userID))
	return nil
}

func toUserView(u *user.User) UserView {
	return UserView{ID: u.ID, Name: u.Name, Email: u.Email}
}
