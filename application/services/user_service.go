package services

import (
	"context"

	"blogapi/application/ports"
	"blogapi/domain/blog"

	"go.uber.org/zap"
)

// UserInput carries the boundary-validated fields of a user create or
// replace request.
type UserInput struct {
	Username string
	Email    string
	FullName string
	IsActive bool
}

// UserService implements the user operations.
type UserService struct {
	users  ports.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users ports.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// Create registers a new user. New users are always active.
func (s *UserService) Create(ctx context.Context, in UserInput) (*blog.User, error) {
	user := blog.NewUser(in.Username, in.Email, in.FullName)
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user registered",
		zap.String("userID", user.ID),
		zap.String("username", user.Username),
	)
	return user, nil
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id string) (*blog.User, error) {
	return s.users.Get(ctx, id)
}

// List returns users in insertion order with offset/limit slicing.
func (s *UserService) List(ctx context.Context, skip, limit int) ([]*blog.User, error) {
	return s.users.List(ctx, skip, limit)
}

// Replace fully replaces a user's mutable fields. Unlike posts, user
// updates are whole-record replacements.
func (s *UserService) Replace(ctx context.Context, id string, in UserInput) (*blog.User, error) {
	candidate := &blog.User{
		Username: in.Username,
		Email:    in.Email,
		FullName: in.FullName,
		IsActive: in.IsActive,
	}
	return s.users.Replace(ctx, id, candidate)
}

// Delete removes a user. Posts and comments authored by the user keep
// their author_id references.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.String("userID", id))
	return nil
}
