package memory

import (
	"context"

	"blogapi/application/ports"
	"blogapi/domain/blog"
	"blogapi/pkg/errors"

	"go.uber.org/zap"
)

// UserRepository is the in-memory implementation of ports.UserRepository.
type UserRepository struct {
	users  *collection[blog.User]
	logger *zap.Logger
}

// NewUserRepository creates an empty user repository.
func NewUserRepository(logger *zap.Logger) *UserRepository {
	return &UserRepository{
		users:  newCollection[blog.User](),
		logger: logger,
	}
}

// Create inserts the user, rejecting duplicate usernames and emails. The
// two checks run in that order so the surfaced message names the first
// violated rule.
func (r *UserRepository) Create(ctx context.Context, user *blog.User) error {
	msg := r.users.insert(user.ID, user,
		uniqueness[blog.User]{
			violated: func(existing *blog.User) bool { return existing.Username == user.Username },
			message:  "username already exists",
		},
		uniqueness[blog.User]{
			violated: func(existing *blog.User) bool { return existing.Email == user.Email },
			message:  "email already registered",
		},
	)
	if msg != "" {
		return errors.NewConflictError(msg)
	}

	r.logger.Debug("user created", zap.String("userID", user.ID), zap.String("username", user.Username))
	return nil
}

// Get returns the user for id.
func (r *UserRepository) Get(ctx context.Context, id string) (*blog.User, error) {
	user := r.users.get(id)
	if user == nil {
		return nil, errors.NewNotFoundError("user")
	}
	return user, nil
}

// List returns users in insertion order, sliced to [skip, skip+limit).
func (r *UserRepository) List(ctx context.Context, skip, limit int) ([]*blog.User, error) {
	return paginate(r.users.list(nil), skip, limit), nil
}

// Replace overwrites the stored user's mutable fields with the candidate's.
// The id and creation timestamp are preserved.
func (r *UserRepository) Replace(ctx context.Context, id string, candidate *blog.User) (*blog.User, error) {
	user := r.users.mutate(id, func(u *blog.User) {
		u.Replace(candidate)
	})
	if user == nil {
		return nil, errors.NewNotFoundError("user")
	}
	return user, nil
}

// Delete removes the user. Posts and comments keep their author_id
// references untouched.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if !r.users.remove(id) {
		return errors.NewNotFoundError("user")
	}
	r.logger.Debug("user deleted", zap.String("userID", id))
	return nil
}

// Exists reports whether a user with id is stored.
func (r *UserRepository) Exists(ctx context.Context, id string) bool {
	return r.users.exists(id)
}

// Count returns the number of stored users.
func (r *UserRepository) Count(ctx context.Context) int {
	return r.users.len()
}

var _ ports.UserRepository = (*UserRepository)(nil)
