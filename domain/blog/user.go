package blog

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered author. Users are never related to their posts or
// comments beyond the author_id they are referenced by; deleting a user
// leaves those references dangling on purpose.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `json:"is_active"`
}

// NewUser creates a user with a generated id and creation timestamp.
func NewUser(username, email, fullName string) *User {
	return &User{
		ID:        uuid.New().String(),
		Username:  username,
		Email:     email,
		FullName:  fullName,
		CreatedAt: time.Now(),
		IsActive:  true,
	}
}

// Replace overwrites every mutable field from the candidate user, keeping
// the stored id and creation timestamp. User updates are full replacements,
// not patches.
func (u *User) Replace(candidate *User) {
	u.Username = candidate.Username
	u.Email = candidate.Email
	u.FullName = candidate.FullName
	u.IsActive = candidate.IsActive
}
