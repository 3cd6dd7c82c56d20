package blog

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to a post and is removed with it when the post is deleted.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment creates a comment with a generated id and creation timestamp.
func NewComment(content, postID, authorID string) *Comment {
	return &Comment{
		ID:        uuid.New().String(),
		Content:   content,
		PostID:    postID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
}
