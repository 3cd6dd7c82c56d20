package blog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post is a published article. Likes and views are monotonically
// non-decreasing counters: views move only on single-post reads, never on
// list reads.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	AuthorID  string    `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Likes     int       `json:"likes"`
	Views     int       `json:"views"`
}

// PostPatch carries the optionally-present fields of a partial post update.
// A nil field means "leave unchanged".
type PostPatch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

// NewPost creates a post with a generated id and both timestamps set to now.
func NewPost(title, content string, tags []string, authorID string) *Post {
	if tags == nil {
		tags = []string{}
	}
	now := time.Now()
	return &Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Tags:      tags,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Apply overwrites only the fields present in the patch and refreshes
// UpdatedAt. Counters and identity fields are untouchable through patches.
func (p *Post) Apply(patch PostPatch) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Tags != nil {
		tags := *patch.Tags
		if tags == nil {
			tags = []string{}
		}
		p.Tags = tags
	}
	p.UpdatedAt = time.Now()
}

// HasTag reports whether any element of Tags equals tag, ignoring case.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the query appears, case-insensitively, as a
// substring of the title, the content, or any tag.
func (p *Post) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Content), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}
