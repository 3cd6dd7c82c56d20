package services

import (
	"context"

	"blogapi/application/ports"
)

// Stats aggregates totals over the full current collections. Averages are
// zero, not NaN, when there are no posts.
type Stats struct {
	TotalUsers          int     `json:"total_users"`
	TotalPosts          int     `json:"total_posts"`
	TotalComments       int     `json:"total_comments"`
	TotalLikes          int     `json:"total_likes"`
	TotalViews          int     `json:"total_views"`
	AverageLikesPerPost float64 `json:"average_likes_per_post"`
	AverageViewsPerPost float64 `json:"average_views_per_post"`
}

// StatsService computes aggregate statistics across all three collections.
type StatsService struct {
	users    ports.UserRepository
	posts    ports.PostRepository
	comments ports.CommentRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	users ports.UserRepository,
	posts ports.PostRepository,
	comments ports.CommentRepository,
) *StatsService {
	return &StatsService{
		users:    users,
		posts:    posts,
		comments: comments,
	}
}

// Collect computes the stats snapshot from current state.
func (s *StatsService) Collect(ctx context.Context) Stats {
	stats := Stats{
		TotalUsers:    s.users.Count(ctx),
		TotalPosts:    s.posts.Count(ctx),
		TotalComments: s.comments.Count(ctx),
	}

	stats.TotalLikes, stats.TotalViews = s.posts.CounterTotals(ctx)

	if stats.TotalPosts > 0 {
		stats.AverageLikesPerPost = float64(stats.TotalLikes) / float64(stats.TotalPosts)
		stats.AverageViewsPerPost = float64(stats.TotalViews) / float64(stats.TotalPosts)
	}
	return stats
}
