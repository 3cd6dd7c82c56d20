package di

import (
	"blogapi/application/ports"
	"blogapi/application/services"
	"blogapi/infrastructure/config"
	"blogapi/infrastructure/persistence/memory"
	"blogapi/interfaces/http/rest"
	"blogapi/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config      *config.Config
	Logger      *zap.Logger
	UserRepo    ports.UserRepository
	PostRepo    ports.PostRepository
	CommentRepo ports.CommentRepository
	Users       *services.UserService
	Posts       *services.PostService
	Comments    *services.CommentService
	Stats       *services.StatsService
	Metrics     *observability.Collector
	Router      *rest.Router
}

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMetrics creates the prometheus collector
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector(cfg.MetricsNamespace)
}

// ProvideUserRepository creates the in-memory user repository
func ProvideUserRepository(logger *zap.Logger) ports.UserRepository {
	return memory.NewUserRepository(logger)
}

// ProvidePostRepository creates the in-memory post repository
func ProvidePostRepository(logger *zap.Logger) ports.PostRepository {
	return memory.NewPostRepository(logger)
}

// ProvideCommentRepository creates the in-memory comment repository
func ProvideCommentRepository(logger *zap.Logger) ports.CommentRepository {
	return memory.NewCommentRepository(logger)
}

// ProvideUserService creates the user service
func ProvideUserService(users ports.UserRepository, logger *zap.Logger) *services.UserService {
	return services.NewUserService(users, logger)
}

// ProvidePostService creates the post service
func ProvidePostService(
	posts ports.PostRepository,
	users ports.UserRepository,
	comments ports.CommentRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *services.PostService {
	return services.NewPostService(posts, users, comments, metrics, logger)
}

// ProvideCommentService creates the comment service
func ProvideCommentService(
	comments ports.CommentRepository,
	posts ports.PostRepository,
	users ports.UserRepository,
	logger *zap.Logger,
) *services.CommentService {
	return services.NewCommentService(comments, posts, users, logger)
}

// ProvideStatsService creates the stats service
func ProvideStatsService(
	users ports.UserRepository,
	posts ports.PostRepository,
	comments ports.CommentRepository,
) *services.StatsService {
	return services.NewStatsService(users, posts, comments)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	users *services.UserService,
	posts *services.PostService,
	comments *services.CommentService,
	stats *services.StatsService,
	metrics *observability.Collector,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(cfg, users, posts, comments, stats, metrics, logger)
}
