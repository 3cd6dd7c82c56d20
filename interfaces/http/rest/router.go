package rest

import (
	"net/http"

	"blogapi/application/services"
	"blogapi/infrastructure/config"
	"blogapi/interfaces/http/rest/handlers"
	"blogapi/interfaces/http/rest/middleware"
	"blogapi/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	cfg      *config.Config
	users    *services.UserService
	posts    *services.PostService
	comments *services.CommentService
	stats    *services.StatsService
	metrics  *observability.Collector
	logger   *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	users *services.UserService,
	posts *services.PostService,
	comments *services.CommentService,
	stats *services.StatsService,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:      cfg,
		users:    users,
		posts:    posts,
		comments: comments,
		stats:    stats,
		metrics:  metrics,
		logger:   logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(rt.metrics.Registry(), promhttp.HandlerOpts{}))
	}

	metaHandler := handlers.NewMetaHandler(rt.stats, rt.logger)
	router.Get("/", metaHandler.Index)
	router.Get("/stats", metaHandler.Stats)

	// User endpoints
	router.Route("/users", func(r chi.Router) {
		userHandler := handlers.NewUserHandler(rt.users, rt.cfg, rt.logger)
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{userID}", userHandler.GetUser)
		r.Put("/{userID}", userHandler.UpdateUser)
		r.Delete("/{userID}", userHandler.DeleteUser)
	})

	// Post endpoints
	postHandler := handlers.NewPostHandler(rt.posts, rt.cfg, rt.logger)
	commentHandler := handlers.NewCommentHandler(rt.comments, rt.cfg, rt.logger)
	router.Route("/posts", func(r chi.Router) {
		r.Post("/", postHandler.CreatePost)
		r.Get("/", postHandler.ListPosts)
		r.Get("/{postID}", postHandler.GetPost)
		r.Put("/{postID}", postHandler.UpdatePost)
		r.Delete("/{postID}", postHandler.DeletePost)
		r.Post("/{postID}/like", postHandler.LikePost)
		r.Get("/{postID}/comments", commentHandler.ListPostComments)
	})

	// Comment endpoints
	router.Post("/comments", commentHandler.CreateComment)

	// Search endpoint
	router.Get("/search", postHandler.SearchPosts)

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// The store is in memory, so the service is ready as soon as it is up.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
