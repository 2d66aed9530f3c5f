package router

import (
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	exercisehandler "exercise_tracker/internal/feature/exercises/transport/handler"
	userhandler "exercise_tracker/internal/feature/users/transport/handler"
	"exercise_tracker/internal/platform/http/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Users     *userhandler.UserHandler
	Exercises *exercisehandler.ExerciseHandler
	Health    gin.HandlerFunc
}

// Options configures the engine around the API routes.
type Options struct {
	Logger    *slog.Logger
	StaticDir string
	ViewsDir  string
	// Limiter enables per-IP rate limiting when non-nil.
	Limiter *middleware.IPRateLimiter
}

func NewRouter(h Handlers, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log))
	// any origin
	r.Use(cors.Default())
	if opts.Limiter != nil {
		r.Use(middleware.RateLimit(opts.Limiter))
	}

	// liveness and store reachability
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)

	r.Static("/public", opts.StaticDir)
	r.StaticFile("/", filepath.Join(opts.ViewsDir, "index.html"))

	users := r.Group("/api/users")
	{
		users.POST("", h.Users.Register)
		users.GET("", h.Users.List)
		users.POST("/:id/exercises", h.Exercises.Add)
		// alias of /logs, query string included
		users.GET("/:id/exercises", h.Exercises.Log)
		users.GET("/:id/logs", h.Exercises.Log)
	}

	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotFound, "not found")
	})

	return r
}
