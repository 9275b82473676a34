package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/votepress/backend/internal/config"
	"github.com/votepress/backend/internal/database"
	"github.com/votepress/backend/internal/handlers"
	"github.com/votepress/backend/internal/middleware"
	"github.com/votepress/backend/internal/notify"
)

// New builds the HTTP server over a connected database.
func New(cfg config.Config, db database.Service) *http.Server {
	router := NewRouter(cfg, db)

	return &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// NewRouter sets up all application routes
func NewRouter(cfg config.Config, db database.Service) *gin.Engine {
	gormDB := db.GetDB()
	handler := handlers.NewHandler(gormDB, notify.NewSMSNotifier(cfg))

	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Hello World"})
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, db.Health())
	})

	// Public routes
	r.POST("/users/", handler.User.Register)
	r.GET("/users/:id", handler.User.GetUser)
	r.POST("/login", handler.Auth.Login)

	// Protected routes (authentication required)
	posts := r.Group("/posts", middleware.AuthRequired(gormDB))
	{
		posts.GET("/", handler.Post.List)
		posts.POST("/", handler.Post.Create)
		posts.GET("/:id", handler.Post.Get)
		posts.PUT("/:id", handler.Post.Update)
		posts.DELETE("/:id", handler.Post.Delete)
	}

	r.POST("/vote/", middleware.AuthRequired(gormDB), handler.Vote.Cast)

	return r
}
