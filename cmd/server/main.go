package main

import (
	"context"
	"log"

	"github.com/Twix-Akshat/Todo-Demo/internal/cache"
	"github.com/Twix-Akshat/Todo-Demo/internal/config"
	"github.com/Twix-Akshat/Todo-Demo/internal/constants"
	"github.com/Twix-Akshat/Todo-Demo/internal/database"
	"github.com/Twix-Akshat/Todo-Demo/internal/handlers"
	"github.com/Twix-Akshat/Todo-Demo/internal/repository"
	"github.com/Twix-Akshat/Todo-Demo/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect the view cache. The app runs uncached if Redis is down.
	var views cache.Client
	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisHost + ":" + cfg.RedisPort,
	})
	viewCache := cache.New(redisClient, constants.ViewCachePrefix, constants.ViewCacheTTL)
	if err := viewCache.Ping(context.Background()); err != nil {
		log.Printf("Redis unavailable, view caching disabled: %v", err)
	} else {
		views = viewCache
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	// Initialize services
	taskService := services.NewTaskService(taskRepo, views)
	userService := services.NewUserService(userRepo, views)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(userRepo, taskRepo, categoryRepo, views)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Todo Demo is running",
		})
	})

	// Page routes
	r.GET("/", pageHandler.Dashboard)
	r.GET("/users", pageHandler.ListUsers)
	r.GET("/users/add", pageHandler.NewUserForm)
	r.GET("/users/edit/:id", pageHandler.EditUserForm)
	r.GET("/tasks/:userId", pageHandler.TaskList)
	r.GET("/tasks/:userId/new", pageHandler.NewTaskForm)
	r.GET("/tasks/:userId/edit/:id", pageHandler.EditTaskForm)

	// Mutation routes, invoked as form submission targets
	r.POST("/users", userHandler.Create)
	r.POST("/users/update", userHandler.Update)
	r.POST("/users/delete", userHandler.Delete)
	r.POST("/tasks", taskHandler.Create)
	r.POST("/tasks/update", taskHandler.Update)
	r.POST("/tasks/delete", taskHandler.Delete)
	r.POST("/tasks/complete", taskHandler.Complete)

	// Start server
	log.Printf("Server starting on %s", cfg.ServerAddr)
	if err := r.Run(cfg.ServerAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
