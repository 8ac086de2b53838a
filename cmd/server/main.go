package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/assistco/assist-api/internal/config"
	"github.com/assistco/assist-api/internal/database"
	"github.com/assistco/assist-api/internal/handlers"
	"github.com/assistco/assist-api/internal/middleware"
	"github.com/assistco/assist-api/internal/repository"
	"github.com/assistco/assist-api/internal/services"
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

	// Seed reference data
	if err := database.Seed(database.GetDB()); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	refRepo := repository.NewReferenceRepository(db)
	clientRepo := repository.NewClientRepository(db)
	assistantRepo := repository.NewAssistantRepository(db)
	contactRepo := repository.NewContactRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Initialize services
	optionService := services.NewOptionService(refRepo)
	authService := services.NewAuthService(clientRepo, assistantRepo, tokenRepo, optionService)
	clientService := services.NewClientService(clientRepo, assistantRepo, authService, optionService)
	assistantService := services.NewAssistantService(assistantRepo, optionService, authService)
	taskService := services.NewTaskService(taskRepo, clientRepo, assistantRepo, contactRepo, optionService)
	contactService := services.NewContactService(contactRepo, clientRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	optionHandler := handlers.NewOptionHandler(optionService)
	clientHandler := handlers.NewClientHandler(clientService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	taskHandler := handlers.NewTaskHandler(taskService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Assist API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Public routes
		api.POST("/login", authHandler.Login)
		api.POST("/signup", authHandler.Signup)

		options := api.Group("/options")
		{
			options.GET("/genders", optionHandler.ListGenders)
			options.GET("/professions", optionHandler.ListProfessions)
			options.GET("/task-types", optionHandler.ListTaskTypes)
		}

		// Protected routes
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(authService))
		{
			authed.DELETE("/logout", authHandler.Logout)

			authed.GET("/clients", clientHandler.List)
			authed.POST("/clients", clientHandler.Create)
			authed.GET("/clients/:client_id", clientHandler.Get)
			authed.PATCH("/clients/:client_id", clientHandler.Patch)
			authed.DELETE("/clients/:client_id", clientHandler.Delete)

			authed.GET("/clients/:client_id/tasks", taskHandler.ListByClient)
			authed.GET("/clients/:client_id/tasks/:task_id", taskHandler.GetClientTask)
			authed.PATCH("/clients/:client_id/tasks/:task_id", taskHandler.PatchClientTask)
			authed.DELETE("/clients/:client_id/tasks/:task_id", taskHandler.DeleteClientTask)

			authed.GET("/tasks", taskHandler.List)
			authed.POST("/tasks", taskHandler.Create)
			authed.GET("/tasks/:task_id/contacts", taskHandler.ListContacts)
			authed.POST("/tasks/:task_id/contacts", taskHandler.AddContacts)

			authed.POST("/contacts", contactHandler.Create)
			authed.GET("/contacts/:contact_id", contactHandler.Get)
			authed.PATCH("/contacts/:contact_id", contactHandler.Patch)
			authed.DELETE("/contacts/:contact_id", contactHandler.Delete)

			authed.GET("/assistants", assistantHandler.List)
			authed.POST("/assistants", assistantHandler.Create)
			authed.GET("/assistants/:assistant_id", assistantHandler.Get)
			authed.PATCH("/assistants/:assistant_id", assistantHandler.Patch)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
