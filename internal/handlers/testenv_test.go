package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/assistco/assist-api/internal/database"
	"github.com/assistco/assist-api/internal/middleware"
	"github.com/assistco/assist-api/internal/models"
	"github.com/assistco/assist-api/internal/repository"
	"github.com/assistco/assist-api/internal/services"
)

type testEnv struct {
	db               *gorm.DB
	router           *gin.Engine
	authService      *services.AuthService
	clientService    *services.ClientService
	taskService      *services.TaskService
	contactService   *services.ContactService
	assistantService *services.AssistantService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Gender{},
		&models.Profession{},
		&models.TaskType{},
		&models.Assistant{},
		&models.Client{},
		&models.Contact{},
		&models.Task{},
		&models.TaskContact{},
		&models.AuthToken{},
	)
	require.NoError(t, err)
	require.NoError(t, database.Seed(db))

	database.SetDB(db)

	refRepo := repository.NewReferenceRepository(db)
	clientRepo := repository.NewClientRepository(db)
	assistantRepo := repository.NewAssistantRepository(db)
	contactRepo := repository.NewContactRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	optionService := services.NewOptionService(refRepo)
	authService := services.NewAuthService(clientRepo, assistantRepo, tokenRepo, optionService)
	clientService := services.NewClientService(clientRepo, assistantRepo, authService, optionService)
	assistantService := services.NewAssistantService(assistantRepo, optionService, authService)
	taskService := services.NewTaskService(taskRepo, clientRepo, assistantRepo, contactRepo, optionService)
	contactService := services.NewContactService(contactRepo, clientRepo)

	authHandler := NewAuthHandler(authService)
	optionHandler := NewOptionHandler(optionService)
	clientHandler := NewClientHandler(clientService)
	assistantHandler := NewAssistantHandler(assistantService)
	taskHandler := NewTaskHandler(taskService)
	contactHandler := NewContactHandler(contactService)

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.POST("/signup", authHandler.Signup)

		options := api.Group("/options")
		{
			options.GET("/genders", optionHandler.ListGenders)
			options.GET("/professions", optionHandler.ListProfessions)
			options.GET("/task-types", optionHandler.ListTaskTypes)
		}

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

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return &testEnv{
		db:               db,
		router:           r,
		authService:      authService,
		clientService:    clientService,
		taskService:      taskService,
		contactService:   contactService,
		assistantService: assistantService,
	}
}

// request performs a JSON request against the test router.
func (env *testEnv) request(t *testing.T, method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// signupClient registers a client and returns its token.
func (env *testEnv) signupClient(t *testing.T, email, phone string) string {
	t.Helper()

	w := env.request(t, http.MethodPost, "/api/signup", "", map[string]string{
		"email":         email,
		"password":      "supersecret",
		"first_name":    "Test",
		"last_name":     "Client",
		"date_of_birth": "1990-01-01",
		"phone":         phone,
		"gender":        "female",
		"profession":    "engineer",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}
