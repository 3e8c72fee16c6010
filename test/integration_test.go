package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"prompt-manager/config"
	"prompt-manager/handlers"
	"prompt-manager/middleware"
	"prompt-manager/models"
	"prompt-manager/repositories"
	"prompt-manager/services"
)

type IntegrationTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
	token  string
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (suite *IntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		suite.T().Fatal("failed to open test database:", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		suite.T().Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := config.AutoMigrate(db); err != nil {
		suite.T().Fatal("failed to migrate test database:", err)
	}

	suite.db = db
	suite.setupRouter()
}

func (suite *IntegrationTestSuite) setupRouter() {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(suite.db)
	promptRepo := repositories.NewPromptRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)
	categoryRepo := repositories.NewCategoryRepository(suite.db)
	versionRepo := repositories.NewPromptVersionRepository(suite.db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	promptService := services.NewPromptService(suite.db, promptRepo, tagRepo, categoryRepo, versionRepo)
	tagService := services.NewTagService(tagRepo)
	categoryService := services.NewCategoryService(categoryRepo, promptRepo)
	libraryService := services.NewLibraryService(promptService, promptRepo, categoryRepo, tagRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	promptHandler := handlers.NewPromptHandler(promptService)
	tagHandler := handlers.NewTagHandler(tagService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	libraryHandler := handlers.NewLibraryHandler(libraryService)

	router := gin.New()

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/auth/me", authHandler.Me)

			prompts := protected.Group("/prompts")
			{
				prompts.POST("", promptHandler.CreatePrompt)
				prompts.GET("", promptHandler.GetPrompts)
				prompts.GET("/:id", promptHandler.GetPrompt)
				prompts.PUT("/:id", promptHandler.UpdatePrompt)
				prompts.DELETE("/:id", promptHandler.DeletePrompt)
				prompts.POST("/:id/duplicate", promptHandler.DuplicatePrompt)
				prompts.GET("/:id/versions", promptHandler.GetPromptVersions)
			}

			categories := protected.Group("/categories")
			{
				categories.GET("", categoryHandler.GetCategories)
				categories.POST("", categoryHandler.CreateCategory)
				categories.PUT("/:id", categoryHandler.UpdateCategory)
				categories.DELETE("/:id", categoryHandler.DeleteCategory)
				categories.GET("/:id/subcategories", categoryHandler.GetSubcategories)
				categories.POST("/:id/subcategories", categoryHandler.CreateSubcategory)
			}

			subcategories := protected.Group("/subcategories")
			{
				subcategories.PUT("/:id", categoryHandler.UpdateSubcategory)
				subcategories.DELETE("/:id", categoryHandler.DeleteSubcategory)
			}

			tags := protected.Group("/tags")
			{
				tags.GET("", tagHandler.GetTags)
				tags.POST("", tagHandler.CreateTag)
				tags.DELETE("/:id", tagHandler.DeleteTag)
			}

			library := protected.Group("/library")
			{
				library.GET("/export", libraryHandler.Export)
				library.POST("/import", libraryHandler.Import)
			}
		}
	}

	suite.router = router
}

func (suite *IntegrationTestSuite) SetupTest() {
	// Clean all tables before each test
	for _, table := range []string{"prompt_versions", "prompt_tags", "prompts", "tags", "subcategories", "categories", "users"} {
		suite.db.Exec("DELETE FROM " + table)
	}

	suite.token = suite.registerAndLogin("alice@example.com")
}

func (suite *IntegrationTestSuite) registerAndLogin(email string) string {
	w := suite.request(http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":    email,
		"password": "password123",
	}, "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    email,
		"password": "password123",
	}, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var token models.TokenResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &token))
	suite.Require().NotEmpty(token.AccessToken)
	return token.AccessToken
}

func (suite *IntegrationTestSuite) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) TestRequiresToken() {
	w := suite.request(http.MethodGet, "/api/prompts", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *IntegrationTestSuite) TestRegisterDuplicateEmail() {
	w := suite.request(http.MethodPost, "/api/auth/register", map[string]interface{}{
		"email":    "alice@example.com",
		"password": "password123",
	}, "")
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *IntegrationTestSuite) TestPromptLifecycle() {
	// Create
	w := suite.request(http.MethodPost, "/api/prompts", map[string]interface{}{
		"title": "Blog outline",
		"tags":  []string{"writing", "draft"},
	}, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created models.Prompt
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Len(created.Tags, 2)

	// Partial update: clear tags, everything else untouched
	w = suite.request(http.MethodPut, fmt.Sprintf("/api/prompts/%d", created.ID), map[string]interface{}{
		"tags": []string{},
	}, suite.token)
	suite.Require().Equal(http.StatusOK, w.Code)

	var updated models.Prompt
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal("Blog outline", updated.Title)
	suite.Empty(updated.Tags)

	// Duplicate
	w = suite.request(http.MethodPost, fmt.Sprintf("/api/prompts/%d/duplicate", created.ID), nil, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var duplicate models.Prompt
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &duplicate))
	suite.Equal("Blog outline (copie)", duplicate.Title)

	// Versions: create + update on the source, one on the copy
	w = suite.request(http.MethodGet, fmt.Sprintf("/api/prompts/%d/versions", created.ID), nil, suite.token)
	suite.Require().Equal(http.StatusOK, w.Code)

	var versions []models.PromptVersion
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &versions))
	suite.Len(versions, 2)

	// Delete
	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/prompts/%d", created.ID), nil, suite.token)
	suite.Equal(http.StatusNoContent, w.Code)

	w = suite.request(http.MethodGet, fmt.Sprintf("/api/prompts/%d", created.ID), nil, suite.token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestOwnershipHiddenAsNotFound() {
	w := suite.request(http.MethodPost, "/api/prompts", map[string]interface{}{
		"title": "Private prompt",
	}, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created models.Prompt
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))

	otherToken := suite.registerAndLogin("mallory@example.com")

	w = suite.request(http.MethodGet, fmt.Sprintf("/api/prompts/%d", created.ID), nil, otherToken)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/prompts/%d", created.ID), nil, otherToken)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *IntegrationTestSuite) TestListRejectsUnknownSort() {
	w := suite.request(http.MethodGet, "/api/prompts?sort=owner_id", nil, suite.token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *IntegrationTestSuite) TestExportImport() {
	w := suite.request(http.MethodPost, "/api/prompts", map[string]interface{}{
		"title": "Blog outline",
		"tags":  []string{"writing"},
	}, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodGet, "/api/library/export", nil, suite.token)
	suite.Require().Equal(http.StatusOK, w.Code)

	var exported models.ExportPayload
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &exported))
	suite.Require().Len(exported.Prompts, 1)
	suite.ElementsMatch([]string{"writing"}, exported.Tags)

	// Importing back into the same library only skips.
	w = suite.request(http.MethodPost, "/api/library/import", map[string]interface{}{
		"prompts": exported.Prompts,
	}, suite.token)
	suite.Require().Equal(http.StatusOK, w.Code)

	var result models.ImportResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(0, result.Created)
	suite.Equal(1, result.Skipped)

	// A fresh library imports everything.
	otherToken := suite.registerAndLogin("carol@example.com")
	w = suite.request(http.MethodPost, "/api/library/import", map[string]interface{}{
		"prompts": exported.Prompts,
	}, otherToken)
	suite.Require().Equal(http.StatusOK, w.Code)

	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(1, result.Created)
	suite.Equal(0, result.Skipped)
}

func (suite *IntegrationTestSuite) TestTaxonomyConflicts() {
	w := suite.request(http.MethodPost, "/api/categories", map[string]interface{}{"name": "Writing"}, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	var category models.Category
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &category))

	w = suite.request(http.MethodPost, "/api/prompts", map[string]interface{}{
		"title":       "Blog outline",
		"category_id": category.ID,
	}, suite.token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w = suite.request(http.MethodDelete, fmt.Sprintf("/api/categories/%d", category.ID), nil, suite.token)
	suite.Equal(http.StatusConflict, w.Code)

	w = suite.request(http.MethodPost, "/api/categories", map[string]interface{}{"name": "Writing"}, suite.token)
	suite.Equal(http.StatusConflict, w.Code)
}
