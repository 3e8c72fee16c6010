package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"prompt-manager/config"
	"prompt-manager/models"
	"prompt-manager/repositories"
)

type testEnv struct {
	db         *gorm.DB
	prompts    PromptService
	tags       TagService
	categories CategoryService
	library    LibraryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled :memory: connection per goroutine would each get its own
	// database; pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.AutoMigrate(db))

	promptRepo := repositories.NewPromptRepository(db)
	tagRepo := repositories.NewTagRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	versionRepo := repositories.NewPromptVersionRepository(db)

	prompts := NewPromptService(db, promptRepo, tagRepo, categoryRepo, versionRepo)

	return &testEnv{
		db:         db,
		prompts:    prompts,
		tags:       NewTagService(tagRepo),
		categories: NewCategoryService(categoryRepo, promptRepo),
		library:    NewLibraryService(prompts, promptRepo, categoryRepo, tagRepo),
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{Email: email, Password: "not-a-real-hash"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func strPtr(s string) *string { return &s }

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func countRows(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	tx := db.Model(model)
	if query != "" {
		tx = tx.Where(query, args...)
	}
	require.NoError(t, tx.Count(&count).Error)
	return count
}
