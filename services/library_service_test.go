package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-manager/models"
)

func TestExportLibrary(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice@example.com")
	bob := createTestUser(t, env.db, "bob@example.com")

	writing, err := env.categories.CreateCategory(models.CreateCategoryRequest{Name: "Writing"})
	require.NoError(t, err)
	guides, err := env.categories.CreateSubcategory(writing.ID, models.CreateSubcategoryRequest{
		Name: "Guides", CategoryID: writing.ID,
	})
	require.NoError(t, err)

	_, err = env.prompts.Create(models.CreatePromptRequest{
		Title:         "Blog outline",
		Context:       strPtr("You are an experienced editor."),
		CategoryID:    &writing.ID,
		SubcategoryID: &guides.ID,
		Tags:          []string{"writing", "draft"},
	}, alice.ID)
	require.NoError(t, err)

	// Another user's prompt must not leak into alice's export.
	_, err = env.prompts.Create(models.CreatePromptRequest{Title: "Bob's secret"}, bob.ID)
	require.NoError(t, err)

	payload, err := env.library.Export(alice.ID)
	require.NoError(t, err)

	assert.False(t, payload.ExportedAt.IsZero())
	assert.Equal(t, []models.ExportCategory{{Name: "Writing"}}, payload.Categories)
	assert.Equal(t, []models.ExportSubcategory{{Name: "Guides", Category: "Writing"}}, payload.Subcategories)
	assert.ElementsMatch(t, []string{"writing", "draft"}, payload.Tags)

	require.Len(t, payload.Prompts, 1)
	exported := payload.Prompts[0]
	assert.Equal(t, "Blog outline", exported.Title)
	require.NotNil(t, exported.Category)
	assert.Equal(t, "Writing", *exported.Category)
	require.NotNil(t, exported.Subcategory)
	assert.Equal(t, "Guides", *exported.Subcategory)
	assert.ElementsMatch(t, []string{"writing", "draft"}, exported.Tags)
	require.NotNil(t, exported.CreatedAt)
	require.NotNil(t, exported.UpdatedAt)
}

func TestImportRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	alice := createTestUser(t, env.db, "alice@example.com")
	carol := createTestUser(t, env.db, "carol@example.com")

	writing, err := env.categories.CreateCategory(models.CreateCategoryRequest{Name: "Writing"})
	require.NoError(t, err)

	_, err = env.prompts.Create(models.CreatePromptRequest{
		Title:      "Blog outline",
		CategoryID: &writing.ID,
		Tags:       []string{"writing"},
	}, alice.ID)
	require.NoError(t, err)
	_, err = env.prompts.Create(models.CreatePromptRequest{
		Title: "SQL tutor",
		Tags:  []string{"code"},
	}, alice.ID)
	require.NoError(t, err)

	payload, err := env.library.Export(alice.ID)
	require.NoError(t, err)

	result, err := env.library.Import(models.ImportPayload{Prompts: payload.Prompts}, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Skipped)

	imported, err := env.prompts.List(models.PromptListParams{Sort: "title"}, carol.ID)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	assert.Equal(t, "Blog outline", imported[0].Title)
	require.NotNil(t, imported[0].Category)
	assert.Equal(t, "Writing", imported[0].Category.Name)
	assert.ElementsMatch(t, []string{"writing"}, tagNames(imported[0].Tags))

	// Re-importing the same document only skips.
	again, err := env.library.Import(models.ImportPayload{Prompts: payload.Prompts}, carol.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Created)
	assert.Equal(t, 2, again.Skipped)

	// Category was resolved by name, not duplicated.
	assert.EqualValues(t, 1, countRows(t, env.db, &models.Category{}, "name = ?", "Writing"))
}
