package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-manager/models"
)

func TestCreateCategoryRejectsDuplicateName(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.categories.CreateCategory(models.CreateCategoryRequest{Name: "Writing"})
	require.NoError(t, err)

	_, err = env.categories.CreateCategory(models.CreateCategoryRequest{Name: "Writing"})

	var duplicateErr models.ErrorDuplicate
	assert.ErrorAs(t, err, &duplicateErr)
}

func TestSubcategoryNamesAreScopedToCategory(t *testing.T) {
	env := newTestEnv(t)

	writing, err := env.categories.CreateCategory(models.CreateCategoryRequest{Name: "Writing"})
	require.NoError(t, err)
	coding, err := env.categories.CreateCategory(models.CreateCategoryRequest{Name: "Coding"})
	require.NoError(t, err)

	_, err = env.categories.CreateSubcategory(writing.ID, models.CreateSubcategoryRequest{
		Name: "Guides", CategoryID: writing.ID,
	})
	require.NoError(t, err)

	// Same name under another category is fine.
	_, err = env.categories.CreateSubcategory(coding.ID, models.CreateSubcategoryRequest{
		Name: "Guides", CategoryID: coding.ID,
	})
	require.NoError(t, err)

	_, err = env.categories.CreateSubcategory(writing.ID, models.CreateSubcategoryRequest{
		Name: "Guides", CategoryID: writing.ID,
	})
	var duplicateErr models.ErrorDuplicate
	assert.ErrorAs(t, err, &duplicateErr)
}

func TestCreateSubcategoryRejectsPathMismatch(t *testing.T) {
	env := newTestEnv(t)

	writing, err := env.categories.CreateCategory(models.CreateCategoryRequest{Name: "Writing"})
	require.NoError(t, err)

	_, err = env.categories.CreateSubcategory(writing.ID, models.CreateSubcategoryRequest{
		Name: "Guides", CategoryID: writing.ID + 1,
	})

	var validationErr models.ErrorValidation
	assert.ErrorAs(t, err, &validationErr)
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.db, "alice@example.com")

	writing, err := env.categories.CreateCategory(models.CreateCategoryRequest{Name: "Writing"})
	require.NoError(t, err)

	prompt, err := env.prompts.Create(models.CreatePromptRequest{
		Title:      "Blog outline",
		CategoryID: &writing.ID,
	}, user.ID)
	require.NoError(t, err)

	var conflictErr models.ErrorConflict
	assert.ErrorAs(t, env.categories.DeleteCategory(writing.ID), &conflictErr)

	require.NoError(t, env.prompts.Delete(prompt.ID, user.ID))
	assert.NoError(t, env.categories.DeleteCategory(writing.ID))
}

func TestDeleteSubcategoryBlockedWhileReferenced(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.db, "alice@example.com")

	writing, err := env.categories.CreateCategory(models.CreateCategoryRequest{Name: "Writing"})
	require.NoError(t, err)
	guides, err := env.categories.CreateSubcategory(writing.ID, models.CreateSubcategoryRequest{
		Name: "Guides", CategoryID: writing.ID,
	})
	require.NoError(t, err)

	prompt, err := env.prompts.Create(models.CreatePromptRequest{
		Title:         "Style guide",
		CategoryID:    &writing.ID,
		SubcategoryID: &guides.ID,
	}, user.ID)
	require.NoError(t, err)

	var conflictErr models.ErrorConflict
	assert.ErrorAs(t, env.categories.DeleteSubcategory(guides.ID), &conflictErr)

	require.NoError(t, env.prompts.Delete(prompt.ID, user.ID))
	assert.NoError(t, env.categories.DeleteSubcategory(guides.ID))
}

func TestDeleteTagBlockedWhileLinked(t *testing.T) {
	env := newTestEnv(t)
	user := createTestUser(t, env.db, "alice@example.com")

	prompt, err := env.prompts.Create(models.CreatePromptRequest{
		Title: "Blog outline",
		Tags:  []string{"writing"},
	}, user.ID)
	require.NoError(t, err)
	require.Len(t, prompt.Tags, 1)
	tagID := prompt.Tags[0].ID

	var conflictErr models.ErrorConflict
	assert.ErrorAs(t, env.tags.DeleteTag(tagID), &conflictErr)

	_, err = env.prompts.Update(prompt.ID, models.UpdatePromptRequest{
		Tags: models.Optional[[]string]{Set: true, Value: &[]string{}},
	}, user.ID)
	require.NoError(t, err)

	assert.NoError(t, env.tags.DeleteTag(tagID))
}

func TestDeleteMissingTagIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	var notFound models.ErrorNotFound
	assert.ErrorAs(t, env.tags.DeleteTag(42), &notFound)
}
