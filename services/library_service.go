package services

import (
	"time"

	"github.com/samber/lo"

	"prompt-manager/models"
	"prompt-manager/repositories"
)

// LibraryService translates between the entity graph and the portable JSON
// library document scoped to one user.
type LibraryService interface {
	Export(ownerID uint) (*models.ExportPayload, error)
	Import(payload models.ImportPayload, ownerID uint) (*models.ImportResult, error)
}

type libraryService struct {
	promptService PromptService
	promptRepo    repositories.PromptRepository
	categoryRepo  repositories.CategoryRepository
	tagRepo       repositories.TagRepository
}

func NewLibraryService(
	promptService PromptService,
	promptRepo repositories.PromptRepository,
	categoryRepo repositories.CategoryRepository,
	tagRepo repositories.TagRepository,
) LibraryService {
	return &libraryService{
		promptService: promptService,
		promptRepo:    promptRepo,
		categoryRepo:  categoryRepo,
		tagRepo:       tagRepo,
	}
}

func (s *libraryService) Export(ownerID uint) (*models.ExportPayload, error) {
	prompts, err := s.promptRepo.GetAllForOwner(ownerID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	subcategories, err := s.categoryRepo.GetAllSubcategories()
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, err
	}

	payload := &models.ExportPayload{
		ExportedAt: time.Now().UTC(),
		Categories: lo.Map(categories, func(category models.Category, _ int) models.ExportCategory {
			return models.ExportCategory{Name: category.Name}
		}),
		Subcategories: lo.Map(subcategories, func(subcategory models.Subcategory, _ int) models.ExportSubcategory {
			exported := models.ExportSubcategory{Name: subcategory.Name}
			if subcategory.Category != nil {
				exported.Category = subcategory.Category.Name
			}
			return exported
		}),
		Tags: lo.Map(tags, func(tag models.Tag, _ int) string {
			return tag.Name
		}),
		Prompts: lo.Map(prompts, func(prompt models.Prompt, _ int) models.LibraryPrompt {
			return serializePrompt(prompt)
		}),
	}

	return payload, nil
}

func (s *libraryService) Import(payload models.ImportPayload, ownerID uint) (*models.ImportResult, error) {
	return s.promptService.BulkImport(payload.Prompts, ownerID)
}

func serializePrompt(prompt models.Prompt) models.LibraryPrompt {
	item := models.LibraryPrompt{
		Title:          prompt.Title,
		Description:    prompt.Description,
		Context:        prompt.Context,
		Role:           prompt.Role,
		Objective:      prompt.Objective,
		Style:          prompt.Style,
		Tone:           prompt.Tone,
		Audience:       prompt.Audience,
		ExpectedResult: prompt.ExpectedResult,
		TargetModel:    prompt.TargetModel,
		Language:       prompt.Language,
		Tags: lo.Map(prompt.Tags, func(tag models.Tag, _ int) string {
			return tag.Name
		}),
	}

	if prompt.Category != nil {
		item.Category = &prompt.Category.Name
	}
	if prompt.Subcategory != nil {
		item.Subcategory = &prompt.Subcategory.Name
	}

	createdAt := prompt.CreatedAt
	updatedAt := prompt.UpdatedAt
	item.CreatedAt = &createdAt
	item.UpdatedAt = &updatedAt

	return item
}
