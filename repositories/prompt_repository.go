package repositories

import (
	"strings"

	"prompt-manager/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PromptRepository interface {
	WithTx(tx *gorm.DB) PromptRepository
	Create(prompt *models.Prompt) error
	Save(prompt *models.Prompt) error
	Delete(id uint) error
	GetByIDForOwner(id, ownerID uint) (*models.Prompt, error)
	GetByTitleForOwner(title string, ownerID uint) (*models.Prompt, error)
	GetList(ownerID uint, params models.PromptListParams, orderClause string) ([]models.Prompt, error)
	GetAllForOwner(ownerID uint) ([]models.Prompt, error)

	GetTagLinks(promptID uint) ([]models.PromptTagLink, error)
	CreateTagLink(link *models.PromptTagLink) error
	DeleteTagLink(promptID, tagID uint) error
	DeleteTagLinks(promptID uint) error

	CountByCategory(categoryID uint) (int64, error)
	CountBySubcategory(subcategoryID uint) (int64, error)
}

type promptRepository struct {
	db *gorm.DB
}

func NewPromptRepository(db *gorm.DB) PromptRepository {
	return &promptRepository{db: db}
}

func (r *promptRepository) WithTx(tx *gorm.DB) PromptRepository {
	return &promptRepository{db: tx}
}

func (r *promptRepository) Create(prompt *models.Prompt) error {
	// Tag links and versions are written separately by the pipeline.
	return r.db.Omit(clause.Associations).Create(prompt).Error
}

func (r *promptRepository) Save(prompt *models.Prompt) error {
	return r.db.Omit(clause.Associations).Save(prompt).Error
}

func (r *promptRepository) Delete(id uint) error {
	return r.db.Delete(&models.Prompt{}, id).Error
}

func (r *promptRepository) GetByIDForOwner(id, ownerID uint) (*models.Prompt, error) {
	var prompt models.Prompt
	err := r.db.Preload("Category").
		Preload("Subcategory").
		Preload("Tags").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&prompt).Error
	return &prompt, err
}

func (r *promptRepository) GetByTitleForOwner(title string, ownerID uint) (*models.Prompt, error) {
	var prompt models.Prompt
	err := r.db.Where("title = ? AND owner_id = ?", title, ownerID).First(&prompt).Error
	return &prompt, err
}

func (r *promptRepository) GetList(ownerID uint, params models.PromptListParams, orderClause string) ([]models.Prompt, error) {
	var prompts []models.Prompt

	query := r.db.Model(&models.Prompt{}).
		Preload("Category").
		Preload("Subcategory").
		Preload("Tags").
		Where("prompts.owner_id = ?", ownerID)

	if params.Search != "" {
		term := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where(
			"LOWER(prompts.title) LIKE ? OR LOWER(prompts.description) LIKE ? OR LOWER(prompts.context) LIKE ? OR LOWER(prompts.objective) LIKE ? OR LOWER(prompts.expected_result) LIKE ?",
			term, term, term, term, term,
		)
	}

	if params.CategoryID > 0 {
		query = query.Where("prompts.category_id = ?", params.CategoryID)
	}
	if params.SubcategoryID > 0 {
		query = query.Where("prompts.subcategory_id = ?", params.SubcategoryID)
	}
	if params.TargetModel != "" {
		query = query.Where("prompts.target_model = ?", params.TargetModel)
	}
	if params.Language != "" {
		query = query.Where("prompts.language = ?", params.Language)
	}

	if params.Tag != "" {
		query = query.Joins("JOIN prompt_tags ON prompt_tags.prompt_id = prompts.id").
			Joins("JOIN tags ON tags.id = prompt_tags.tag_id").
			Where("tags.name = ?", params.Tag)
	}

	err := query.Order(orderClause).Find(&prompts).Error
	return prompts, err
}

func (r *promptRepository) GetAllForOwner(ownerID uint) ([]models.Prompt, error) {
	var prompts []models.Prompt
	err := r.db.Preload("Category").
		Preload("Subcategory").
		Preload("Tags").
		Where("owner_id = ?", ownerID).
		Order("id asc").
		Find(&prompts).Error
	return prompts, err
}

func (r *promptRepository) GetTagLinks(promptID uint) ([]models.PromptTagLink, error) {
	var links []models.PromptTagLink
	err := r.db.Preload("Tag").Where("prompt_id = ?", promptID).Find(&links).Error
	return links, err
}

func (r *promptRepository) CreateTagLink(link *models.PromptTagLink) error {
	return r.db.Create(link).Error
}

func (r *promptRepository) DeleteTagLink(promptID, tagID uint) error {
	return r.db.Where("prompt_id = ? AND tag_id = ?", promptID, tagID).Delete(&models.PromptTagLink{}).Error
}

func (r *promptRepository) DeleteTagLinks(promptID uint) error {
	return r.db.Where("prompt_id = ?", promptID).Delete(&models.PromptTagLink{}).Error
}

func (r *promptRepository) CountByCategory(categoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Prompt{}).Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *promptRepository) CountBySubcategory(subcategoryID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Prompt{}).Where("subcategory_id = ?", subcategoryID).Count(&count).Error
	return count, err
}
