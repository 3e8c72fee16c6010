package repositories

import (
	"prompt-manager/models"

	"gorm.io/gorm"
)

type PromptVersionRepository interface {
	WithTx(tx *gorm.DB) PromptVersionRepository
	Create(version *models.PromptVersion) error
	GetByPromptID(promptID uint) ([]models.PromptVersion, error)
	DeleteByPromptID(promptID uint) error
}

type promptVersionRepository struct {
	db *gorm.DB
}

func NewPromptVersionRepository(db *gorm.DB) PromptVersionRepository {
	return &promptVersionRepository{db: db}
}

func (r *promptVersionRepository) WithTx(tx *gorm.DB) PromptVersionRepository {
	return &promptVersionRepository{db: tx}
}

func (r *promptVersionRepository) Create(version *models.PromptVersion) error {
	return r.db.Create(version).Error
}

func (r *promptVersionRepository) GetByPromptID(promptID uint) ([]models.PromptVersion, error) {
	var versions []models.PromptVersion
	err := r.db.Where("prompt_id = ?", promptID).
		Order("created_at asc, id asc").
		Find(&versions).Error
	return versions, err
}

func (r *promptVersionRepository) DeleteByPromptID(promptID uint) error {
	return r.db.Where("prompt_id = ?", promptID).Delete(&models.PromptVersion{}).Error
}
