package repositories

import (
	"prompt-manager/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	WithTx(tx *gorm.DB) CategoryRepository
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	GetAll() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error

	CreateSubcategory(subcategory *models.Subcategory) error
	GetSubcategoryByID(id uint) (*models.Subcategory, error)
	GetSubcategoryByName(categoryID uint, name string) (*models.Subcategory, error)
	GetSubcategories(categoryID uint) ([]models.Subcategory, error)
	GetAllSubcategories() ([]models.Subcategory, error)
	UpdateSubcategory(subcategory *models.Subcategory) error
	DeleteSubcategory(id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) WithTx(tx *gorm.DB) CategoryRepository {
	return &categoryRepository{db: tx}
}

func (r *categoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.Preload("Subcategories").First(&category, id).Error
	return &category, err
}

func (r *categoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	return &category, err
}

func (r *categoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Preload("Subcategories").Order("name asc").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

func (r *categoryRepository) CreateSubcategory(subcategory *models.Subcategory) error {
	return r.db.Create(subcategory).Error
}

func (r *categoryRepository) GetSubcategoryByID(id uint) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.First(&subcategory, id).Error
	return &subcategory, err
}

func (r *categoryRepository) GetSubcategoryByName(categoryID uint, name string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.Where("category_id = ? AND name = ?", categoryID, name).First(&subcategory).Error
	return &subcategory, err
}

func (r *categoryRepository) GetSubcategories(categoryID uint) ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.Where("category_id = ?", categoryID).Order("name asc").Find(&subcategories).Error
	return subcategories, err
}

func (r *categoryRepository) GetAllSubcategories() ([]models.Subcategory, error) {
	var subcategories []models.Subcategory
	err := r.db.Preload("Category").Order("name asc").Find(&subcategories).Error
	return subcategories, err
}

func (r *categoryRepository) UpdateSubcategory(subcategory *models.Subcategory) error {
	return r.db.Save(subcategory).Error
}

func (r *categoryRepository) DeleteSubcategory(id uint) error {
	return r.db.Delete(&models.Subcategory{}, id).Error
}
