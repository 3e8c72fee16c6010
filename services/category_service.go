package services

import (
	"errors"

	"gorm.io/gorm"

	"prompt-manager/models"
	"prompt-manager/repositories"
)

type CategoryService interface {
	GetCategories() ([]models.Category, error)
	CreateCategory(req models.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(id uint, req models.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(id uint) error

	GetSubcategories(categoryID uint) ([]models.Subcategory, error)
	CreateSubcategory(categoryID uint, req models.CreateSubcategoryRequest) (*models.Subcategory, error)
	UpdateSubcategory(id uint, req models.CreateSubcategoryRequest) (*models.Subcategory, error)
	DeleteSubcategory(id uint) error
}

type categoryService struct {
	categoryRepo repositories.CategoryRepository
	promptRepo   repositories.PromptRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, promptRepo repositories.PromptRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		promptRepo:   promptRepo,
	}
}

func (s *categoryService) GetCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

func (s *categoryService) CreateCategory(req models.CreateCategoryRequest) (*models.Category, error) {
	_, err := s.categoryRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.ErrorDuplicate{Message: "a category with this name already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := &models.Category{Name: req.Name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(id uint, req models.CreateCategoryRequest) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "category not found"}
		}
		return nil, err
	}

	existing, err := s.categoryRepo.GetByName(req.Name)
	if err == nil && existing.ID != id {
		return nil, models.ErrorDuplicate{Message: "a category with this name already exists"}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category.Name = req.Name
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(id uint) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "category not found"}
		}
		return err
	}

	count, err := s.promptRepo.CountByCategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrorConflict{Message: "cannot delete a category that is used by prompts"}
	}

	return s.categoryRepo.Delete(id)
}

func (s *categoryService) GetSubcategories(categoryID uint) ([]models.Subcategory, error) {
	return s.categoryRepo.GetSubcategories(categoryID)
}

func (s *categoryService) CreateSubcategory(categoryID uint, req models.CreateSubcategoryRequest) (*models.Subcategory, error) {
	if categoryID != req.CategoryID {
		return nil, models.ErrorValidation{Message: "payload category does not match path parameter"}
	}

	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "category not found"}
		}
		return nil, err
	}

	_, err := s.categoryRepo.GetSubcategoryByName(categoryID, req.Name)
	if err == nil {
		return nil, models.ErrorDuplicate{Message: "a subcategory with this name already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subcategory := &models.Subcategory{Name: req.Name, CategoryID: categoryID}
	if err := s.categoryRepo.CreateSubcategory(subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

func (s *categoryService) UpdateSubcategory(id uint, req models.CreateSubcategoryRequest) (*models.Subcategory, error) {
	subcategory, err := s.categoryRepo.GetSubcategoryByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "subcategory not found"}
		}
		return nil, err
	}

	existing, err := s.categoryRepo.GetSubcategoryByName(req.CategoryID, req.Name)
	if err == nil && existing.ID != id {
		return nil, models.ErrorDuplicate{Message: "a subcategory with this name already exists"}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	subcategory.Name = req.Name
	subcategory.CategoryID = req.CategoryID
	if err := s.categoryRepo.UpdateSubcategory(subcategory); err != nil {
		return nil, err
	}
	return subcategory, nil
}

func (s *categoryService) DeleteSubcategory(id uint) error {
	if _, err := s.categoryRepo.GetSubcategoryByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "subcategory not found"}
		}
		return err
	}

	count, err := s.promptRepo.CountBySubcategory(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return models.ErrorConflict{Message: "cannot delete a subcategory that is used by prompts"}
	}

	return s.categoryRepo.DeleteSubcategory(id)
}
