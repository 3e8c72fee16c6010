package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"prompt-manager/models"
	"prompt-manager/repositories"
)

type TagService interface {
	CreateTag(req models.CreateTagRequest) (*models.Tag, error)
	GetTags() ([]models.Tag, error)
	DeleteTag(id uint) error
}

type tagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) CreateTag(req models.CreateTagRequest) (*models.Tag, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, models.ErrorValidation{Message: "tag name must not be empty"}
	}

	_, err := s.tagRepo.GetByName(name)
	if err == nil {
		return nil, models.ErrorDuplicate{Message: "a tag with this name already exists"}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	tag := &models.Tag{Name: name}
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) GetTags() ([]models.Tag, error) {
	return s.tagRepo.GetAll()
}

func (s *tagService) DeleteTag(id uint) error {
	if _, err := s.tagRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "tag not found"}
		}
		return err
	}

	links, err := s.tagRepo.CountLinks(id)
	if err != nil {
		return err
	}
	if links > 0 {
		return models.ErrorConflict{Message: "cannot delete a tag that is used by prompts"}
	}

	return s.tagRepo.Delete(id)
}
