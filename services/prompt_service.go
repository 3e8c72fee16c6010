package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"prompt-manager/models"
	"prompt-manager/repositories"
)

// Title suffix appended on duplication. Applied unconditionally, so
// duplicating a duplicate compounds the suffix.
const copySuffix = " (copie)"

// errPromptExists marks an import item whose title is already taken for the
// owner; BulkImport counts it as skipped instead of failing.
var errPromptExists = errors.New("prompt with this title already exists")

// Closed set of sort keys accepted by List. Anything else is rejected.
var promptSortColumns = map[string]string{
	"title":      "prompts.title",
	"created_at": "prompts.created_at",
	"updated_at": "prompts.updated_at",
	"category":   "prompts.category_id",
}

type PromptService interface {
	Create(req models.CreatePromptRequest, ownerID uint) (*models.Prompt, error)
	Get(id, ownerID uint) (*models.Prompt, error)
	List(params models.PromptListParams, ownerID uint) ([]models.Prompt, error)
	Update(id uint, req models.UpdatePromptRequest, ownerID uint) (*models.Prompt, error)
	Duplicate(id, ownerID uint) (*models.Prompt, error)
	Delete(id, ownerID uint) error
	GetVersions(id, ownerID uint) ([]models.PromptVersion, error)
	BulkImport(items []models.LibraryPrompt, ownerID uint) (*models.ImportResult, error)
}

type promptService struct {
	db           *gorm.DB
	promptRepo   repositories.PromptRepository
	tagRepo      repositories.TagRepository
	categoryRepo repositories.CategoryRepository
	versionRepo  repositories.PromptVersionRepository
}

func NewPromptService(
	db *gorm.DB,
	promptRepo repositories.PromptRepository,
	tagRepo repositories.TagRepository,
	categoryRepo repositories.CategoryRepository,
	versionRepo repositories.PromptVersionRepository,
) PromptService {
	return &promptService{
		db:           db,
		promptRepo:   promptRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		versionRepo:  versionRepo,
	}
}

func (s *promptService) Create(req models.CreatePromptRequest, ownerID uint) (*models.Prompt, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, models.ErrorValidation{Message: "title must not be empty"}
	}

	var promptID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.checkTaxonomy(tx, req.CategoryID, req.SubcategoryID); err != nil {
			return err
		}

		prompt := &models.Prompt{
			Title:          req.Title,
			Description:    req.Description,
			Context:        req.Context,
			Role:           req.Role,
			Objective:      req.Objective,
			Style:          req.Style,
			Tone:           req.Tone,
			Audience:       req.Audience,
			ExpectedResult: req.ExpectedResult,
			TargetModel:    req.TargetModel,
			Language:       req.Language,
			CategoryID:     req.CategoryID,
			SubcategoryID:  req.SubcategoryID,
			OwnerID:        ownerID,
		}
		if err := s.promptRepo.WithTx(tx).Create(prompt); err != nil {
			return err
		}
		if err := s.syncTags(tx, prompt, req.Tags); err != nil {
			return err
		}
		if err := s.appendVersion(tx, prompt); err != nil {
			return err
		}
		promptID = prompt.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(promptID, ownerID)
}

func (s *promptService) Get(id, ownerID uint) (*models.Prompt, error) {
	prompt, err := s.promptRepo.GetByIDForOwner(id, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "prompt not found"}
		}
		return nil, err
	}
	return prompt, nil
}

func (s *promptService) List(params models.PromptListParams, ownerID uint) ([]models.Prompt, error) {
	sort := params.Sort
	if sort == "" {
		sort = "-updated_at"
	}

	descending := strings.HasPrefix(sort, "-")
	key := strings.TrimPrefix(sort, "-")
	column, ok := promptSortColumns[key]
	if !ok {
		return nil, models.ErrorValidation{Message: fmt.Sprintf("unknown sort field: %s", key)}
	}

	order := column + " asc"
	if descending {
		order = column + " desc"
	}

	return s.promptRepo.GetList(ownerID, params, order)
}

func (s *promptService) Update(id uint, req models.UpdatePromptRequest, ownerID uint) (*models.Prompt, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		promptRepo := s.promptRepo.WithTx(tx)

		prompt, err := promptRepo.GetByIDForOwner(id, ownerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrorNotFound{Message: "prompt not found"}
			}
			return err
		}

		if req.Title.Set {
			if req.Title.Value == nil || strings.TrimSpace(*req.Title.Value) == "" {
				return models.ErrorValidation{Message: "title must not be empty"}
			}
			prompt.Title = *req.Title.Value
		}
		if req.Description.Set {
			prompt.Description = req.Description.Value
		}
		if req.Context.Set {
			prompt.Context = req.Context.Value
		}
		if req.Role.Set {
			prompt.Role = req.Role.Value
		}
		if req.Objective.Set {
			prompt.Objective = req.Objective.Value
		}
		if req.Style.Set {
			prompt.Style = req.Style.Value
		}
		if req.Tone.Set {
			prompt.Tone = req.Tone.Value
		}
		if req.Audience.Set {
			prompt.Audience = req.Audience.Value
		}
		if req.ExpectedResult.Set {
			prompt.ExpectedResult = req.ExpectedResult.Value
		}
		if req.TargetModel.Set {
			prompt.TargetModel = req.TargetModel.Value
		}
		if req.Language.Set {
			prompt.Language = req.Language.Value
		}
		if req.CategoryID.Set {
			prompt.CategoryID = req.CategoryID.Value
		}
		if req.SubcategoryID.Set {
			prompt.SubcategoryID = req.SubcategoryID.Value
		}

		if err := s.checkTaxonomy(tx, prompt.CategoryID, prompt.SubcategoryID); err != nil {
			return err
		}

		// updated_at moves on every successful update, even when no field
		// changed value.
		prompt.UpdatedAt = time.Now()
		if err := promptRepo.Save(prompt); err != nil {
			return err
		}

		if req.Tags.Set && req.Tags.Value != nil {
			if err := s.syncTags(tx, prompt, *req.Tags.Value); err != nil {
				return err
			}
		}

		return s.appendVersion(tx, prompt)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id, ownerID)
}

func (s *promptService) Duplicate(id, ownerID uint) (*models.Prompt, error) {
	var copyID uint
	err := s.db.Transaction(func(tx *gorm.DB) error {
		promptRepo := s.promptRepo.WithTx(tx)

		source, err := promptRepo.GetByIDForOwner(id, ownerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrorNotFound{Message: "prompt not found"}
			}
			return err
		}

		duplicate := &models.Prompt{
			Title:          source.Title + copySuffix,
			Description:    source.Description,
			Context:        source.Context,
			Role:           source.Role,
			Objective:      source.Objective,
			Style:          source.Style,
			Tone:           source.Tone,
			Audience:       source.Audience,
			ExpectedResult: source.ExpectedResult,
			TargetModel:    source.TargetModel,
			Language:       source.Language,
			CategoryID:     source.CategoryID,
			SubcategoryID:  source.SubcategoryID,
			OwnerID:        ownerID,
		}
		if err := promptRepo.Create(duplicate); err != nil {
			return err
		}

		tagNames := lo.Map(source.Tags, func(tag models.Tag, _ int) string { return tag.Name })
		if err := s.syncTags(tx, duplicate, tagNames); err != nil {
			return err
		}
		if err := s.appendVersion(tx, duplicate); err != nil {
			return err
		}
		copyID = duplicate.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(copyID, ownerID)
}

func (s *promptService) Delete(id, ownerID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		promptRepo := s.promptRepo.WithTx(tx)

		prompt, err := promptRepo.GetByIDForOwner(id, ownerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrorNotFound{Message: "prompt not found"}
			}
			return err
		}

		if err := promptRepo.DeleteTagLinks(prompt.ID); err != nil {
			return err
		}
		if err := s.versionRepo.WithTx(tx).DeleteByPromptID(prompt.ID); err != nil {
			return err
		}
		return promptRepo.Delete(prompt.ID)
	})
}

func (s *promptService) GetVersions(id, ownerID uint) ([]models.PromptVersion, error) {
	if _, err := s.Get(id, ownerID); err != nil {
		return nil, err
	}
	return s.versionRepo.GetByPromptID(id)
}

func (s *promptService) BulkImport(items []models.LibraryPrompt, ownerID uint) (*models.ImportResult, error) {
	result := &models.ImportResult{}

	// Each item commits on its own: a failure partway through leaves
	// earlier items durably created.
	for _, item := range items {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			return s.importItem(tx, item, ownerID)
		})
		if errors.Is(err, errPromptExists) {
			result.Skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		result.Created++
	}

	return result, nil
}

func (s *promptService) importItem(tx *gorm.DB, item models.LibraryPrompt, ownerID uint) error {
	if strings.TrimSpace(item.Title) == "" {
		return models.ErrorValidation{Message: "title must not be empty"}
	}

	promptRepo := s.promptRepo.WithTx(tx)

	_, err := promptRepo.GetByTitleForOwner(item.Title, ownerID)
	if err == nil {
		return errPromptExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	categoryID, subcategoryID, err := s.resolveTaxonomyNames(tx, item.Category, item.Subcategory)
	if err != nil {
		return err
	}

	now := time.Now()
	prompt := &models.Prompt{
		Title:          item.Title,
		Description:    item.Description,
		Context:        item.Context,
		Role:           item.Role,
		Objective:      item.Objective,
		Style:          item.Style,
		Tone:           item.Tone,
		Audience:       item.Audience,
		ExpectedResult: item.ExpectedResult,
		TargetModel:    item.TargetModel,
		Language:       item.Language,
		CategoryID:     categoryID,
		SubcategoryID:  subcategoryID,
		OwnerID:        ownerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if item.CreatedAt != nil {
		prompt.CreatedAt = *item.CreatedAt
	}
	if item.UpdatedAt != nil {
		prompt.UpdatedAt = *item.UpdatedAt
	}

	if err := promptRepo.Create(prompt); err != nil {
		return err
	}
	if err := s.syncTags(tx, prompt, item.Tags); err != nil {
		return err
	}
	return s.appendVersion(tx, prompt)
}

// resolveTaxonomyNames maps import names to ids, creating missing rows. A
// subcategory is only looked up or created under the resolved category.
func (s *promptService) resolveTaxonomyNames(tx *gorm.DB, categoryName, subcategoryName *string) (*uint, *uint, error) {
	if categoryName == nil || *categoryName == "" {
		return nil, nil, nil
	}

	categoryRepo := s.categoryRepo.WithTx(tx)

	category, err := categoryRepo.GetByName(*categoryName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		category = &models.Category{Name: *categoryName}
		if err := categoryRepo.Create(category); err != nil {
			// Lost a concurrent insert race on the unique name index.
			if category, err = categoryRepo.GetByName(*categoryName); err != nil {
				return nil, nil, err
			}
		}
	} else if err != nil {
		return nil, nil, err
	}

	if subcategoryName == nil || *subcategoryName == "" {
		return &category.ID, nil, nil
	}

	subcategory, err := categoryRepo.GetSubcategoryByName(category.ID, *subcategoryName)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		subcategory = &models.Subcategory{Name: *subcategoryName, CategoryID: category.ID}
		if err := categoryRepo.CreateSubcategory(subcategory); err != nil {
			if subcategory, err = categoryRepo.GetSubcategoryByName(category.ID, *subcategoryName); err != nil {
				return nil, nil, err
			}
		}
	} else if err != nil {
		return nil, nil, err
	}

	return &category.ID, &subcategory.ID, nil
}

// checkTaxonomy verifies that the referenced category exists and that the
// subcategory, when set, belongs to it.
func (s *promptService) checkTaxonomy(tx *gorm.DB, categoryID, subcategoryID *uint) error {
	categoryRepo := s.categoryRepo.WithTx(tx)

	if categoryID != nil {
		if _, err := categoryRepo.GetByID(*categoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrorValidation{Message: "unknown category"}
			}
			return err
		}
	}

	if subcategoryID != nil {
		subcategory, err := categoryRepo.GetSubcategoryByID(*subcategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrorValidation{Message: "unknown subcategory"}
			}
			return err
		}
		if categoryID == nil || subcategory.CategoryID != *categoryID {
			return models.ErrorValidation{Message: "subcategory does not belong to the selected category"}
		}
	}

	return nil
}

// syncTags reconciles the prompt's tag links with the target name set:
// stale links are removed, missing tags are looked up by exact name or
// created, and a link is added for each. Names are trimmed, de-duplicated
// and compared case-sensitively.
func (s *promptService) syncTags(tx *gorm.DB, prompt *models.Prompt, names []string) error {
	target := lo.Uniq(lo.FilterMap(names, func(name string, _ int) (string, bool) {
		name = strings.TrimSpace(name)
		return name, name != ""
	}))

	promptRepo := s.promptRepo.WithTx(tx)
	tagRepo := s.tagRepo.WithTx(tx)

	links, err := promptRepo.GetTagLinks(prompt.ID)
	if err != nil {
		return err
	}

	current := make(map[string]models.PromptTagLink, len(links))
	for _, link := range links {
		current[link.Tag.Name] = link
	}

	for name, link := range current {
		if !lo.Contains(target, name) {
			if err := promptRepo.DeleteTagLink(link.PromptID, link.TagID); err != nil {
				return err
			}
		}
	}

	for _, name := range target {
		if _, linked := current[name]; linked {
			continue
		}

		tag, err := tagRepo.GetByName(name)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = &models.Tag{Name: name}
			if err := tagRepo.Create(tag); err != nil {
				// Lost a concurrent insert race on the unique name index.
				if tag, err = tagRepo.GetByName(name); err != nil {
					return err
				}
			}
		} else if err != nil {
			return err
		}

		link := &models.PromptTagLink{PromptID: prompt.ID, TagID: tag.ID}
		if err := promptRepo.CreateTagLink(link); err != nil {
			return err
		}
	}

	return nil
}

// versionSnapshot is the stable on-disk shape of a ledger entry.
type versionSnapshot struct {
	Title          string   `json:"title"`
	Description    *string  `json:"description"`
	Context        *string  `json:"context"`
	Role           *string  `json:"role"`
	Objective      *string  `json:"objective"`
	Style          *string  `json:"style"`
	Tone           *string  `json:"tone"`
	Audience       *string  `json:"audience"`
	ExpectedResult *string  `json:"expected_result"`
	TargetModel    *string  `json:"target_model"`
	Language       *string  `json:"language"`
	CategoryID     *uint    `json:"category_id"`
	SubcategoryID  *uint    `json:"subcategory_id"`
	Tags           []string `json:"tags"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

// appendVersion writes one immutable snapshot of the prompt's resolved
// state, including the current tag-name set. Always the last step of a
// mutation.
func (s *promptService) appendVersion(tx *gorm.DB, prompt *models.Prompt) error {
	links, err := s.promptRepo.WithTx(tx).GetTagLinks(prompt.ID)
	if err != nil {
		return err
	}

	tagNames := lo.Map(links, func(link models.PromptTagLink, _ int) string { return link.Tag.Name })
	if tagNames == nil {
		tagNames = []string{}
	}

	snapshot := versionSnapshot{
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
		CategoryID:     prompt.CategoryID,
		SubcategoryID:  prompt.SubcategoryID,
		Tags:           tagNames,
		CreatedAt:      prompt.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      prompt.UpdatedAt.Format(time.RFC3339),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	return s.versionRepo.WithTx(tx).Create(&models.PromptVersion{
		PromptID: prompt.ID,
		Snapshot: string(data),
	})
}
