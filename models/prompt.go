package models

import "time"

// Prompt is the primary managed entity: a titled template with structured
// free-text fields, owned by one user. Owner never changes after creation.
type Prompt struct {
	ID             uint    `json:"id" gorm:"primarykey"`
	Title          string  `json:"title" gorm:"not null;index"`
	Description    *string `json:"description"`
	Context        *string `json:"context" gorm:"type:text"`
	Role           *string `json:"role" gorm:"type:text"`
	Objective      *string `json:"objective" gorm:"type:text"`
	Style          *string `json:"style" gorm:"type:text"`
	Tone           *string `json:"tone" gorm:"type:text"`
	Audience       *string `json:"audience" gorm:"type:text"`
	ExpectedResult *string `json:"expected_result" gorm:"type:text"`
	TargetModel    *string `json:"target_model" gorm:"index"`
	Language       *string `json:"language" gorm:"index"`

	CategoryID    *uint        `json:"category_id"`
	Category      *Category    `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	SubcategoryID *uint        `json:"subcategory_id"`
	Subcategory   *Subcategory `json:"subcategory,omitempty" gorm:"foreignKey:SubcategoryID"`
	OwnerID       uint         `json:"owner_id" gorm:"not null;index"`

	Tags     []Tag           `json:"tags" gorm:"many2many:prompt_tags;"`
	Versions []PromptVersion `json:"-" gorm:"foreignKey:PromptID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
