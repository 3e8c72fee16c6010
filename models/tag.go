package models

type Tag struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// PromptTagLink is the join model behind the prompts<->tags many-to-many
// relation. Links are owned by the prompt and managed only by the mutation
// pipeline's tag reconciliation.
type PromptTagLink struct {
	PromptID uint `json:"prompt_id" gorm:"primaryKey"`
	TagID    uint `json:"tag_id" gorm:"primaryKey"`

	Tag Tag `json:"tag" gorm:"foreignKey:TagID"`
}

func (PromptTagLink) TableName() string {
	return "prompt_tags"
}
