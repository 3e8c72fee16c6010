package models

import "time"

// PromptVersion is one entry in a prompt's append-only history. The snapshot
// is a self-contained JSON blob of the prompt's resolved state at mutation
// time; rows are never updated or deleted except by prompt deletion.
type PromptVersion struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	PromptID  uint      `json:"prompt_id" gorm:"not null;index"`
	Snapshot  string    `json:"snapshot" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
