package models

import "time"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type CreatePromptRequest struct {
	Title          string   `json:"title" binding:"required,min=1,max=255"`
	Description    *string  `json:"description"`
	Context        *string  `json:"context"`
	Role           *string  `json:"role"`
	Objective      *string  `json:"objective"`
	Style          *string  `json:"style"`
	Tone           *string  `json:"tone"`
	Audience       *string  `json:"audience"`
	ExpectedResult *string  `json:"expected_result"`
	CategoryID     *uint    `json:"category_id"`
	SubcategoryID  *uint    `json:"subcategory_id"`
	Tags           []string `json:"tags"`
	TargetModel    *string  `json:"target_model"`
	Language       *string  `json:"language"`
}

// UpdatePromptRequest carries partial-update semantics: a field left out of
// the body is not touched. Tags keeps the same distinction — absent leaves
// the link set alone, an empty list clears it.
type UpdatePromptRequest struct {
	Title          Optional[string]   `json:"title"`
	Description    Optional[string]   `json:"description"`
	Context        Optional[string]   `json:"context"`
	Role           Optional[string]   `json:"role"`
	Objective      Optional[string]   `json:"objective"`
	Style          Optional[string]   `json:"style"`
	Tone           Optional[string]   `json:"tone"`
	Audience       Optional[string]   `json:"audience"`
	ExpectedResult Optional[string]   `json:"expected_result"`
	CategoryID     Optional[uint]     `json:"category_id"`
	SubcategoryID  Optional[uint]     `json:"subcategory_id"`
	Tags           Optional[[]string] `json:"tags"`
	TargetModel    Optional[string]   `json:"target_model"`
	Language       Optional[string]   `json:"language"`
}

type PromptListParams struct {
	Search        string `form:"search"`
	CategoryID    uint   `form:"category_id"`
	SubcategoryID uint   `form:"subcategory_id"`
	Tag           string `form:"tag"`
	TargetModel   string `form:"target_model"`
	Language      string `form:"language"`
	Sort          string `form:"sort,default=-updated_at"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

type CreateSubcategoryRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=100"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

type CreateTagRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// LibraryPrompt is the portable form of a prompt used by both export and
// import: taxonomy and tags are carried by name, not id.
type LibraryPrompt struct {
	Title          string     `json:"title" binding:"required"`
	Description    *string    `json:"description"`
	Context        *string    `json:"context"`
	Role           *string    `json:"role"`
	Objective      *string    `json:"objective"`
	Style          *string    `json:"style"`
	Tone           *string    `json:"tone"`
	Audience       *string    `json:"audience"`
	ExpectedResult *string    `json:"expected_result"`
	Category       *string    `json:"category"`
	Subcategory    *string    `json:"subcategory"`
	Tags           []string   `json:"tags"`
	TargetModel    *string    `json:"target_model"`
	Language       *string    `json:"language"`
	CreatedAt      *time.Time `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at"`
}

type ImportPayload struct {
	Prompts []LibraryPrompt `json:"prompts" binding:"required"`
}

type ImportResult struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

type ExportSubcategory struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type ExportCategory struct {
	Name string `json:"name"`
}

type ExportPayload struct {
	ExportedAt    time.Time           `json:"exported_at"`
	Categories    []ExportCategory    `json:"categories"`
	Subcategories []ExportSubcategory `json:"subcategories"`
	Tags          []string            `json:"tags"`
	Prompts       []LibraryPrompt     `json:"prompts"`
}
