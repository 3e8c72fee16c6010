package models

type Category struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`

	Subcategories []Subcategory `json:"subcategories" gorm:"foreignKey:CategoryID"`
}

// Subcategory names are unique within their parent category only.
type Subcategory struct {
	ID         uint   `json:"id" gorm:"primarykey"`
	Name       string `json:"name" gorm:"not null;uniqueIndex:idx_subcategories_category_name"`
	CategoryID uint   `json:"category_id" gorm:"not null;uniqueIndex:idx_subcategories_category_name"`

	Category *Category `json:"-" gorm:"foreignKey:CategoryID"`
}
