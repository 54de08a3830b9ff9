package models

// Tag classifies recipes; name, color and slug are each unique
type Tag struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"size:200;uniqueIndex"`
	Color string `json:"color" gorm:"size:7;uniqueIndex"` // hex code, e.g. #FF0000
	Slug  string `json:"slug" gorm:"size:60;uniqueIndex"`
}
