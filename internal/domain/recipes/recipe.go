package recipes

import "time"

// Recipe is a single recipe row. Rows are immutable once created: originals
// arrive through seeding, variants through the variant writer, and neither
// is ever updated in place.
type Recipe struct {
	ID           int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"column:title;not null" json:"title"`
	Description  *string   `gorm:"column:description;type:text" json:"description,omitempty"`
	Instructions *string   `gorm:"column:instructions;type:text" json:"instructions,omitempty"`
	PrepTime     *int      `gorm:"column:preptime" json:"preptime,omitempty"`
	Difficulty   *int      `gorm:"column:difficulty" json:"difficulty,omitempty"`
	IsOriginal   bool      `gorm:"column:isoriginal;not null;default:false" json:"isoriginal"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
}

func (Recipe) TableName() string { return "recipes" }
