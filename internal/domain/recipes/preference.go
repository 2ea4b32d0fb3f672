package recipes

// Preference is static reference data: a dietary or ingredient preference a
// client can request by name.
type Preference struct {
	ID   int    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;not null;uniqueIndex:idx_preference_name" json:"name"`
}

func (Preference) TableName() string { return "preferences" }

// RecipePreference links one recipe to one preference. The set of rows for a
// recipe is its preference fingerprint, fixed at creation time.
type RecipePreference struct {
	ID           int `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeFK     int `gorm:"column:recipe_fk;not null;uniqueIndex:idx_recipe_preference,priority:1" json:"recipe_fk"`
	PreferenceFK int `gorm:"column:preference_fk;not null;uniqueIndex:idx_recipe_preference,priority:2" json:"preference_fk"`
}

func (RecipePreference) TableName() string { return "recipe_preferences" }
