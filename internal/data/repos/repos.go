package repos

import (
	"gorm.io/gorm"

	"github.com/platewise/platewise-backend/internal/data/repos/recipes"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

type RecipeRepo = recipes.RecipeRepo
type PreferenceRepo = recipes.PreferenceRepo
type RecipePreferenceRepo = recipes.RecipePreferenceRepo
type VariationRepo = recipes.VariationRepo

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return recipes.NewRecipeRepo(db, baseLog)
}
func NewPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) PreferenceRepo {
	return recipes.NewPreferenceRepo(db, baseLog)
}
func NewRecipePreferenceRepo(db *gorm.DB, baseLog *logger.Logger) RecipePreferenceRepo {
	return recipes.NewRecipePreferenceRepo(db, baseLog)
}
func NewVariationRepo(db *gorm.DB, baseLog *logger.Logger) VariationRepo {
	return recipes.NewVariationRepo(db, baseLog)
}
