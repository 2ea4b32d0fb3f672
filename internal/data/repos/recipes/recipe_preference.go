package recipes

import (
	"gorm.io/gorm"

	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

type RecipePreferenceRepo interface {
	CreateMany(dbc dbctx.Context, rows []*types.RecipePreference) error
	// ListPreferenceIDs returns the preference fingerprint of a recipe in
	// ascending id order.
	ListPreferenceIDs(dbc dbctx.Context, recipeID int) ([]int, error)
}

type recipePreferenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipePreferenceRepo(db *gorm.DB, baseLog *logger.Logger) RecipePreferenceRepo {
	return &recipePreferenceRepo{db: db, log: baseLog.With("repo", "RecipePreferenceRepo")}
}

func (r *recipePreferenceRepo) handle(dbc dbctx.Context) *gorm.DB {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx)
}

func (r *recipePreferenceRepo) CreateMany(dbc dbctx.Context, rows []*types.RecipePreference) error {
	if len(rows) == 0 {
		return nil
	}
	return r.handle(dbc).Create(rows).Error
}

func (r *recipePreferenceRepo) ListPreferenceIDs(dbc dbctx.Context, recipeID int) ([]int, error) {
	if recipeID <= 0 {
		return nil, nil
	}
	var ids []int
	err := r.handle(dbc).
		Model(&types.RecipePreference{}).
		Where("recipe_fk = ?", recipeID).
		Order("preference_fk ASC").
		Pluck("preference_fk", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
