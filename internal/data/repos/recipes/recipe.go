package recipes

import (
	"gorm.io/gorm"

	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

type RecipeRepo interface {
	Create(dbc dbctx.Context, rows []*types.Recipe) ([]*types.Recipe, error)
	GetByID(dbc dbctx.Context, id int) (*types.Recipe, error)
	ListOriginals(dbc dbctx.Context, search string) ([]*types.Recipe, error)
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return &recipeRepo{db: db, log: baseLog.With("repo", "RecipeRepo")}
}

func (r *recipeRepo) handle(dbc dbctx.Context) *gorm.DB {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx)
}

func (r *recipeRepo) Create(dbc dbctx.Context, rows []*types.Recipe) ([]*types.Recipe, error) {
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.handle(dbc).Create(rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepo) GetByID(dbc dbctx.Context, id int) (*types.Recipe, error) {
	if id <= 0 {
		return nil, nil
	}
	var row types.Recipe
	err := r.handle(dbc).Where("id = ?", id).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *recipeRepo) ListOriginals(dbc dbctx.Context, search string) ([]*types.Recipe, error) {
	q := r.handle(dbc).Where("isoriginal = ?", true)
	if search != "" {
		q = q.Where("title LIKE ?", "%"+search+"%")
	}
	var rows []*types.Recipe
	if err := q.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
