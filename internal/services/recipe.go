package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/platewise/platewise-backend/internal/data/repos"
	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

// RecipeService is the plain read surface over stored recipes.
type RecipeService interface {
	ListOriginals(ctx context.Context, search string) ([]*types.Recipe, error)
	GetByID(ctx context.Context, id int) (*types.Recipe, error)
}

type recipeService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.RecipeRepo
}

func NewRecipeService(db *gorm.DB, baseLog *logger.Logger, repo repos.RecipeRepo) RecipeService {
	return &recipeService{
		db:   db,
		log:  baseLog.With("service", "RecipeService"),
		repo: repo,
	}
}

func (rs *recipeService) ListOriginals(ctx context.Context, search string) ([]*types.Recipe, error) {
	return rs.repo.ListOriginals(dbctx.New(ctx), search)
}

func (rs *recipeService) GetByID(ctx context.Context, id int) (*types.Recipe, error) {
	recipe, err := rs.repo.GetByID(dbctx.New(ctx), id)
	if err != nil {
		return nil, fmt.Errorf("load recipe %d: %w", id, err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe %d: %w", id, ErrRecipeNotFound)
	}
	return recipe, nil
}
