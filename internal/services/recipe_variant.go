package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/platewise/platewise-backend/internal/data/db"
	"github.com/platewise/platewise-backend/internal/data/repos"
	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

// RecipeVariantService is the get-or-create entry point: it returns an
// existing recipe whose preference fingerprint equals the request, or
// generates and persists a new variant of the canonical original.
type RecipeVariantService interface {
	GetPreferredRecipe(ctx context.Context, recipeID int, preferenceNames []string) (*types.Recipe, error)
}

type recipeVariantService struct {
	db        *gorm.DB
	log       *logger.Logger
	resolver  VariantResolverService
	generator RecipeGenerationService
	writer    VariantWriterService
	recipes   repos.RecipeRepo

	// flight collapses concurrent generations for the same
	// (original, fingerprint) pair within this process. Requests arriving
	// from other processes can still race; the store stays consistent
	// either way, at worst with a near-duplicate variant row.
	flight singleflight.Group
}

func NewRecipeVariantService(
	db *gorm.DB,
	baseLog *logger.Logger,
	resolver VariantResolverService,
	generator RecipeGenerationService,
	writer VariantWriterService,
	recipeRepo repos.RecipeRepo,
) RecipeVariantService {
	return &recipeVariantService{
		db:        db,
		log:       baseLog.With("service", "RecipeVariantService"),
		resolver:  resolver,
		generator: generator,
		writer:    writer,
		recipes:   recipeRepo,
	}
}

func (rvs *recipeVariantService) GetPreferredRecipe(ctx context.Context, recipeID int, preferenceNames []string) (*types.Recipe, error) {
	names := NormalizePreferenceNames(preferenceNames)
	dbc := dbctx.New(ctx)

	originalID, matchedID, prefIDs, err := rvs.resolver.Resolve(dbc, recipeID, names)
	if err != nil {
		return nil, err
	}
	if matchedID != 0 {
		return rvs.loadRecipe(dbc, matchedID)
	}

	key := fingerprintKey(originalID, prefIDs)
	result, err, shared := rvs.flight.Do(key, func() (any, error) {
		return rvs.generateAndPersist(ctx, originalID, names)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		rvs.log.Debug("reused in-flight generation", "key", key)
	}
	return result.(*types.Recipe), nil
}

func (rvs *recipeVariantService) generateAndPersist(ctx context.Context, originalID int, names []string) (*types.Recipe, error) {
	dbc := dbctx.New(ctx)

	// A variant for this fingerprint may have been committed while this
	// call waited to enter the flight; check once more before paying for a
	// generation.
	_, matchedID, prefIDs, err := rvs.resolver.Resolve(dbc, originalID, names)
	if err != nil {
		return nil, err
	}
	if matchedID != 0 {
		return rvs.loadRecipe(dbc, matchedID)
	}

	original, err := rvs.recipes.GetByID(dbc, originalID)
	if err != nil {
		return nil, fmt.Errorf("load original recipe %d: %w", originalID, err)
	}
	if original == nil {
		return nil, fmt.Errorf("recipe %d: %w", originalID, ErrRecipeNotFound)
	}

	candidate, err := rvs.generator.Generate(ctx, original, names)
	if err != nil {
		return nil, err
	}

	variant, err := rvs.writer.CreateVariant(ctx, originalID, candidate, prefIDs)
	if err != nil {
		// A writer in another process may have committed this fingerprint
		// first; the unique indexes surface that as a duplicate key. Prefer
		// the committed row over failing the request.
		if db.IsUniqueViolation(err) {
			if _, lostID, _, rerr := rvs.resolver.Resolve(dbc, originalID, names); rerr == nil && lostID != 0 {
				rvs.log.Info("reusing concurrently persisted variant",
					"original_id", originalID,
					"variant_id", lostID,
				)
				return rvs.loadRecipe(dbc, lostID)
			}
		}
		return nil, err
	}
	return variant, nil
}

func (rvs *recipeVariantService) loadRecipe(dbc dbctx.Context, id int) (*types.Recipe, error) {
	recipe, err := rvs.recipes.GetByID(dbc, id)
	if err != nil {
		return nil, fmt.Errorf("load recipe %d: %w", id, err)
	}
	if recipe == nil {
		return nil, fmt.Errorf("recipe %d: %w", id, ErrRecipeNotFound)
	}
	return recipe, nil
}

func fingerprintKey(originalID int, prefIDs []int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(originalID))
	for _, id := range prefIDs {
		sb.WriteByte('|')
		sb.WriteString(strconv.Itoa(id))
	}
	return sb.String()
}
