package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/platewise/platewise-backend/internal/data/db"
	"github.com/platewise/platewise-backend/internal/data/repos"
	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

// VariantWriterService persists a generated candidate as a new variant:
// the recipe row, its preference associations and its derivation edge are
// committed in one transaction or not at all.
type VariantWriterService interface {
	// CreateVariant writes the candidate as a variant of originalID, which
	// must be a canonical original (the resolver flattens before calling
	// in), keeping the derivation forest at depth 1.
	CreateVariant(ctx context.Context, originalID int, candidate *GeneratedRecipe, preferenceIDs []int) (*types.Recipe, error)
}

// persistAttempts bounds retries of the variant transaction on transient
// conflicts (serialization failures, deadlocks).
const persistAttempts = 3

type variantWriterService struct {
	db       *gorm.DB
	log      *logger.Logger
	recipes  repos.RecipeRepo
	assocs   repos.RecipePreferenceRepo
	variants repos.VariationRepo
}

func NewVariantWriterService(
	db *gorm.DB,
	baseLog *logger.Logger,
	recipeRepo repos.RecipeRepo,
	assocRepo repos.RecipePreferenceRepo,
	variationRepo repos.VariationRepo,
) VariantWriterService {
	return &variantWriterService{
		db:       db,
		log:      baseLog.With("service", "VariantWriterService"),
		recipes:  recipeRepo,
		assocs:   assocRepo,
		variants: variationRepo,
	}
}

func (vws *variantWriterService) CreateVariant(ctx context.Context, originalID int, candidate *GeneratedRecipe, preferenceIDs []int) (*types.Recipe, error) {
	if candidate == nil {
		return nil, &PersistenceError{Err: fmt.Errorf("candidate is nil")}
	}

	variant := &types.Recipe{
		Title:        candidate.Title,
		Description:  candidate.Description,
		Instructions: candidate.Instructions,
		PrepTime:     candidate.PrepTime,
		Difficulty:   candidate.Difficulty,
		IsOriginal:   false,
	}

	var err error
	for attempt := 1; attempt <= persistAttempts; attempt++ {
		// A failed attempt may have assigned the id inside the rolled-back
		// transaction; clear it so the retry inserts a fresh row.
		variant.ID = 0

		err = vws.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			dbc := dbctx.WithTx(ctx, tx)

			if _, err := vws.recipes.Create(dbc, []*types.Recipe{variant}); err != nil {
				return fmt.Errorf("create variant row: %w", err)
			}

			assocs := make([]*types.RecipePreference, 0, len(preferenceIDs))
			for _, prefID := range uniqueIDs(preferenceIDs) {
				assocs = append(assocs, &types.RecipePreference{
					RecipeFK:     variant.ID,
					PreferenceFK: prefID,
				})
			}
			if err := vws.assocs.CreateMany(dbc, assocs); err != nil {
				return fmt.Errorf("create preference associations: %w", err)
			}

			if err := vws.variants.Create(dbc, &types.Variation{
				OriginalFK:  originalID,
				VariationFK: variant.ID,
			}); err != nil {
				return fmt.Errorf("create derivation edge: %w", err)
			}
			return nil
		})
		if err == nil || !db.IsRetryable(err) {
			break
		}
		vws.log.Warn("variant transaction hit a transient conflict",
			"attempt", attempt,
			"error", err,
		)
	}
	if err != nil {
		return nil, &PersistenceError{Err: err}
	}

	vws.log.Info("created variant",
		"original_id", originalID,
		"variant_id", variant.ID,
		"preference_count", len(preferenceIDs),
	)
	return variant, nil
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
