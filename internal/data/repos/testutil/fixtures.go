package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/platewise/platewise-backend/internal/domain"
)

func SeedRecipe(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, original bool) *types.Recipe {
	tb.Helper()
	desc := "seeded"
	r := &types.Recipe{
		Title:       title,
		Description: &desc,
		IsOriginal:  original,
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed recipe: %v", err)
	}
	return r
}

func SeedPreference(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Preference {
	tb.Helper()
	p := &types.Preference{Name: name}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed preference: %v", err)
	}
	return p
}

func SeedVariation(tb testing.TB, ctx context.Context, tx *gorm.DB, originalID, variationID int) *types.Variation {
	tb.Helper()
	v := &types.Variation{OriginalFK: originalID, VariationFK: variationID}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed variation: %v", err)
	}
	return v
}

func SeedAssociation(tb testing.TB, ctx context.Context, tx *gorm.DB, recipeID, preferenceID int) *types.RecipePreference {
	tb.Helper()
	rp := &types.RecipePreference{RecipeFK: recipeID, PreferenceFK: preferenceID}
	if err := tx.WithContext(ctx).Create(rp).Error; err != nil {
		tb.Fatalf("seed association: %v", err)
	}
	return rp
}
