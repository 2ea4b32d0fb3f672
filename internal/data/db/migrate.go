package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/platewise/platewise-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Recipe{},
		&types.Preference{},
		&types.RecipePreference{},
		&types.Variation{},
	)
}

// EnsureRecipeIndexes adds the indexes AutoMigrate does not cover. The
// unique index on variations(variation_fk) backs the depth-1 forest: a
// variant can carry at most one edge to its original.
func EnsureRecipeIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_preference_name
		ON preferences(name);
	`).Error; err != nil {
		return fmt.Errorf("create idx_preference_name: %w", err)
	}
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_recipe_preference
		ON recipe_preferences(recipe_fk, preference_fk);
	`).Error; err != nil {
		return fmt.Errorf("create idx_recipe_preference: %w", err)
	}
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_variation_variant
		ON variations(variation_fk);
	`).Error; err != nil {
		return fmt.Errorf("create idx_variation_variant: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_variation_original
		ON variations(original_fk);
	`).Error; err != nil {
		return fmt.Errorf("create idx_variation_original: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureRecipeIndexes(s.db); err != nil {
		s.log.Error("Recipe index migration failed", "error", err)
		return err
	}
	return nil
}
