package db

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/platewise/platewise-backend/internal/domain"
)

//go:embed seed.yaml
var seedYAML []byte

type seedRecipe struct {
	Title        string  `yaml:"title"`
	Description  *string `yaml:"description"`
	Instructions *string `yaml:"instructions"`
	PrepTime     *int    `yaml:"preptime"`
	Difficulty   *int    `yaml:"difficulty"`
}

type seedCorpus struct {
	Preferences []string     `yaml:"preferences"`
	Recipes     []seedRecipe `yaml:"recipes"`
}

// Seed loads the embedded corpus of preferences and original recipes.
// Preferences upsert by name; recipes are only inserted when no original
// with the same title exists, so re-running the seeder is safe.
func Seed(ctx context.Context, db *gorm.DB) error {
	var corpus seedCorpus
	if err := yaml.Unmarshal(seedYAML, &corpus); err != nil {
		return fmt.Errorf("decode seed corpus: %w", err)
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range corpus.Preferences {
			pref := types.Preference{Name: name}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).Create(&pref).Error; err != nil {
				return fmt.Errorf("seed preference %q: %w", name, err)
			}
		}

		for _, sr := range corpus.Recipes {
			var count int64
			if err := tx.Model(&types.Recipe{}).
				Where("title = ? AND isoriginal = ?", sr.Title, true).
				Count(&count).Error; err != nil {
				return fmt.Errorf("check seed recipe %q: %w", sr.Title, err)
			}
			if count > 0 {
				continue
			}
			recipe := types.Recipe{
				Title:        sr.Title,
				Description:  sr.Description,
				Instructions: sr.Instructions,
				PrepTime:     sr.PrepTime,
				Difficulty:   sr.Difficulty,
				IsOriginal:   true,
			}
			if err := tx.Create(&recipe).Error; err != nil {
				return fmt.Errorf("seed recipe %q: %w", sr.Title, err)
			}
		}
		return nil
	})
}
