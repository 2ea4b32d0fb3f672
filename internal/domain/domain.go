package domain

import "github.com/platewise/platewise-backend/internal/domain/recipes"

type Recipe = recipes.Recipe
type Preference = recipes.Preference
type RecipePreference = recipes.RecipePreference
type Variation = recipes.Variation
