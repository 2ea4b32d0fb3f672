package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/logger"
	"github.com/platewise/platewise-backend/internal/platform/openai"
)

const adjustRecipeSystemPrompt = `Given a recipe in JSON format and a list of preferred ingredients, adjust the recipe to match the preferences and return the adjusted recipe in JSON format. Keep the spirit of the original dish. The JSON object must contain the fields title, description, instructions, preptime (minutes, integer) and difficulty (1-5, integer).`

// GeneratedRecipe is the validated content shape returned by the generator.
type GeneratedRecipe struct {
	Title        string  `json:"title"`
	Description  *string `json:"description"`
	Instructions *string `json:"instructions"`
	PrepTime     *int    `json:"preptime"`
	Difficulty   *int    `json:"difficulty"`
}

// RecipeGenerationService asks the external model to adjust a base recipe to
// a preference list. A call either fully succeeds with a well-formed
// candidate or fails with a GenerationError; there is no partial result and
// no retry at this layer.
type RecipeGenerationService interface {
	Generate(ctx context.Context, base *types.Recipe, preferences []string) (*GeneratedRecipe, error)
}

type recipeGenerationService struct {
	log *logger.Logger
	ai  openai.Client
}

func NewRecipeGenerationService(baseLog *logger.Logger, ai openai.Client) RecipeGenerationService {
	return &recipeGenerationService{
		log: baseLog.With("service", "RecipeGenerationService"),
		ai:  ai,
	}
}

func adjustedRecipeSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":        map[string]any{"type": "string"},
			"description":  map[string]any{"type": "string"},
			"instructions": map[string]any{"type": "string"},
			"preptime":     map[string]any{"type": "integer"},
			"difficulty":   map[string]any{"type": "integer"},
		},
		"required":             []string{"title", "description", "instructions", "preptime", "difficulty"},
		"additionalProperties": false,
	}
}

func (rgs *recipeGenerationService) Generate(ctx context.Context, base *types.Recipe, preferences []string) (*GeneratedRecipe, error) {
	if base == nil {
		return nil, &GenerationError{Err: errors.New("base recipe is nil")}
	}

	baseJSON, err := json.Marshal(base)
	if err != nil {
		return nil, &GenerationError{Err: fmt.Errorf("serialize base recipe: %w", err)}
	}
	user := fmt.Sprintf("Recipe: %s, preferences: %s", baseJSON, strings.Join(preferences, ", "))

	obj, err := rgs.ai.GenerateJSON(ctx, adjustRecipeSystemPrompt, user, "adjusted_recipe", adjustedRecipeSchema())
	if err != nil {
		return nil, &GenerationError{Err: err}
	}

	candidate, err := parseCandidate(obj)
	if err != nil {
		rgs.log.Warn("generator returned malformed candidate", "base_recipe_id", base.ID, "error", err)
		return nil, &GenerationError{Err: err}
	}

	rgs.log.Info("generated recipe candidate",
		"base_recipe_id", base.ID,
		"title", candidate.Title,
		"preferences", strings.Join(preferences, ","),
	)
	return candidate, nil
}

// parseCandidate re-decodes the model output through the struct shape so a
// wrong-typed field fails instead of being silently coerced.
func parseCandidate(obj map[string]any) (*GeneratedRecipe, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("re-encode candidate: %w", err)
	}
	var candidate GeneratedRecipe
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&candidate); err != nil {
		return nil, fmt.Errorf("malformed candidate: %w", err)
	}
	if strings.TrimSpace(candidate.Title) == "" {
		return nil, errors.New("candidate is missing a title")
	}
	return &candidate, nil
}
