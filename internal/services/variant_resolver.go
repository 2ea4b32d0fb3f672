package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/platewise/platewise-backend/internal/data/repos"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

// VariantResolverService finds an existing recipe whose preference
// fingerprint exactly matches a requested preference set.
type VariantResolverService interface {
	// Resolve determines the canonical original for recipeID and searches
	// the original plus all of its variants for an exact fingerprint match
	// against the requested names. matchedID is 0 on a miss. prefIDs is the
	// resolved requested-id set (ascending), returned so a caller that goes
	// on to generate does not resolve names twice.
	Resolve(dbc dbctx.Context, recipeID int, names []string) (originalID int, matchedID int, prefIDs []int, err error)
}

type variantResolverService struct {
	db       *gorm.DB
	log      *logger.Logger
	prefs    PreferenceService
	recipes  repos.RecipeRepo
	assocs   repos.RecipePreferenceRepo
	variants repos.VariationRepo
}

func NewVariantResolverService(
	db *gorm.DB,
	baseLog *logger.Logger,
	prefs PreferenceService,
	recipeRepo repos.RecipeRepo,
	assocRepo repos.RecipePreferenceRepo,
	variationRepo repos.VariationRepo,
) VariantResolverService {
	return &variantResolverService{
		db:       db,
		log:      baseLog.With("service", "VariantResolverService"),
		prefs:    prefs,
		recipes:  recipeRepo,
		assocs:   assocRepo,
		variants: variationRepo,
	}
}

func (vrs *variantResolverService) Resolve(dbc dbctx.Context, recipeID int, names []string) (int, int, []int, error) {
	originalID, err := vrs.resolveOriginal(dbc, recipeID)
	if err != nil {
		return 0, 0, nil, err
	}

	prefIDs, err := vrs.prefs.ResolveIDs(dbc, names)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("resolve preference ids: %w", err)
	}

	// Candidates are the original itself followed by its variants in
	// ascending id order, so repeated calls over unchanged data always pick
	// the same row.
	variantIDs, err := vrs.variants.VariationIDsFor(dbc, originalID)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("list variants of recipe %d: %w", originalID, err)
	}
	candidates := append([]int{originalID}, variantIDs...)

	for _, candidateID := range candidates {
		fingerprint, err := vrs.assocs.ListPreferenceIDs(dbc, candidateID)
		if err != nil {
			return 0, 0, nil, fmt.Errorf("load fingerprint of recipe %d: %w", candidateID, err)
		}
		if equalIDSets(fingerprint, prefIDs) {
			return originalID, candidateID, prefIDs, nil
		}
	}
	return originalID, 0, prefIDs, nil
}

// resolveOriginal maps any recipe id to the root of its derivation tree.
// Originals map to themselves; variants follow their single edge.
func (vrs *variantResolverService) resolveOriginal(dbc dbctx.Context, recipeID int) (int, error) {
	recipe, err := vrs.recipes.GetByID(dbc, recipeID)
	if err != nil {
		return 0, fmt.Errorf("load recipe %d: %w", recipeID, err)
	}
	if recipe == nil {
		return 0, fmt.Errorf("recipe %d: %w", recipeID, ErrRecipeNotFound)
	}
	if recipe.IsOriginal {
		return recipe.ID, nil
	}
	originalID, err := vrs.variants.OriginalIDFor(dbc, recipe.ID)
	if err != nil {
		return 0, fmt.Errorf("load derivation edge of recipe %d: %w", recipe.ID, err)
	}
	if originalID == 0 {
		return 0, fmt.Errorf("recipe %d is a variant without a derivation edge", recipe.ID)
	}
	return originalID, nil
}

// equalIDSets compares two ascending id slices for exact set equality.
// Supersets and subsets are misses: a variant tagged {vegan} does not serve
// a request for {vegan, quick}, nor a request for {}.
func equalIDSets(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
