package services

import (
	"context"
	"errors"
	"testing"

	"github.com/platewise/platewise-backend/internal/data/repos"
	"github.com/platewise/platewise-backend/internal/data/repos/testutil"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
)

func TestResolveExactMatch(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.WithTx(ctx, tx)

	prefs := NewPreferenceService(db, log, repos.NewPreferenceRepo(db, log))
	resolver := NewVariantResolverService(db, log, prefs,
		repos.NewRecipeRepo(db, log),
		repos.NewRecipePreferenceRepo(db, log),
		repos.NewVariationRepo(db, log),
	)

	original := testutil.SeedRecipe(t, ctx, tx, "Resolver Stew", true)
	variant := testutil.SeedRecipe(t, ctx, tx, "Resolver Stew (vegan)", false)
	vegan := testutil.SeedPreference(t, ctx, tx, "vegan-res1")
	testutil.SeedPreference(t, ctx, tx, "quick-res1")
	testutil.SeedVariation(t, ctx, tx, original.ID, variant.ID)
	testutil.SeedAssociation(t, ctx, tx, variant.ID, vegan.ID)

	// Exact fingerprint match on the variant.
	origID, matchedID, prefIDs, err := resolver.Resolve(dbc, original.ID, []string{"vegan-res1"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if origID != original.ID || matchedID != variant.ID {
		t.Fatalf("Resolve: expected original %d match %d, got original %d match %d",
			original.ID, variant.ID, origID, matchedID)
	}
	if len(prefIDs) != 1 || prefIDs[0] != vegan.ID {
		t.Fatalf("Resolve: unexpected pref ids %v", prefIDs)
	}

	// Resolving through the variant id lands on the same row.
	_, matchedID, _, err = resolver.Resolve(dbc, variant.ID, []string{"vegan-res1"})
	if err != nil {
		t.Fatalf("Resolve (via variant): %v", err)
	}
	if matchedID != variant.ID {
		t.Fatalf("Resolve (via variant): expected %d, got %d", variant.ID, matchedID)
	}

	// The empty preference set is satisfied by the original itself.
	_, matchedID, _, err = resolver.Resolve(dbc, original.ID, nil)
	if err != nil {
		t.Fatalf("Resolve (empty set): %v", err)
	}
	if matchedID != original.ID {
		t.Fatalf("Resolve (empty set): expected original %d, got %d", original.ID, matchedID)
	}

	// A superset request must miss: {vegan, quick} is not served by {vegan}.
	_, matchedID, _, err = resolver.Resolve(dbc, original.ID, []string{"vegan-res1", "quick-res1"})
	if err != nil {
		t.Fatalf("Resolve (superset): %v", err)
	}
	if matchedID != 0 {
		t.Fatalf("Resolve (superset): expected miss, matched %d", matchedID)
	}

	// A subset request must miss too: {} is not served by {vegan} when the
	// original carries associations. Here the variant has {vegan}, so a
	// request for {quick} alone misses both candidates.
	_, matchedID, _, err = resolver.Resolve(dbc, original.ID, []string{"quick-res1"})
	if err != nil {
		t.Fatalf("Resolve (disjoint): %v", err)
	}
	if matchedID != 0 {
		t.Fatalf("Resolve (disjoint): expected miss, matched %d", matchedID)
	}
}

func TestResolveUnknownNamesAreDropped(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.WithTx(ctx, tx)

	prefs := NewPreferenceService(db, log, repos.NewPreferenceRepo(db, log))
	resolver := NewVariantResolverService(db, log, prefs,
		repos.NewRecipeRepo(db, log),
		repos.NewRecipePreferenceRepo(db, log),
		repos.NewVariationRepo(db, log),
	)

	original := testutil.SeedRecipe(t, ctx, tx, "Resolver Salad", true)

	// An unknown name resolves to no id, so the request collapses to the
	// empty set and the bare original matches.
	_, matchedID, prefIDs, err := resolver.Resolve(dbc, original.ID, []string{"no-such-pref-res2"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if matchedID != original.ID {
		t.Fatalf("Resolve: expected original %d, got %d", original.ID, matchedID)
	}
	if len(prefIDs) != 0 {
		t.Fatalf("Resolve: expected empty pref ids, got %v", prefIDs)
	}
}

func TestResolveDeterministicOrder(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	ctx := context.Background()
	dbc := dbctx.WithTx(ctx, tx)

	prefs := NewPreferenceService(db, log, repos.NewPreferenceRepo(db, log))
	resolver := NewVariantResolverService(db, log, prefs,
		repos.NewRecipeRepo(db, log),
		repos.NewRecipePreferenceRepo(db, log),
		repos.NewVariationRepo(db, log),
	)

	original := testutil.SeedRecipe(t, ctx, tx, "Resolver Chili", true)
	spicy := testutil.SeedPreference(t, ctx, tx, "spicy-res3")

	// Two variants with identical fingerprints; the lower id wins every time.
	first := testutil.SeedRecipe(t, ctx, tx, "Resolver Chili (spicy)", false)
	second := testutil.SeedRecipe(t, ctx, tx, "Resolver Chili (spicy again)", false)
	testutil.SeedVariation(t, ctx, tx, original.ID, first.ID)
	testutil.SeedVariation(t, ctx, tx, original.ID, second.ID)
	testutil.SeedAssociation(t, ctx, tx, first.ID, spicy.ID)
	testutil.SeedAssociation(t, ctx, tx, second.ID, spicy.ID)

	for i := 0; i < 3; i++ {
		_, matchedID, _, err := resolver.Resolve(dbc, original.ID, []string{"spicy-res3"})
		if err != nil {
			t.Fatalf("Resolve (run %d): %v", i, err)
		}
		if matchedID != first.ID {
			t.Fatalf("Resolve (run %d): expected stable match %d, got %d", i, first.ID, matchedID)
		}
	}
}

func TestResolveNotFound(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	log := testutil.Logger(t)
	dbc := dbctx.WithTx(context.Background(), tx)

	prefs := NewPreferenceService(db, log, repos.NewPreferenceRepo(db, log))
	resolver := NewVariantResolverService(db, log, prefs,
		repos.NewRecipeRepo(db, log),
		repos.NewRecipePreferenceRepo(db, log),
		repos.NewVariationRepo(db, log),
	)

	_, _, _, err := resolver.Resolve(dbc, 987654, []string{"vegan"})
	if !errors.Is(err, ErrRecipeNotFound) {
		t.Fatalf("Resolve: expected ErrRecipeNotFound, got %v", err)
	}
}
