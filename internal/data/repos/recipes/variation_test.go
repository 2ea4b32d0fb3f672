package recipes

import (
	"context"
	"testing"

	"github.com/platewise/platewise-backend/internal/data/repos/testutil"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
)

func TestVariationRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewVariationRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.WithTx(ctx, tx)

	original := testutil.SeedRecipe(t, ctx, tx, "Base Curry", true)
	v1 := testutil.SeedRecipe(t, ctx, tx, "Base Curry (mild)", false)
	v2 := testutil.SeedRecipe(t, ctx, tx, "Base Curry (vegan)", false)
	testutil.SeedVariation(t, ctx, tx, original.ID, v1.ID)
	testutil.SeedVariation(t, ctx, tx, original.ID, v2.ID)

	origID, err := repo.OriginalIDFor(dbc, v1.ID)
	if err != nil {
		t.Fatalf("OriginalIDFor: %v", err)
	}
	if origID != original.ID {
		t.Fatalf("OriginalIDFor: expected %d, got %d", original.ID, origID)
	}

	noEdge, err := repo.OriginalIDFor(dbc, original.ID)
	if err != nil {
		t.Fatalf("OriginalIDFor (original): %v", err)
	}
	if noEdge != 0 {
		t.Fatalf("OriginalIDFor (original): expected 0, got %d", noEdge)
	}

	ids, err := repo.VariationIDsFor(dbc, original.ID)
	if err != nil {
		t.Fatalf("VariationIDsFor: %v", err)
	}
	if len(ids) != 2 || ids[0] != v1.ID || ids[1] != v2.ID {
		t.Fatalf("VariationIDsFor: expected [%d %d], got %v", v1.ID, v2.ID, ids)
	}
}

func TestRecipePreferenceRepoFingerprint(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewRecipePreferenceRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.WithTx(ctx, tx)

	recipe := testutil.SeedRecipe(t, ctx, tx, "Fingerprint Bowl", false)
	p1 := testutil.SeedPreference(t, ctx, tx, "vegan-t2")
	p2 := testutil.SeedPreference(t, ctx, tx, "quick-t2")
	testutil.SeedAssociation(t, ctx, tx, recipe.ID, p2.ID)
	testutil.SeedAssociation(t, ctx, tx, recipe.ID, p1.ID)

	ids, err := repo.ListPreferenceIDs(dbc, recipe.ID)
	if err != nil {
		t.Fatalf("ListPreferenceIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] >= ids[1] {
		t.Fatalf("ListPreferenceIDs: expected 2 ascending ids, got %v", ids)
	}

	empty, err := repo.ListPreferenceIDs(dbc, 999999)
	if err != nil {
		t.Fatalf("ListPreferenceIDs (missing): %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("ListPreferenceIDs (missing): expected empty fingerprint, got %v", empty)
	}
}
