package recipes

import (
	"context"
	"testing"

	"github.com/platewise/platewise-backend/internal/data/repos/testutil"
	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
)

func TestRecipeRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewRecipeRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.WithTx(ctx, tx)

	created, err := repo.Create(dbc, []*types.Recipe{
		{Title: "Lentil Soup", IsOriginal: true},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 1 || created[0].ID == 0 {
		t.Fatalf("Create: expected 1 recipe with assigned id, got %+v", created)
	}

	got, err := repo.GetByID(dbc, created[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil || got.Title != "Lentil Soup" || !got.IsOriginal {
		t.Fatalf("GetByID: unexpected result: %+v", got)
	}

	missing, err := repo.GetByID(dbc, 999999)
	if err != nil {
		t.Fatalf("GetByID (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByID (missing): expected nil, got %+v", missing)
	}
}

func TestRecipeRepoListOriginals(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewRecipeRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.WithTx(ctx, tx)

	original := testutil.SeedRecipe(t, ctx, tx, "Tomato Pasta", true)
	testutil.SeedRecipe(t, ctx, tx, "Tomato Pasta (vegan)", false)
	other := testutil.SeedRecipe(t, ctx, tx, "Pancakes", true)

	all, err := repo.ListOriginals(dbc, "")
	if err != nil {
		t.Fatalf("ListOriginals: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("ListOriginals: expected 2 originals, got %d", len(all))
	}
	if all[0].ID != original.ID || all[1].ID != other.ID {
		t.Fatalf("ListOriginals: expected ascending id order, got %+v", all)
	}

	filtered, err := repo.ListOriginals(dbc, "Tomato")
	if err != nil {
		t.Fatalf("ListOriginals (search): %v", err)
	}
	if len(filtered) != 1 || filtered[0].ID != original.ID {
		t.Fatalf("ListOriginals (search): unexpected result: %+v", filtered)
	}
}

func TestPreferenceRepoGetByNames(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewPreferenceRepo(db, testutil.Logger(t))
	ctx := context.Background()
	dbc := dbctx.WithTx(ctx, tx)

	vegan := testutil.SeedPreference(t, ctx, tx, "vegan-t1")
	quick := testutil.SeedPreference(t, ctx, tx, "quick-t1")

	got, err := repo.GetByNames(dbc, []string{"vegan-t1", "quick-t1", "no-such-preference"})
	if err != nil {
		t.Fatalf("GetByNames: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetByNames: expected 2 known preferences, got %d", len(got))
	}
	if got[0].ID != vegan.ID || got[1].ID != quick.ID {
		t.Fatalf("GetByNames: unexpected rows: %+v", got)
	}

	none, err := repo.GetByNames(dbc, nil)
	if err != nil {
		t.Fatalf("GetByNames (empty): %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("GetByNames (empty): expected no rows, got %+v", none)
	}
}
