package services

import (
	"context"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/platewise/platewise-backend/internal/data/repos"
	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

// PreferenceService is the preference catalog: it maps preference names to
// their stored ids.
type PreferenceService interface {
	// ResolveIDs maps names to preference ids, sorted ascending. Unknown
	// names are silently dropped: a name with no stored id can never equal a
	// stored association, so the caller's exact-set comparison simply fails
	// to match.
	ResolveIDs(dbc dbctx.Context, names []string) ([]int, error)
	List(ctx context.Context) ([]*types.Preference, error)
}

type preferenceService struct {
	db   *gorm.DB
	log  *logger.Logger
	repo repos.PreferenceRepo
}

func NewPreferenceService(db *gorm.DB, baseLog *logger.Logger, repo repos.PreferenceRepo) PreferenceService {
	return &preferenceService{
		db:   db,
		log:  baseLog.With("service", "PreferenceService"),
		repo: repo,
	}
}

func (ps *preferenceService) ResolveIDs(dbc dbctx.Context, names []string) ([]int, error) {
	names = NormalizePreferenceNames(names)
	if len(names) == 0 {
		return nil, nil
	}
	prefs, err := ps.repo.GetByNames(dbc, names)
	if err != nil {
		return nil, err
	}
	ids := make([]int, 0, len(prefs))
	for _, p := range prefs {
		ids = append(ids, p.ID)
	}
	sort.Ints(ids)
	return ids, nil
}

func (ps *preferenceService) List(ctx context.Context) ([]*types.Preference, error) {
	return ps.repo.List(dbctx.New(ctx))
}

// NormalizePreferenceNames trims, drops empties and collapses duplicates
// while keeping the caller's order for the survivors.
func NormalizePreferenceNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
