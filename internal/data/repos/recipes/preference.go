package recipes

import (
	"gorm.io/gorm"

	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

type PreferenceRepo interface {
	// GetByNames returns the preferences whose names are stored. Names with
	// no stored row are simply absent from the result.
	GetByNames(dbc dbctx.Context, names []string) ([]*types.Preference, error)
	List(dbc dbctx.Context) ([]*types.Preference, error)
}

type preferenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) PreferenceRepo {
	return &preferenceRepo{db: db, log: baseLog.With("repo", "PreferenceRepo")}
}

func (r *preferenceRepo) handle(dbc dbctx.Context) *gorm.DB {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx)
}

func (r *preferenceRepo) GetByNames(dbc dbctx.Context, names []string) ([]*types.Preference, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var rows []*types.Preference
	if err := r.handle(dbc).Where("name IN ?", names).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *preferenceRepo) List(dbc dbctx.Context) ([]*types.Preference, error) {
	var rows []*types.Preference
	if err := r.handle(dbc).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
