package recipes

import (
	"gorm.io/gorm"

	types "github.com/platewise/platewise-backend/internal/domain"
	"github.com/platewise/platewise-backend/internal/platform/dbctx"
	"github.com/platewise/platewise-backend/internal/platform/logger"
)

type VariationRepo interface {
	Create(dbc dbctx.Context, row *types.Variation) error
	// OriginalIDFor returns the original a variant descends from, or 0 when
	// the recipe carries no derivation edge.
	OriginalIDFor(dbc dbctx.Context, variationID int) (int, error)
	// VariationIDsFor returns all variant ids derived from an original, in
	// ascending id order.
	VariationIDsFor(dbc dbctx.Context, originalID int) ([]int, error)
}

type variationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewVariationRepo(db *gorm.DB, baseLog *logger.Logger) VariationRepo {
	return &variationRepo{db: db, log: baseLog.With("repo", "VariationRepo")}
}

func (r *variationRepo) handle(dbc dbctx.Context) *gorm.DB {
	t := dbc.Tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(dbc.Ctx)
}

func (r *variationRepo) Create(dbc dbctx.Context, row *types.Variation) error {
	if row == nil {
		return nil
	}
	return r.handle(dbc).Create(row).Error
}

func (r *variationRepo) OriginalIDFor(dbc dbctx.Context, variationID int) (int, error) {
	if variationID <= 0 {
		return 0, nil
	}
	var row types.Variation
	err := r.handle(dbc).Where("variation_fk = ?", variationID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}
		return 0, err
	}
	return row.OriginalFK, nil
}

func (r *variationRepo) VariationIDsFor(dbc dbctx.Context, originalID int) ([]int, error) {
	if originalID <= 0 {
		return nil, nil
	}
	var ids []int
	err := r.handle(dbc).
		Model(&types.Variation{}).
		Where("original_fk = ?", originalID).
		Order("variation_fk ASC").
		Pluck("variation_fk", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
