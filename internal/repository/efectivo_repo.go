package repository

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EfectivoRepository is the append-only cash movement ledger.
type EfectivoRepository interface {
	Create(ctx context.Context, m *model.EfectivoMovimiento) error
	List(ctx context.Context, limit int) ([]model.EfectivoMovimiento, error)
	// CapitalTotal = Σ monto of "Capital Extra" movements — capital the owner
	// injected directly, never sale proceeds.
	CapitalTotal(ctx context.Context) (decimal.Decimal, error)
}

type efectivoRepo struct{ db *gorm.DB }

func NewEfectivoRepository(db *gorm.DB) EfectivoRepository { return &efectivoRepo{db: db} }

func (r *efectivoRepo) Create(ctx context.Context, m *model.EfectivoMovimiento) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *efectivoRepo) List(ctx context.Context, limit int) ([]model.EfectivoMovimiento, error) {
	if limit < 1 {
		limit = 50
	}
	var movs []model.EfectivoMovimiento
	err := r.db.WithContext(ctx).Order("fecha DESC").Limit(limit).Find(&movs).Error
	return movs, err
}

func (r *efectivoRepo) CapitalTotal(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.EfectivoMovimiento{}).
		Select("COALESCE(SUM(monto), 0)").
		Where("tipo = ?", model.TipoCapitalExtra).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
