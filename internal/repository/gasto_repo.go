package repository

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GastoRepository interface {
	CreateMoney(ctx context.Context, g *model.GastoMoney) error
	CreateMoneyTx(tx *gorm.DB, g *model.GastoMoney) error
	CreateProducto(ctx context.Context, g *model.GastoProducto) error
	CreateProductoTx(tx *gorm.DB, g *model.GastoProducto) error

	ListMoney(ctx context.Context, limit int) ([]model.GastoMoney, error)
	ListProductos(ctx context.Context, limit int) ([]model.GastoProducto, error)

	// TotalGastos = Σ gastos_money.monto + Σ gastos_productos.precio_total
	TotalGastos(ctx context.Context) (decimal.Decimal, error)
	// TotalGastosCompras = Σ gastos_money.monto with a linked compra row;
	// this is the expenditure side of the physical-cash balance.
	TotalGastosCompras(ctx context.Context) (decimal.Decimal, error)

	DB() *gorm.DB
}

type gastoRepo struct{ db *gorm.DB }

func NewGastoRepository(db *gorm.DB) GastoRepository { return &gastoRepo{db: db} }

func (r *gastoRepo) CreateMoney(ctx context.Context, g *model.GastoMoney) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) CreateMoneyTx(tx *gorm.DB, g *model.GastoMoney) error {
	return tx.Create(g).Error
}

func (r *gastoRepo) CreateProducto(ctx context.Context, g *model.GastoProducto) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *gastoRepo) CreateProductoTx(tx *gorm.DB, g *model.GastoProducto) error {
	return tx.Create(g).Error
}

func (r *gastoRepo) ListMoney(ctx context.Context, limit int) ([]model.GastoMoney, error) {
	if limit < 1 {
		limit = 50
	}
	var gastos []model.GastoMoney
	err := r.db.WithContext(ctx).Order("fecha DESC").Limit(limit).Find(&gastos).Error
	return gastos, err
}

func (r *gastoRepo) ListProductos(ctx context.Context, limit int) ([]model.GastoProducto, error) {
	if limit < 1 {
		limit = 50
	}
	var gastos []model.GastoProducto
	err := r.db.WithContext(ctx).Order("fecha DESC").Limit(limit).Find(&gastos).Error
	return gastos, err
}

func (r *gastoRepo) TotalGastos(ctx context.Context) (decimal.Decimal, error) {
	var money, productos decimal.NullDecimal
	if err := r.db.WithContext(ctx).Model(&model.GastoMoney{}).
		Select("COALESCE(SUM(monto), 0)").Scan(&money).Error; err != nil {
		return decimal.Zero, err
	}
	if err := r.db.WithContext(ctx).Model(&model.GastoProducto{}).
		Select("COALESCE(SUM(precio_total), 0)").Scan(&productos).Error; err != nil {
		return decimal.Zero, err
	}
	return money.Decimal.Add(productos.Decimal), nil
}

func (r *gastoRepo) TotalGastosCompras(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.GastoMoney{}).
		Select("COALESCE(SUM(monto), 0)").
		Where("compra_id IS NOT NULL").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *gastoRepo) DB() *gorm.DB { return r.db }
