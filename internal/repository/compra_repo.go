package repository

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"gorm.io/gorm"
)

type CompraRepository interface {
	CreateTx(tx *gorm.DB, c *model.Compra) error
	List(ctx context.Context, limit int) ([]model.Compra, error)
	ListByProducto(ctx context.Context, producto string) ([]model.Compra, error)
	ListByProveedor(ctx context.Context, proveedor string) ([]model.Compra, error)
	DB() *gorm.DB
}

type compraRepo struct{ db *gorm.DB }

func NewCompraRepository(db *gorm.DB) CompraRepository { return &compraRepo{db: db} }

func (r *compraRepo) CreateTx(tx *gorm.DB, c *model.Compra) error {
	return tx.Create(c).Error
}

func (r *compraRepo) List(ctx context.Context, limit int) ([]model.Compra, error) {
	if limit < 1 {
		limit = 100
	}
	var compras []model.Compra
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&compras).Error
	return compras, err
}

func (r *compraRepo) ListByProducto(ctx context.Context, producto string) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).Where("producto = ?", producto).
		Order("created_at DESC").Find(&compras).Error
	return compras, err
}

func (r *compraRepo) ListByProveedor(ctx context.Context, proveedor string) ([]model.Compra, error) {
	var compras []model.Compra
	err := r.db.WithContext(ctx).Where("proveedor = ?", proveedor).
		Order("created_at DESC").Find(&compras).Error
	return compras, err
}

func (r *compraRepo) DB() *gorm.DB { return r.db }
