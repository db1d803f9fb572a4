package repository

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VentaRepository interface {
	CreateTx(tx *gorm.DB, v *model.VentaCabecera) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.VentaCabecera, error)
	List(ctx context.Context, limit int) ([]model.VentaCabecera, error)
	DB() *gorm.DB
}

type ventaRepo struct{ db *gorm.DB }

func NewVentaRepository(db *gorm.DB) VentaRepository { return &ventaRepo{db: db} }

func (r *ventaRepo) CreateTx(tx *gorm.DB, v *model.VentaCabecera) error {
	return tx.Create(v).Error
}

func (r *ventaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.VentaCabecera, error) {
	var v model.VentaCabecera
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Items.ProductoFinal").
		First(&v, id).Error
	return &v, err
}

func (r *ventaRepo) List(ctx context.Context, limit int) ([]model.VentaCabecera, error) {
	if limit < 1 {
		limit = 100
	}
	var ventas []model.VentaCabecera
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Items.ProductoFinal").
		Order("created_at DESC").
		Limit(limit).
		Find(&ventas).Error
	return ventas, err
}

func (r *ventaRepo) DB() *gorm.DB { return r.db }
