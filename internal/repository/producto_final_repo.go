package repository

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductoFinalRepository interface {
	CreateTx(tx *gorm.DB, pf *model.ProductoFinal) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.ProductoFinal, error)
	FindByNombre(ctx context.Context, nombre string) (*model.ProductoFinal, error)
	List(ctx context.Context) ([]model.ProductoFinal, error)
	UpdatePrecioVenta(ctx context.Context, id uuid.UUID, precio decimal.Decimal) error
	Delete(ctx context.Context, id uuid.UUID) error
	DB() *gorm.DB
}

type productoFinalRepo struct{ db *gorm.DB }

func NewProductoFinalRepository(db *gorm.DB) ProductoFinalRepository {
	return &productoFinalRepo{db: db}
}

func (r *productoFinalRepo) CreateTx(tx *gorm.DB, pf *model.ProductoFinal) error {
	return tx.Create(pf).Error
}

func (r *productoFinalRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.ProductoFinal, error) {
	var pf model.ProductoFinal
	err := r.db.WithContext(ctx).
		Preload("Componentes.Subproducto").
		First(&pf, id).Error
	return &pf, err
}

func (r *productoFinalRepo) FindByNombre(ctx context.Context, nombre string) (*model.ProductoFinal, error) {
	var pf model.ProductoFinal
	err := r.db.WithContext(ctx).
		Where("nombre = ?", nombre).
		First(&pf).Error
	return &pf, err
}

func (r *productoFinalRepo) List(ctx context.Context) ([]model.ProductoFinal, error) {
	var productos []model.ProductoFinal
	err := r.db.WithContext(ctx).
		Preload("Componentes.Subproducto").
		Order("nombre ASC").
		Find(&productos).Error
	return productos, err
}

func (r *productoFinalRepo) UpdatePrecioVenta(ctx context.Context, id uuid.UUID, precio decimal.Decimal) error {
	res := r.db.WithContext(ctx).Model(&model.ProductoFinal{}).
		Where("id = ?", id).
		Update("precio_venta", precio)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productoFinalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("producto_final_id = ?", id).Delete(&model.ProductoFinalSubproducto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ProductoFinal{}, id).Error
	})
}

func (r *productoFinalRepo) DB() *gorm.DB { return r.db }
