package repository

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InventarioRepository defines the data access contract for the stock ledger.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type InventarioRepository interface {
	FindByNombre(ctx context.Context, nombre string) (*model.Producto, error)
	List(ctx context.Context) ([]model.Producto, error)
	TotalInvertido(ctx context.Context) (decimal.Decimal, error)

	// Used inside transactions — callers must pass the tx instance
	FindByNombreTx(tx *gorm.DB, nombre string) (*model.Producto, error)
	CreateTx(tx *gorm.DB, p *model.Producto) error
	UpdateTx(tx *gorm.DB, p *model.Producto) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type inventarioRepo struct{ db *gorm.DB }

func NewInventarioRepository(db *gorm.DB) InventarioRepository { return &inventarioRepo{db: db} }

func (r *inventarioRepo) FindByNombre(ctx context.Context, nombre string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("producto = ?", nombre).First(&p).Error
	return &p, err
}

func (r *inventarioRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).
		Where("cantidad_stock > 0").
		Order("producto ASC").
		Find(&productos).Error
	return productos, err
}

func (r *inventarioRepo) TotalInvertido(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Select("SUM(cantidad_stock * costo_promedio_ponderado)").
		Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}

func (r *inventarioRepo) FindByNombreTx(tx *gorm.DB, nombre string) (*model.Producto, error) {
	var p model.Producto
	err := tx.Where("producto = ?", nombre).First(&p).Error
	return &p, err
}

func (r *inventarioRepo) CreateTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Create(p).Error
}

func (r *inventarioRepo) UpdateTx(tx *gorm.DB, p *model.Producto) error {
	return tx.Model(&model.Producto{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"cantidad_stock":           p.CantidadStock,
		"costo_promedio_ponderado": p.CostoPromedioPonderado,
		"unidad_base":              p.UnidadBase,
	}).Error
}

func (r *inventarioRepo) DB() *gorm.DB { return r.db }
