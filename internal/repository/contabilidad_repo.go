package repository

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ResumenGeneral aggregates the whole accounting ledger.
type ResumenGeneral struct {
	TotalVentas    int64           `json:"total_ventas"`
	TotalUnidades  int64           `json:"total_unidades"`
	TotalIngresos  decimal.Decimal `json:"total_ingresos"`
	TotalCostos    decimal.Decimal `json:"total_costos"`
	TotalGanancia  decimal.Decimal `json:"total_ganancia"`
	MargenPromedio decimal.Decimal `json:"margen_promedio"`
}

// ResumenProducto aggregates accounting entries per final product.
type ResumenProducto struct {
	NombreProducto string          `json:"nombre_producto"`
	NumVentas      int64           `json:"num_ventas"`
	TotalUnidades  int64           `json:"total_unidades"`
	TotalIngresos  decimal.Decimal `json:"total_ingresos"`
	TotalCostos    decimal.Decimal `json:"total_costos"`
	TotalGanancia  decimal.Decimal `json:"total_ganancia"`
	MargenPromedio decimal.Decimal `json:"margen_promedio"`
}

// ContabilidadRepository is append-only: entries are never updated or deleted.
type ContabilidadRepository interface {
	Create(ctx context.Context, e *model.Contabilidad) error
	Historial(ctx context.Context, limit int) ([]model.Contabilidad, error)
	ResumenGeneral(ctx context.Context) (*ResumenGeneral, error)
	ResumenPorProducto(ctx context.Context) ([]ResumenProducto, error)
}

type contabilidadRepo struct{ db *gorm.DB }

func NewContabilidadRepository(db *gorm.DB) ContabilidadRepository {
	return &contabilidadRepo{db: db}
}

func (r *contabilidadRepo) Create(ctx context.Context, e *model.Contabilidad) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *contabilidadRepo) Historial(ctx context.Context, limit int) ([]model.Contabilidad, error) {
	if limit < 1 {
		limit = 100
	}
	var entradas []model.Contabilidad
	err := r.db.WithContext(ctx).
		Preload("ProductoFinal").
		Order("fecha_venta DESC").
		Limit(limit).
		Find(&entradas).Error
	return entradas, err
}

func (r *contabilidadRepo) ResumenGeneral(ctx context.Context) (*ResumenGeneral, error) {
	var res ResumenGeneral
	err := r.db.WithContext(ctx).Model(&model.Contabilidad{}).
		Select(`COUNT(*) AS total_ventas,
			COALESCE(SUM(cantidad_vendida), 0) AS total_unidades,
			COALESCE(SUM(ingreso_total), 0) AS total_ingresos,
			COALESCE(SUM(costo_total), 0) AS total_costos,
			COALESCE(SUM(ganancia_neta), 0) AS total_ganancia,
			COALESCE(AVG(margen_ganancia), 0) AS margen_promedio`).
		Scan(&res).Error
	return &res, err
}

func (r *contabilidadRepo) ResumenPorProducto(ctx context.Context) ([]ResumenProducto, error) {
	var res []ResumenProducto
	err := r.db.WithContext(ctx).Model(&model.Contabilidad{}).
		Select(`pf.nombre AS nombre_producto,
			COUNT(*) AS num_ventas,
			COALESCE(SUM(contabilidad.cantidad_vendida), 0) AS total_unidades,
			COALESCE(SUM(contabilidad.ingreso_total), 0) AS total_ingresos,
			COALESCE(SUM(contabilidad.costo_total), 0) AS total_costos,
			COALESCE(SUM(contabilidad.ganancia_neta), 0) AS total_ganancia,
			COALESCE(AVG(contabilidad.margen_ganancia), 0) AS margen_promedio`).
		Joins("JOIN productos_finales pf ON pf.id = contabilidad.producto_final_id").
		Group("pf.nombre").
		Order("total_ganancia DESC").
		Scan(&res).Error
	return res, err
}
