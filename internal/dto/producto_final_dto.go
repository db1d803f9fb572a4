package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ComponenteRequest struct {
	SubproductoID uuid.UUID `json:"subproducto_id" validate:"required"`
	UnidadesRinde int       `json:"unidades_rinde" validate:"required,min=1"`
}

type ProductoFinalRequest struct {
	Nombre      string              `json:"nombre"       validate:"required,min=1,max=100"`
	PrecioVenta *decimal.Decimal    `json:"precio_venta" validate:"omitempty,gt=0"`
	Componentes []ComponenteRequest `json:"componentes"  validate:"required,min=1,dive"`
}

type PrecioVentaRequest struct {
	PrecioVenta decimal.Decimal `json:"precio_venta" validate:"required,gt=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ComponenteInfoResponse struct {
	Subproducto   string          `json:"subproducto"`
	UnidadesRinde int             `json:"unidades_rinde"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
}

// ProductoFinalInfoResponse carries both cost figures: CostoUnitarioTotal is
// the frozen accounting basis; CostoDisplay comes from the latest production
// runs and is recomputed on every (uncached) read.
type ProductoFinalInfoResponse struct {
	ID                 uuid.UUID                `json:"id"`
	Nombre             string                   `json:"nombre"`
	PrecioVenta        decimal.Decimal          `json:"precio_venta"`
	CostoUnitarioTotal decimal.Decimal          `json:"costo_unitario_total"`
	CostoDisplay       decimal.Decimal          `json:"costo_display"`
	MargenDisplay      decimal.Decimal          `json:"margen_display"`
	Componentes        []ComponenteInfoResponse `json:"componentes"`
}
