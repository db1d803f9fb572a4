package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type IngredienteRequest struct {
	Producto string          `json:"producto" validate:"required,min=1"`
	Cantidad decimal.Decimal `json:"cantidad" validate:"required,gt=0"`
	Unidad   string          `json:"unidad"   validate:"required"`
}

type SubproductoRequest struct {
	Nombre       string               `json:"nombre"       validate:"required,min=1,max=100"`
	Ingredientes []IngredienteRequest `json:"ingredientes" validate:"required,min=1,dive"`
}

type EstimacionRequest struct {
	SubproductoID uuid.UUID `json:"subproducto_id" validate:"required"`
	Unidades      int       `json:"unidades"       validate:"required"`
}

type ProduccionRequest struct {
	SubproductoID uuid.UUID `json:"subproducto_id" validate:"required"`
	Unidades      int       `json:"unidades"       validate:"required,min=1"`
	// TipoUnidad: "reales" | "aproximadas"; empty defaults to reales.
	TipoUnidad string `json:"tipo_unidad" validate:"omitempty,oneof=reales aproximadas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EstimacionResponse struct {
	Subproducto    string          `json:"subproducto"`
	Unidades       int             `json:"unidades"`
	CostoTotalMasa decimal.Decimal `json:"costo_total_masa"`
	CostoUnitario  decimal.Decimal `json:"costo_unitario"`
}
