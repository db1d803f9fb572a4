package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ClienteRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

type VentaItemRequest struct {
	ProductoFinalID uuid.UUID `json:"producto_final_id" validate:"required"`
	Cantidad        int       `json:"cantidad"          validate:"required,min=1"`
	// PrecioUnitario is the negotiated price for THIS sale; accounting still
	// uses the catalog price.
	PrecioUnitario decimal.Decimal `json:"precio_unitario" validate:"required,gt=0"`
}

type VentaRequest struct {
	ClienteID    uuid.UUID          `json:"cliente_id"    validate:"required"`
	TipoProducto string             `json:"tipo_producto" validate:"omitempty,max=50"`
	Items        []VentaItemRequest `json:"items"         validate:"required,min=1,dive"`
}
