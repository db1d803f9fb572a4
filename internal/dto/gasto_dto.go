package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type GastoMoneyRequest struct {
	Descripcion string          `json:"descripcion" validate:"required,min=1,max=200"`
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Comentarios string          `json:"comentarios" validate:"omitempty,max=500"`
}

type GastoProductoRequest struct {
	Producto    string          `json:"producto"    validate:"required,min=1"`
	Cantidad    decimal.Decimal `json:"cantidad"    validate:"required,gt=0"`
	Unidad      string          `json:"unidad"      validate:"required"`
	Comentarios string          `json:"comentarios" validate:"omitempty,max=500"`
}

type CapitalRequest struct {
	Monto       decimal.Decimal `json:"monto"       validate:"required,gt=0"`
	Descripcion string          `json:"descripcion" validate:"omitempty,max=200"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// EstadoCajaResponse is the derived cash state; nothing here is stored.
type EstadoCajaResponse struct {
	CapitalTotal  decimal.Decimal `json:"capital_total"`
	GastosCompras decimal.Decimal `json:"gastos_compras"`
	DineroFisico  decimal.Decimal `json:"dinero_fisico"`
}
