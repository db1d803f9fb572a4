package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CompraGranelRequest: purchase priced by the whole lot.
type CompraGranelRequest struct {
	Producto    string          `json:"producto"     validate:"required,min=1"`
	Cantidad    decimal.Decimal `json:"cantidad"     validate:"required,gt=0"`
	Unidad      string          `json:"unidad"       validate:"required"`
	PrecioTotal decimal.Decimal `json:"precio_total" validate:"required,gt=0"`
	Proveedor   string          `json:"proveedor"    validate:"required,min=1"`
}

// CompraPaquetesRequest: N packages of a known content each.
type CompraPaquetesRequest struct {
	Producto         string          `json:"producto"           validate:"required,min=1"`
	Paquetes         int             `json:"paquetes"           validate:"required,min=1"`
	Contenido        decimal.Decimal `json:"contenido"          validate:"required,gt=0"`
	Unidad           string          `json:"unidad"             validate:"required"`
	PrecioPorPaquete decimal.Decimal `json:"precio_por_paquete" validate:"required,gt=0"`
	Proveedor        string          `json:"proveedor"          validate:"required,min=1"`
}

// ConsumoRequest issues stock directly, outside of a production run.
type ConsumoRequest struct {
	Producto string          `json:"producto" validate:"required,min=1"`
	Cantidad decimal.Decimal `json:"cantidad" validate:"required,gt=0"`
	Unidad   string          `json:"unidad"   validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CompraResponse struct {
	ID          uuid.UUID       `json:"id"`
	Producto    string          `json:"producto"`
	Cantidad    decimal.Decimal `json:"cantidad"`
	Unidad      string          `json:"unidad"`
	PrecioTotal decimal.Decimal `json:"precio_total"`
	Proveedor   string          `json:"proveedor"`
	Tipo        string          `json:"tipo"`
	// Alerta is non-empty when the purchase went through with a cash warning.
	Alerta string `json:"alerta,omitempty"`
}

type InventarioItemResponse struct {
	Producto        string          `json:"producto"`
	CantidadDisplay string          `json:"cantidad_display"`
	UnidadDisplay   string          `json:"unidad_display"`
	CantidadBase    decimal.Decimal `json:"cantidad_base"`
	UnidadBase      string          `json:"unidad_base"`
	CostoPromedio   decimal.Decimal `json:"costo_promedio"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
}
