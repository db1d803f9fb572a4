package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cliente is a sales customer. Inactive clients cannot receive new sales.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"uniqueIndex;not null"`
	Activo    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }

// VentaCabecera is the sale header; TotalVenta is the sum of item subtotals.
type VentaCabecera struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ClienteID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalVenta decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt  time.Time

	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
	Items   []VentaItem `gorm:"foreignKey:VentaID"`
}

func (VentaCabecera) TableName() string { return "ventas_cabecera" }

// VentaItem is one sale line. PrecioUnitarioVenta is the NEGOTIATED price for
// this sale — accounting deliberately ignores it and reads the catalog fields
// of the final product instead.
type VentaItem struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoFinalID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CantidadVendida     int             `gorm:"not null"`
	PrecioUnitarioVenta decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(14,2);not null"`

	ProductoFinal *ProductoFinal `gorm:"foreignKey:ProductoFinalID"`
}

func (VentaItem) TableName() string { return "ventas_items" }

// Contabilidad is one immutable accounting entry per sale line, snapshotted
// at sale time from the final product's stored catalog cost and price so that
// later cost changes never rewrite past margins.
type Contabilidad struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VentaID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoFinalID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CantidadVendida     int             `gorm:"not null"`
	PrecioUnitarioCosto decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	PrecioUnitarioVenta decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CostoTotal          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	IngresoTotal        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	GananciaNeta        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	MargenGanancia      decimal.Decimal `gorm:"type:decimal(7,2);not null"`
	TipoProducto        string          `gorm:"not null"`
	FechaVenta          time.Time       `gorm:"autoCreateTime;index"`

	ProductoFinal *ProductoFinal `gorm:"foreignKey:ProductoFinalID"`
}

func (Contabilidad) TableName() string { return "contabilidad" }
