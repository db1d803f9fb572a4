package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Producto is one stock item of the inventario ledger. Quantities are always
// stored in the base unit of the product's category (g, ml or unit) and
// CostoPromedioPonderado is the running weighted-average cost per base unit,
// recalculated only on receipt — never on issue.
type Producto struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"column:producto;uniqueIndex;not null"`
	// CantidadStock is in base units; invariant: >= 0
	CantidadStock          decimal.Decimal `gorm:"type:decimal(16,4);not null;default:0"`
	UnidadBase             string          `gorm:"type:varchar(10);not null"`
	CostoPromedioPonderado decimal.Decimal `gorm:"type:decimal(16,6);not null;default:0"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (Producto) TableName() string { return "inventario" }

// Tipos de compra.
const (
	CompraTipoGranel   = "granel"
	CompraTipoPaquetes = "paquetes"
)

// Compra registra cada compra de mercadería. La fila se crea junto con la
// recepción de stock y el gasto vinculado, dentro de una misma transacción.
type Compra struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Producto     string          `gorm:"not null;index"`
	Cantidad     decimal.Decimal `gorm:"type:decimal(16,4);not null"`
	Unidad       string          `gorm:"type:varchar(10);not null"`
	PrecioCompra decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PrecioTotal  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Proveedor    string          `gorm:"not null;index"`
	// Tipo: "granel" | "paquetes"
	Tipo      string `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
}

func (Compra) TableName() string { return "compras" }
