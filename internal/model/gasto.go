package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GastoMoney is a monetary expense. When CompraID is set the expense was
// created by a purchase and counts against the physical-cash balance.
type GastoMoney struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descripcion string          `gorm:"not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Comentarios string
	CompraID    *uuid.UUID `gorm:"type:uuid;index"`
	Fecha       time.Time  `gorm:"autoCreateTime;index"`
}

func (GastoMoney) TableName() string { return "gastos_money" }

// GastoProducto is an expense paid in product: it consumes inventory stock.
type GastoProducto struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Producto    string          `gorm:"not null"`
	Cantidad    decimal.Decimal `gorm:"type:decimal(16,4);not null"`
	Unidad      string          `gorm:"type:varchar(10);not null"`
	PrecioTotal decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Comentarios string
	Fecha       time.Time `gorm:"autoCreateTime;index"`
}

func (GastoProducto) TableName() string { return "gastos_productos" }

// Tipos de movimiento de efectivo. Solo TipoCapitalExtra suma al capital.
const (
	TipoCapitalExtra = "Capital Extra"
)

// EfectivoMovimiento is an append-only cash ledger entry. Saldo is the
// balance snapshot at the moment the movement was recorded.
type EfectivoMovimiento struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Tipo        string          `gorm:"type:varchar(30);not null;index"`
	Descripcion string          `gorm:"not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Saldo       decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Fecha       time.Time       `gorm:"autoCreateTime;index"`
}

func (EfectivoMovimiento) TableName() string { return "efectivo_movimientos" }
