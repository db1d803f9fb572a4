package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductoFinal is a sellable catalog product composed of one or more
// recipes. CostoUnitarioTotal is fixed at creation as
// Σ(costo_total_subproducto / unidades_rinde) over its components and is the
// cost basis used by accounting at sale time. The dynamic display cost built
// from the latest production runs is computed on read and never written back.
type ProductoFinal struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre string    `gorm:"uniqueIndex;not null"`
	// PrecioVenta is the catalog price; nil until the user sets it
	PrecioVenta        *decimal.Decimal `gorm:"type:decimal(14,2)"`
	CostoUnitarioTotal decimal.Decimal  `gorm:"type:decimal(14,4);not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Componentes []ProductoFinalSubproducto `gorm:"foreignKey:ProductoFinalID"`
}

func (ProductoFinal) TableName() string { return "productos_finales" }

// ProductoFinalSubproducto links a final product to one component recipe.
// UnidadesRinde is how many final units that recipe batch yields.
type ProductoFinalSubproducto struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductoFinalID uuid.UUID `gorm:"type:uuid;not null;index"`
	SubproductoID   uuid.UUID `gorm:"type:uuid;not null;index"`
	UnidadesRinde   int       `gorm:"not null"`

	Subproducto *Subproducto `gorm:"foreignKey:SubproductoID"`
}

func (ProductoFinalSubproducto) TableName() string { return "producto_final_subproductos" }
