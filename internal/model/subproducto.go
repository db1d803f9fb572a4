package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subproducto is a recipe: a bill of ingredients with a cost snapshot frozen
// at creation time from the inventory's weighted-average costs. The snapshot
// is NEVER recomputed, even if ingredient costs change later.
type Subproducto struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre                string          `gorm:"uniqueIndex;not null"`
	CostoTotalSubproducto decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt             time.Time

	Ingredientes []SubproductoIngrediente `gorm:"foreignKey:SubproductoID"`
}

func (Subproducto) TableName() string { return "subproductos" }

// SubproductoIngrediente is one recipe line. Quantities are stored verbatim
// in the unit the user entered; production consumes exactly these quantities.
type SubproductoIngrediente struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubproductoID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductoIngrediente string          `gorm:"not null"`
	CantidadUsada       decimal.Decimal `gorm:"type:decimal(16,4);not null"`
	UnidadUsada         string          `gorm:"type:varchar(10);not null"`
}

func (SubproductoIngrediente) TableName() string { return "subproducto_ingredientes" }

// Tipos de unidad declarada en una producción.
const (
	TipoUnidadReales      = "reales"
	TipoUnidadAproximadas = "aproximadas"
)

// SubproductoProduccion is one immutable execution of a recipe batch.
// UnidadesProducidas only amortizes the recipe's fixed cost per unit — the
// ingredient consumption is the recipe's line quantities, not scaled by it.
// Rows are delete-only; there is no update path.
type SubproductoProduccion struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SubproductoID      uuid.UUID `gorm:"type:uuid;not null;index"`
	UnidadesProducidas int       `gorm:"not null"`
	// TipoUnidad: "reales" | "aproximadas"
	TipoUnidad     string          `gorm:"type:varchar(15);not null;default:'reales'"`
	CostoTotalMasa decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CostoUnitario  decimal.Decimal `gorm:"type:decimal(14,4);not null"`
	CreatedAt      time.Time       `gorm:"index"`
}

func (SubproductoProduccion) TableName() string { return "subproducto_producciones" }
