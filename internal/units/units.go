// Package units normaliza unidades heterogéneas (peso, volumen, conteo) a una
// unidad base canónica por categoría y convierte entre unidades arbitrarias.
// Todas las cantidades del ledger de inventario se almacenan en unidad base.
package units

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Categoria agrupa unidades que comparten una unidad base.
type Categoria string

const (
	CategoriaPeso    Categoria = "weight"
	CategoriaVolumen Categoria = "volume"
	CategoriaConteo  Categoria = "count"
)

// Unidades base por categoría: todo el inventario se expresa en estas.
const (
	BaseGramo     = "g"
	BaseMililitro = "ml"
	BaseUnidad    = "unit"
)

// ErrUnidadDesconocida is returned when a unit cannot be mapped to any category.
var ErrUnidadDesconocida = errors.New("unidad no reconocida")

// factores multiplicativos hacia la unidad base de cada categoría.
var factores = map[Categoria]map[string]decimal.Decimal{
	CategoriaPeso: {
		"g":  decimal.NewFromInt(1),
		"kg": decimal.NewFromInt(1000),
		"lb": decimal.NewFromFloat(453.592),
		"oz": decimal.NewFromFloat(28.3495),
	},
	CategoriaVolumen: {
		"ml": decimal.NewFromInt(1),
		"l":  decimal.NewFromInt(1000),
	},
	CategoriaConteo: {
		"unit":  decimal.NewFromInt(1),
		"decen": decimal.NewFromInt(10),
		"docen": decimal.NewFromInt(12),
	},
}

// aliases normaliza sinónimos y variantes de escritura a la clave canónica.
var aliases = map[string]string{
	"gr":         "g",
	"gram":       "g",
	"grams":      "g",
	"gramo":      "g",
	"kgs":        "kg",
	"kilogram":   "kg",
	"kilograms":  "kg",
	"lbs":        "lb",
	"libra":      "lb",
	"libras":     "lb",
	"ounce":      "oz",
	"milliliter": "ml",
	"millilitre": "ml",
	"litro":      "l",
	"litros":     "l",
	"unidad":     "unit",
	"dozen":      "docen",
	"diez":       "decen",
}

var basePorCategoria = map[Categoria]string{
	CategoriaPeso:    BaseGramo,
	CategoriaVolumen: BaseMililitro,
	CategoriaConteo:  BaseUnidad,
}

// Normalizar lleva una unidad a su clave canónica (casing, alias).
func Normalizar(unidad string) string {
	u := strings.ToLower(strings.TrimSpace(unidad))
	if canon, ok := aliases[u]; ok {
		return canon
	}
	return u
}

// CategoriaDe devuelve la categoría de una unidad, o error si no existe.
func CategoriaDe(unidad string) (Categoria, error) {
	u := Normalizar(unidad)
	for cat, f := range factores {
		if _, ok := f[u]; ok {
			return cat, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnidadDesconocida, unidad)
}

// UnidadBase devuelve la unidad base de la categoría de la unidad dada.
func UnidadBase(unidad string) (string, error) {
	cat, err := CategoriaDe(unidad)
	if err != nil {
		return "", err
	}
	return basePorCategoria[cat], nil
}

// ConvertirABase convierte una cantidad a la unidad base de su categoría.
// Devuelve la cantidad convertida y la unidad base.
func ConvertirABase(cantidad decimal.Decimal, unidad string) (decimal.Decimal, string, error) {
	u := Normalizar(unidad)
	cat, err := CategoriaDe(u)
	if err != nil {
		return decimal.Zero, "", err
	}
	factor := factores[cat][u]
	return cantidad.Mul(factor), basePorCategoria[cat], nil
}

// ConvertirDesdeBase convierte una cantidad expresada en fromUnidad hacia
// toUnidad. Ambas deben pertenecer a la misma categoría.
func ConvertirDesdeBase(cantidad decimal.Decimal, fromUnidad, toUnidad string) (decimal.Decimal, error) {
	from := Normalizar(fromUnidad)
	to := Normalizar(toUnidad)

	cat, err := CategoriaDe(from)
	if err != nil {
		return decimal.Zero, err
	}
	factorDestino, ok := factores[cat][to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no se puede convertir de %q a %q", ErrUnidadDesconocida, from, to)
	}

	// Llevar primero a la unidad base si hace falta.
	enBase := cantidad
	if from != basePorCategoria[cat] {
		enBase, _, err = ConvertirABase(cantidad, from)
		if err != nil {
			return decimal.Zero, err
		}
	}
	return enBase.Div(factorDestino), nil
}

// Disponibles devuelve las unidades reconocidas agrupadas por categoría,
// en el orden que espera la UI.
func Disponibles() map[Categoria][]string {
	return map[Categoria][]string{
		CategoriaPeso:    {"g", "kg", "lb", "oz"},
		CategoriaVolumen: {"ml", "l"},
		CategoriaConteo:  {"unit", "docen", "decen"},
	}
}
