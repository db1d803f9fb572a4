package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carlos-148/App-Economia-CB/internal/cache"
	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"
	"github.com/Carlos-148/App-Economia-CB/internal/units"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Claves de caché del inventario; toda escritura de stock las invalida.
const (
	CacheKeyInventario = "inventario_completo"
	CacheKeyProducto   = "producto_" // + nombre
)

// InventarioService is the stock ledger: quantities in base units and a
// weighted-average cost per base unit, recalculated only on receipt.
type InventarioService interface {
	// RecibirStockTx adds stock and reweights the average cost inside an
	// open transaction (purchase flow). Pass tx=nil only in unit tests.
	RecibirStockTx(tx *gorm.DB, nombre string, cantidad decimal.Decimal, unidad string, precioTotal decimal.Decimal) error
	// ConsumirStockTx issues stock inside an open transaction. There is no
	// partial issue: insufficient stock fails the whole operation.
	ConsumirStockTx(tx *gorm.DB, nombre string, cantidad decimal.Decimal, unidad string) error
	ConsumirStock(ctx context.Context, nombre string, cantidad decimal.Decimal, unidad string) error

	ObtenerProducto(ctx context.Context, nombre string) (*model.Producto, error)
	Resumen(ctx context.Context) []dto.InventarioItemResponse
	TotalInvertido(ctx context.Context) decimal.Decimal
	InvalidarCache(nombre string)
}

type inventarioService struct {
	repo  repository.InventarioRepository
	cache *cache.Cache
}

func NewInventarioService(repo repository.InventarioRepository, c *cache.Cache) InventarioService {
	return &inventarioService{repo: repo, cache: c}
}

// ── RecibirStockTx ───────────────────────────────────────────────────────────
// Weighted average: unseen product → avg = precioTotal / cantidadBase;
// existing → avg' = (stock*avg + precioTotal) / (stock + cantidadBase).
// Issues never touch the average — only receipts do.

func (s *inventarioService) RecibirStockTx(tx *gorm.DB, nombre string, cantidad decimal.Decimal, unidad string, precioTotal decimal.Decimal) error {
	cantidadBase, unidadBase, err := units.ConvertirABase(cantidad, unidad)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnidadDesconocida, unidad)
	}
	if cantidadBase.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: cantidad debe ser mayor a 0", ErrValidacion)
	}

	p, err := s.repo.FindByNombreTx(tx, nombre)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		nuevo := &model.Producto{
			Nombre:                 nombre,
			CantidadStock:          cantidadBase,
			UnidadBase:             unidadBase,
			CostoPromedioPonderado: precioTotal.Div(cantidadBase),
		}
		if err := s.repo.CreateTx(tx, nuevo); err != nil {
			return err
		}
		log.Info().Str("producto", nombre).
			Str("stock", cantidadBase.String()).Str("unidad", unidadBase).
			Msg("producto nuevo en inventario")
	case err != nil:
		return err
	default:
		nuevoStock := p.CantidadStock.Add(cantidadBase)
		nuevoCosto := p.CostoPromedioPonderado
		if nuevoStock.GreaterThan(decimal.Zero) {
			nuevoCosto = p.CantidadStock.Mul(p.CostoPromedioPonderado).
				Add(precioTotal).
				Div(nuevoStock)
		}
		p.CantidadStock = nuevoStock
		p.CostoPromedioPonderado = nuevoCosto
		p.UnidadBase = unidadBase
		if err := s.repo.UpdateTx(tx, p); err != nil {
			return err
		}
		log.Info().Str("producto", nombre).
			Str("stock", nuevoStock.String()).Str("costo_promedio", nuevoCosto.String()).
			Msg("stock actualizado desde compra")
	}

	s.InvalidarCache(nombre)
	return nil
}

// ── ConsumirStockTx ──────────────────────────────────────────────────────────

func (s *inventarioService) ConsumirStockTx(tx *gorm.DB, nombre string, cantidad decimal.Decimal, unidad string) error {
	cantidadBase, _, err := units.ConvertirABase(cantidad, unidad)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrUnidadDesconocida, unidad)
	}

	p, err := s.repo.FindByNombreTx(tx, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: producto %q", ErrNoEncontrado, nombre)
		}
		return err
	}

	if p.CantidadStock.LessThan(cantidadBase) {
		return fmt.Errorf("%w: %q disponible %s %s, requerido %s %s",
			ErrStockInsuficiente, nombre,
			p.CantidadStock.StringFixed(2), p.UnidadBase,
			cantidadBase.StringFixed(2), p.UnidadBase)
	}

	p.CantidadStock = p.CantidadStock.Sub(cantidadBase)
	if err := s.repo.UpdateTx(tx, p); err != nil {
		return err
	}

	log.Info().Str("producto", nombre).
		Str("consumido", cantidadBase.String()).Str("restante", p.CantidadStock.String()).
		Msg("stock consumido")
	s.InvalidarCache(nombre)
	return nil
}

func (s *inventarioService) ConsumirStock(ctx context.Context, nombre string, cantidad decimal.Decimal, unidad string) error {
	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if tx == nil {
			tx = s.repo.DB()
		}
		return s.ConsumirStockTx(tx, nombre, cantidad, unidad)
	})
}

func (s *inventarioService) ObtenerProducto(ctx context.Context, nombre string) (*model.Producto, error) {
	p, err := s.repo.FindByNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: producto %q", ErrNoEncontrado, nombre)
		}
		return nil, err
	}
	return p, nil
}

// ── Resumen ──────────────────────────────────────────────────────────────────
// Fail-soft read: logs and returns an empty slice on error so display code
// never crashes. Human-friendly display units: g→kg/lb, ml→l above thresholds.

func (s *inventarioService) Resumen(ctx context.Context) []dto.InventarioItemResponse {
	if cached, ok := s.cache.Get(CacheKeyInventario); ok {
		if items, ok := cached.([]dto.InventarioItemResponse); ok {
			return items
		}
	}

	productos, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error obteniendo resumen de inventario")
		return []dto.InventarioItemResponse{}
	}

	items := make([]dto.InventarioItemResponse, 0, len(productos))
	for _, p := range productos {
		displayCantidad, displayUnidad := displayUnits(p.CantidadStock, p.UnidadBase)
		items = append(items, dto.InventarioItemResponse{
			Producto:        p.Nombre,
			CantidadDisplay: displayCantidad.StringFixed(2),
			UnidadDisplay:   displayUnidad,
			CantidadBase:    p.CantidadStock,
			UnidadBase:      p.UnidadBase,
			CostoPromedio:   p.CostoPromedioPonderado,
			ValorTotal:      p.CantidadStock.Mul(p.CostoPromedioPonderado),
		})
	}

	s.cache.Set(CacheKeyInventario, items)
	return items
}

func (s *inventarioService) TotalInvertido(ctx context.Context) decimal.Decimal {
	total, err := s.repo.TotalInvertido(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error calculando total invertido")
		return decimal.Zero
	}
	return total
}

func (s *inventarioService) InvalidarCache(nombre string) {
	s.cache.Invalidate(CacheKeyInventario)
	s.cache.Invalidate(CacheKeyProducto + nombre)
}

var (
	milDec = decimal.NewFromInt(1000)
	lbDec  = decimal.NewFromFloat(453.592)
)

// displayUnits picks a readable unit for summary listings.
func displayUnits(cantidadBase decimal.Decimal, unidadBase string) (decimal.Decimal, string) {
	switch unidadBase {
	case units.BaseGramo:
		if cantidadBase.GreaterThanOrEqual(milDec) {
			return cantidadBase.Div(milDec), "kg"
		}
		if cantidadBase.GreaterThanOrEqual(lbDec) {
			return cantidadBase.Div(lbDec), "lb"
		}
	case units.BaseMililitro:
		if cantidadBase.GreaterThanOrEqual(milDec) {
			return cantidadBase.Div(milDec), "l"
		}
	}
	return cantidadBase, unidadBase
}
