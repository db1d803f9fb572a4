package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carlos-148/App-Economia-CB/internal/cache"
	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const cacheKeyProductoFinal = "producto_final_info_" // + id

// ProductoFinalService manages the sellable catalog. Each final product
// carries two cost figures that must never be mixed up: CostoUnitarioTotal,
// frozen at creation from the recipe snapshots and used by accounting, and a
// display cost recomputed on read from the latest production runs.
type ProductoFinalService interface {
	Crear(ctx context.Context, req dto.ProductoFinalRequest) (*model.ProductoFinal, error)
	Obtener(ctx context.Context, id uuid.UUID) (*model.ProductoFinal, error)
	Listar(ctx context.Context) ([]model.ProductoFinal, error)
	// Info is the display read path: dynamic cost from latest runs, never
	// persisted. Missing runs count as cost 0 with a logged warning.
	Info(ctx context.Context, id uuid.UUID) (*dto.ProductoFinalInfoResponse, error)
	SetPrecioVenta(ctx context.Context, id uuid.UUID, precio decimal.Decimal) error
	Eliminar(ctx context.Context, id uuid.UUID) error
}

type productoFinalService struct {
	repo    repository.ProductoFinalRepository
	subRepo repository.SubproductoRepository
	cache   *cache.Cache
}

func NewProductoFinalService(
	repo repository.ProductoFinalRepository,
	subRepo repository.SubproductoRepository,
	c *cache.Cache,
) ProductoFinalService {
	return &productoFinalService{repo: repo, subRepo: subRepo, cache: c}
}

func (s *productoFinalService) Crear(ctx context.Context, req dto.ProductoFinalRequest) (*model.ProductoFinal, error) {
	if len(req.Componentes) == 0 {
		return nil, fmt.Errorf("%w: el producto final necesita al menos un subproducto", ErrValidacion)
	}

	costoTotal := decimal.Zero
	componentes := make([]model.ProductoFinalSubproducto, 0, len(req.Componentes))
	for _, comp := range req.Componentes {
		if comp.UnidadesRinde <= 0 {
			return nil, fmt.Errorf("%w: unidades_rinde debe ser mayor a 0", ErrValidacion)
		}
		sub, err := s.subRepo.FindByID(ctx, comp.SubproductoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: subproducto %s", ErrNoEncontrado, comp.SubproductoID)
			}
			return nil, err
		}
		// Cost basis comes from the recipe snapshot, not from any run.
		costoTotal = costoTotal.Add(
			sub.CostoTotalSubproducto.Div(decimal.NewFromInt(int64(comp.UnidadesRinde))))
		componentes = append(componentes, model.ProductoFinalSubproducto{
			SubproductoID: comp.SubproductoID,
			UnidadesRinde: comp.UnidadesRinde,
		})
	}

	pf := &model.ProductoFinal{
		Nombre:             req.Nombre,
		CostoUnitarioTotal: costoTotal,
		Componentes:        componentes,
	}
	if req.PrecioVenta != nil && req.PrecioVenta.GreaterThan(decimal.Zero) {
		pf.PrecioVenta = req.PrecioVenta
	}

	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, pf)
	}); err != nil {
		return nil, err
	}

	log.Info().Str("producto_final", pf.Nombre).
		Str("costo_unitario_total", costoTotal.String()).
		Msg("producto final creado")
	return pf, nil
}

func (s *productoFinalService) Obtener(ctx context.Context, id uuid.UUID) (*model.ProductoFinal, error) {
	pf, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: producto final %s", ErrNoEncontrado, id)
		}
		return nil, err
	}
	return pf, nil
}

func (s *productoFinalService) Listar(ctx context.Context) ([]model.ProductoFinal, error) {
	return s.repo.List(ctx)
}

func (s *productoFinalService) Info(ctx context.Context, id uuid.UUID) (*dto.ProductoFinalInfoResponse, error) {
	key := cacheKeyProductoFinal + id.String()
	if cached, ok := s.cache.Get(key); ok {
		if info, ok := cached.(*dto.ProductoFinalInfoResponse); ok {
			return info, nil
		}
	}

	pf, err := s.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	costoDisplay := decimal.Zero
	componentes := make([]dto.ComponenteInfoResponse, 0, len(pf.Componentes))
	for _, comp := range pf.Componentes {
		nombre := ""
		if comp.Subproducto != nil {
			nombre = comp.Subproducto.Nombre
		}
		costoComp := decimal.Zero
		ultima, err := s.subRepo.FindUltimaProduccion(ctx, comp.SubproductoID)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			log.Warn().Str("producto_final", pf.Nombre).Str("subproducto", nombre).
				Msg("sin producciones registradas, costo de componente en 0")
		case err != nil:
			return nil, err
		default:
			costoComp = ultima.CostoUnitario
		}
		costoDisplay = costoDisplay.Add(costoComp)
		componentes = append(componentes, dto.ComponenteInfoResponse{
			Subproducto:   nombre,
			UnidadesRinde: comp.UnidadesRinde,
			CostoUnitario: costoComp,
		})
	}

	precioVenta := decimal.Zero
	if pf.PrecioVenta != nil {
		precioVenta = *pf.PrecioVenta
	}
	margen := decimal.Zero
	if costoDisplay.GreaterThan(decimal.Zero) {
		margen = precioVenta.Sub(costoDisplay).Div(costoDisplay).Mul(decimal.NewFromInt(100))
	}

	info := &dto.ProductoFinalInfoResponse{
		ID:                 pf.ID,
		Nombre:             pf.Nombre,
		PrecioVenta:        precioVenta,
		CostoUnitarioTotal: pf.CostoUnitarioTotal,
		CostoDisplay:       costoDisplay,
		MargenDisplay:      margen,
		Componentes:        componentes,
	}
	s.cache.Set(key, info)
	return info, nil
}

func (s *productoFinalService) SetPrecioVenta(ctx context.Context, id uuid.UUID, precio decimal.Decimal) error {
	if precio.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: el precio debe ser mayor a 0", ErrValidacion)
	}
	if err := s.repo.UpdatePrecioVenta(ctx, id, precio); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: producto final %s", ErrNoEncontrado, id)
		}
		return err
	}
	s.cache.Invalidate(cacheKeyProductoFinal + id.String())
	log.Info().Str("producto_final_id", id.String()).Str("precio_venta", precio.String()).
		Msg("precio de venta actualizado")
	return nil
}

func (s *productoFinalService) Eliminar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Obtener(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(cacheKeyProductoFinal + id.String())
	return nil
}
