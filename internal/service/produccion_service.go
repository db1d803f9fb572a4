package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"
	"github.com/Carlos-148/App-Economia-CB/internal/units"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProduccionService manages recipes (subproductos) and their production runs.
// A recipe freezes its total cost from the inventory's weighted averages at
// creation time. A production run consumes exactly the recipe's line
// quantities from inventory; the declared unit count only amortizes the
// batch cost per unit.
type ProduccionService interface {
	CrearSubproducto(ctx context.Context, req dto.SubproductoRequest) (*model.Subproducto, error)
	ObtenerSubproducto(ctx context.Context, id uuid.UUID) (*model.Subproducto, error)
	ListarSubproductos(ctx context.Context) ([]model.Subproducto, error)
	EliminarSubproducto(ctx context.Context, id uuid.UUID) error

	// Estimar does no writes: it projects the batch cost per unit.
	Estimar(ctx context.Context, subproductoID uuid.UUID, unidades int) (*dto.EstimacionResponse, error)
	// Producir consumes the recipe's ingredients and records the run. Any
	// failed issue aborts the whole run.
	Producir(ctx context.Context, req dto.ProduccionRequest) (*model.SubproductoProduccion, error)
	ListarProducciones(ctx context.Context, subproductoID uuid.UUID, limit int) ([]model.SubproductoProduccion, error)
	EliminarProduccion(ctx context.Context, id uuid.UUID) error
}

type produccionService struct {
	repo       repository.SubproductoRepository
	invRepo    repository.InventarioRepository
	inventario InventarioService
	cache      *cacheInvalidator
}

// cacheInvalidator decouples services from the concrete cache so production
// writes can drop final-product display entries without importing handlers.
type cacheInvalidator struct {
	invalidate func(pattern string)
}

func NewProduccionService(
	repo repository.SubproductoRepository,
	invRepo repository.InventarioRepository,
	inventario InventarioService,
	invalidate func(pattern string),
) ProduccionService {
	if invalidate == nil {
		invalidate = func(string) {}
	}
	return &produccionService{
		repo:       repo,
		invRepo:    invRepo,
		inventario: inventario,
		cache:      &cacheInvalidator{invalidate: invalidate},
	}
}

func (s *produccionService) CrearSubproducto(ctx context.Context, req dto.SubproductoRequest) (*model.Subproducto, error) {
	if len(req.Ingredientes) == 0 {
		return nil, fmt.Errorf("%w: la receta necesita al menos un ingrediente", ErrValidacion)
	}

	costoTotal := decimal.Zero
	lineas := make([]model.SubproductoIngrediente, 0, len(req.Ingredientes))
	for _, ing := range req.Ingredientes {
		if ing.Cantidad.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: cantidad invalida para %q", ErrValidacion, ing.Producto)
		}
		cantidadBase, _, err := units.ConvertirABase(ing.Cantidad, ing.Unidad)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnidadDesconocida, ing.Unidad)
		}
		producto, err := s.invRepo.FindByNombre(ctx, ing.Producto)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: ingrediente %q no esta en inventario", ErrNoEncontrado, ing.Producto)
			}
			return nil, err
		}
		costoTotal = costoTotal.Add(cantidadBase.Mul(producto.CostoPromedioPonderado))
		lineas = append(lineas, model.SubproductoIngrediente{
			ProductoIngrediente: ing.Producto,
			CantidadUsada:       ing.Cantidad,
			UnidadUsada:         ing.Unidad,
		})
	}

	sub := &model.Subproducto{
		Nombre:                req.Nombre,
		CostoTotalSubproducto: costoTotal,
		Ingredientes:          lineas,
	}
	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, sub)
	}); err != nil {
		return nil, err
	}

	log.Info().Str("subproducto", req.Nombre).
		Str("costo_total", costoTotal.String()).Int("ingredientes", len(lineas)).
		Msg("receta creada con costo congelado")
	return sub, nil
}

func (s *produccionService) ObtenerSubproducto(ctx context.Context, id uuid.UUID) (*model.Subproducto, error) {
	sub, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: subproducto %s", ErrNoEncontrado, id)
		}
		return nil, err
	}
	return sub, nil
}

func (s *produccionService) ListarSubproductos(ctx context.Context) ([]model.Subproducto, error) {
	return s.repo.List(ctx)
}

func (s *produccionService) EliminarSubproducto(ctx context.Context, id uuid.UUID) error {
	if _, err := s.ObtenerSubproducto(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.invalidate("producto_final")
	return nil
}

func (s *produccionService) Estimar(ctx context.Context, subproductoID uuid.UUID, unidades int) (*dto.EstimacionResponse, error) {
	if unidades <= 0 {
		return nil, fmt.Errorf("%w: unidades debe ser mayor a 0", ErrValidacion)
	}
	sub, err := s.ObtenerSubproducto(ctx, subproductoID)
	if err != nil {
		return nil, err
	}
	costoMasa := sub.CostoTotalSubproducto
	return &dto.EstimacionResponse{
		Subproducto:    sub.Nombre,
		Unidades:       unidades,
		CostoTotalMasa: costoMasa,
		CostoUnitario:  costoMasa.Div(decimal.NewFromInt(int64(unidades))),
	}, nil
}

func (s *produccionService) Producir(ctx context.Context, req dto.ProduccionRequest) (*model.SubproductoProduccion, error) {
	estimacion, err := s.Estimar(ctx, req.SubproductoID, req.Unidades)
	if err != nil {
		return nil, err
	}
	tipoUnidad := req.TipoUnidad
	if tipoUnidad == "" {
		tipoUnidad = model.TipoUnidadReales
	}

	produccion := &model.SubproductoProduccion{
		SubproductoID:      req.SubproductoID,
		UnidadesProducidas: req.Unidades,
		TipoUnidad:         tipoUnidad,
		CostoTotalMasa:     estimacion.CostoTotalMasa,
		CostoUnitario:      estimacion.CostoUnitario,
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		sub, err := s.repo.FindByIDTx(tx, req.SubproductoID)
		if err != nil {
			return err
		}
		// Issue each recipe line verbatim; no scaling by req.Unidades.
		for _, ing := range sub.Ingredientes {
			if err := s.inventario.ConsumirStockTx(tx, ing.ProductoIngrediente, ing.CantidadUsada, ing.UnidadUsada); err != nil {
				return err
			}
		}
		return s.repo.CreateProduccionTx(tx, produccion)
	})
	if err != nil {
		log.Warn().Err(err).Str("subproducto_id", req.SubproductoID.String()).
			Msg("produccion abortada")
		return nil, err
	}

	s.cache.invalidate("producto_final")
	log.Info().Str("subproducto", estimacion.Subproducto).
		Int("unidades", req.Unidades).Str("costo_unitario", produccion.CostoUnitario.String()).
		Msg("produccion registrada")
	return produccion, nil
}

func (s *produccionService) ListarProducciones(ctx context.Context, subproductoID uuid.UUID, limit int) ([]model.SubproductoProduccion, error) {
	return s.repo.ListProducciones(ctx, subproductoID, limit)
}

func (s *produccionService) EliminarProduccion(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduccion(ctx, id); err != nil {
		return err
	}
	s.cache.invalidate("producto_final")
	return nil
}
