package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"
	"github.com/Carlos-148/App-Economia-CB/internal/units"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GastoService records expenses outside the purchase flow: monetary expenses
// and product expenses that consume inventory.
type GastoService interface {
	RegistrarGastoMoney(ctx context.Context, req dto.GastoMoneyRequest) (*model.GastoMoney, error)
	// RegistrarGastoProducto consumes stock and records the expense at the
	// inventory's weighted-average cost, in one transaction.
	RegistrarGastoProducto(ctx context.Context, req dto.GastoProductoRequest) (*model.GastoProducto, error)
	ListarMoney(ctx context.Context, limit int) ([]model.GastoMoney, error)
	ListarProductos(ctx context.Context, limit int) ([]model.GastoProducto, error)
	TotalGastos(ctx context.Context) decimal.Decimal
}

type gastoService struct {
	repo       repository.GastoRepository
	invRepo    repository.InventarioRepository
	inventario InventarioService
}

func NewGastoService(
	repo repository.GastoRepository,
	invRepo repository.InventarioRepository,
	inventario InventarioService,
) GastoService {
	return &gastoService{repo: repo, invRepo: invRepo, inventario: inventario}
}

func (s *gastoService) RegistrarGastoMoney(ctx context.Context, req dto.GastoMoneyRequest) (*model.GastoMoney, error) {
	if req.Monto.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: el monto debe ser mayor a 0", ErrValidacion)
	}
	if req.Descripcion == "" {
		return nil, fmt.Errorf("%w: la descripcion es obligatoria", ErrValidacion)
	}
	g := &model.GastoMoney{
		Descripcion: req.Descripcion,
		Monto:       req.Monto,
		Comentarios: req.Comentarios,
	}
	if err := s.repo.CreateMoney(ctx, g); err != nil {
		return nil, err
	}
	log.Info().Str("descripcion", g.Descripcion).Str("monto", g.Monto.String()).
		Msg("gasto monetario registrado")
	return g, nil
}

func (s *gastoService) RegistrarGastoProducto(ctx context.Context, req dto.GastoProductoRequest) (*model.GastoProducto, error) {
	if req.Cantidad.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", ErrValidacion)
	}

	var gasto *model.GastoProducto
	err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		producto, err := s.invRepo.FindByNombreTx(tx, req.Producto)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: producto %q", ErrNoEncontrado, req.Producto)
			}
			return err
		}
		if err := s.inventario.ConsumirStockTx(tx, req.Producto, req.Cantidad, req.Unidad); err != nil {
			return err
		}
		cantidadBase, _, err := units.ConvertirABase(req.Cantidad, req.Unidad)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnidadDesconocida, req.Unidad)
		}
		gasto = &model.GastoProducto{
			Producto:    req.Producto,
			Cantidad:    req.Cantidad,
			Unidad:      req.Unidad,
			PrecioTotal: cantidadBase.Mul(producto.CostoPromedioPonderado),
			Comentarios: req.Comentarios,
		}
		return s.repo.CreateProductoTx(tx, gasto)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("producto", gasto.Producto).Str("precio_total", gasto.PrecioTotal.String()).
		Msg("gasto en producto registrado")
	return gasto, nil
}

func (s *gastoService) ListarMoney(ctx context.Context, limit int) ([]model.GastoMoney, error) {
	return s.repo.ListMoney(ctx, limit)
}

func (s *gastoService) ListarProductos(ctx context.Context, limit int) ([]model.GastoProducto, error) {
	return s.repo.ListProductos(ctx, limit)
}

func (s *gastoService) TotalGastos(ctx context.Context) decimal.Decimal {
	total, err := s.repo.TotalGastos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error calculando total de gastos")
		return decimal.Zero
	}
	return total
}
