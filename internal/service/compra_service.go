package service

import (
	"context"
	"fmt"

	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CompraService registers raw-material purchases. A purchase passes the cash
// gate, then atomically inserts the purchase row, receives the stock into
// inventory and records the linked monetary expense. A blocked purchase
// performs no writes at all.
type CompraService interface {
	// RegistrarGranel: bulk purchase priced by total.
	RegistrarGranel(ctx context.Context, req dto.CompraGranelRequest) (*dto.CompraResponse, error)
	// RegistrarPaquetes: packaged purchase; the received quantity is
	// paquetes * contenido and the total price is paquetes * precio unitario.
	RegistrarPaquetes(ctx context.Context, req dto.CompraPaquetesRequest) (*dto.CompraResponse, error)
	Historial(ctx context.Context, limit int) ([]model.Compra, error)
	HistorialPorProducto(ctx context.Context, producto string) ([]model.Compra, error)
	HistorialPorProveedor(ctx context.Context, proveedor string) ([]model.Compra, error)
}

type compraService struct {
	repo       repository.CompraRepository
	gastoRepo  repository.GastoRepository
	inventario InventarioService
	efectivo   EfectivoService
}

func NewCompraService(
	repo repository.CompraRepository,
	gastoRepo repository.GastoRepository,
	inventario InventarioService,
	efectivo EfectivoService,
) CompraService {
	return &compraService{
		repo:       repo,
		gastoRepo:  gastoRepo,
		inventario: inventario,
		efectivo:   efectivo,
	}
}

func (s *compraService) RegistrarGranel(ctx context.Context, req dto.CompraGranelRequest) (*dto.CompraResponse, error) {
	if req.Cantidad.LessThanOrEqual(decimal.Zero) || req.PrecioTotal.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: cantidad y precio deben ser mayores a 0", ErrValidacion)
	}
	compra := &model.Compra{
		Producto:    req.Producto,
		Cantidad:    req.Cantidad,
		Unidad:      req.Unidad,
		PrecioTotal: req.PrecioTotal,
		Proveedor:   req.Proveedor,
		Tipo:        model.CompraTipoGranel,
	}
	return s.registrar(ctx, compra)
}

func (s *compraService) RegistrarPaquetes(ctx context.Context, req dto.CompraPaquetesRequest) (*dto.CompraResponse, error) {
	if req.Paquetes <= 0 || req.Contenido.LessThanOrEqual(decimal.Zero) || req.PrecioPorPaquete.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: paquetes, contenido y precio deben ser mayores a 0", ErrValidacion)
	}
	paquetes := decimal.NewFromInt(int64(req.Paquetes))
	compra := &model.Compra{
		Producto:     req.Producto,
		Cantidad:     paquetes.Mul(req.Contenido),
		Unidad:       req.Unidad,
		PrecioCompra: req.PrecioPorPaquete,
		PrecioTotal:  paquetes.Mul(req.PrecioPorPaquete),
		Proveedor:    req.Proveedor,
		Tipo:         model.CompraTipoPaquetes,
	}
	return s.registrar(ctx, compra)
}

// registrar runs the shared purchase pipeline: gate first, then one
// transaction covering the purchase row, the stock receipt and the expense.
func (s *compraService) registrar(ctx context.Context, compra *model.Compra) (*dto.CompraResponse, error) {
	alerta, err := s.efectivo.PuedeComprar(ctx, compra.PrecioTotal)
	if err != nil {
		log.Warn().Err(err).Str("producto", compra.Producto).
			Str("precio_total", compra.PrecioTotal.String()).
			Msg("compra rechazada por caja")
		return nil, err
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, compra); err != nil {
			return err
		}
		if err := s.inventario.RecibirStockTx(tx, compra.Producto, compra.Cantidad, compra.Unidad, compra.PrecioTotal); err != nil {
			return err
		}
		gasto := &model.GastoMoney{
			Descripcion: fmt.Sprintf("Compra: %s", compra.Producto),
			Monto:       compra.PrecioTotal,
			Comentarios: fmt.Sprintf("%s %s de %s", compra.Cantidad.String(), compra.Unidad, compra.Proveedor),
			CompraID:    &compra.ID,
		}
		return s.gastoRepo.CreateMoneyTx(tx, gasto)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("producto", compra.Producto).Str("tipo", compra.Tipo).
		Str("precio_total", compra.PrecioTotal.String()).
		Msg("compra registrada")

	return &dto.CompraResponse{
		ID:          compra.ID,
		Producto:    compra.Producto,
		Cantidad:    compra.Cantidad,
		Unidad:      compra.Unidad,
		PrecioTotal: compra.PrecioTotal,
		Proveedor:   compra.Proveedor,
		Tipo:        compra.Tipo,
		Alerta:      alerta,
	}, nil
}

func (s *compraService) Historial(ctx context.Context, limit int) ([]model.Compra, error) {
	return s.repo.List(ctx, limit)
}

func (s *compraService) HistorialPorProducto(ctx context.Context, producto string) ([]model.Compra, error) {
	return s.repo.ListByProducto(ctx, producto)
}

func (s *compraService) HistorialPorProveedor(ctx context.Context, proveedor string) ([]model.Compra, error) {
	return s.repo.ListByProveedor(ctx, proveedor)
}
