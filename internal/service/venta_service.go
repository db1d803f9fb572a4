package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VentaService registers sales against the catalog and manages clients. The
// sale itself is atomic; the accounting entries are written after commit and
// a failure there only logs — the sale stands.
type VentaService interface {
	CrearCliente(ctx context.Context, nombre string) (*model.Cliente, error)
	ListarClientes(ctx context.Context, soloActivos bool) ([]model.Cliente, error)
	DesactivarCliente(ctx context.Context, id uuid.UUID) error

	RegistrarVenta(ctx context.Context, req dto.VentaRequest) (*model.VentaCabecera, error)
	ObtenerVenta(ctx context.Context, id uuid.UUID) (*model.VentaCabecera, error)
	ListarVentas(ctx context.Context, limit int) ([]model.VentaCabecera, error)
}

type ventaService struct {
	repo         repository.VentaRepository
	clienteRepo  repository.ClienteRepository
	pfRepo       repository.ProductoFinalRepository
	contabilidad ContabilidadService
}

func NewVentaService(
	repo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	pfRepo repository.ProductoFinalRepository,
	contabilidad ContabilidadService,
) VentaService {
	return &ventaService{
		repo:         repo,
		clienteRepo:  clienteRepo,
		pfRepo:       pfRepo,
		contabilidad: contabilidad,
	}
}

func (s *ventaService) CrearCliente(ctx context.Context, nombre string) (*model.Cliente, error) {
	if nombre == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio", ErrValidacion)
	}
	c := &model.Cliente{Nombre: nombre, Activo: true}
	if err := s.clienteRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ventaService) ListarClientes(ctx context.Context, soloActivos bool) ([]model.Cliente, error) {
	return s.clienteRepo.List(ctx, soloActivos)
}

func (s *ventaService) DesactivarCliente(ctx context.Context, id uuid.UUID) error {
	if _, err := s.clienteRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: cliente %s", ErrNoEncontrado, id)
		}
		return err
	}
	return s.clienteRepo.SetActivo(ctx, id, false)
}

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.VentaRequest) (*model.VentaCabecera, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta necesita al menos un item", ErrValidacion)
	}

	cliente, err := s.clienteRepo.FindByID(ctx, req.ClienteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cliente %s", ErrNoEncontrado, req.ClienteID)
		}
		return nil, err
	}
	if !cliente.Activo {
		return nil, fmt.Errorf("%w: el cliente %q esta inactivo", ErrValidacion, cliente.Nombre)
	}

	// Resolve catalog products up front; accounting reuses these snapshots.
	productos := make([]*model.ProductoFinal, len(req.Items))
	total := decimal.Zero
	items := make([]model.VentaItem, 0, len(req.Items))
	for i, it := range req.Items {
		if it.Cantidad <= 0 {
			return nil, fmt.Errorf("%w: cantidad invalida en item %d", ErrValidacion, i+1)
		}
		pf, err := s.pfRepo.FindByID(ctx, it.ProductoFinalID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: producto final %s", ErrNoEncontrado, it.ProductoFinalID)
			}
			return nil, err
		}
		productos[i] = pf

		subtotal := it.PrecioUnitario.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		total = total.Add(subtotal)
		items = append(items, model.VentaItem{
			ProductoFinalID:     it.ProductoFinalID,
			CantidadVendida:     it.Cantidad,
			PrecioUnitarioVenta: it.PrecioUnitario,
			Subtotal:            subtotal,
		})
	}

	venta := &model.VentaCabecera{
		ClienteID:  req.ClienteID,
		TotalVenta: total,
		Items:      items,
	}
	if err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		return s.repo.CreateTx(tx, venta)
	}); err != nil {
		return nil, err
	}

	// Post-commit: accounting failures do not undo the sale.
	for i, it := range req.Items {
		if err := s.contabilidad.RegistrarVenta(ctx, venta.ID, productos[i], it.Cantidad, req.TipoProducto); err != nil {
			log.Error().Err(err).Str("venta_id", venta.ID.String()).
				Str("producto_final", productos[i].Nombre).
				Msg("fallo registrando entrada contable, la venta se mantiene")
		}
	}

	log.Info().Str("venta_id", venta.ID.String()).Str("cliente", cliente.Nombre).
		Str("total", total.String()).Int("items", len(items)).
		Msg("venta registrada")
	return venta, nil
}

func (s *ventaService) ObtenerVenta(ctx context.Context, id uuid.UUID) (*model.VentaCabecera, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: venta %s", ErrNoEncontrado, id)
		}
		return nil, err
	}
	return v, nil
}

func (s *ventaService) ListarVentas(ctx context.Context, limit int) ([]model.VentaCabecera, error) {
	return s.repo.List(ctx, limit)
}
