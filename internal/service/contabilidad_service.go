package service

import (
	"context"

	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// ContabilidadService writes one immutable accounting entry per sale line.
// Cost and income come from the catalog's stored fields (CostoUnitarioTotal
// and PrecioVenta), never from the negotiated line price. Entry creation is
// decoupled from the sale: callers log a failure and keep the sale.
type ContabilidadService interface {
	RegistrarVenta(ctx context.Context, ventaID uuid.UUID, pf *model.ProductoFinal, cantidad int, tipoProducto string) error
	Historial(ctx context.Context, limit int) []model.Contabilidad
	ResumenGeneral(ctx context.Context) *repository.ResumenGeneral
	ResumenPorProducto(ctx context.Context) []repository.ResumenProducto
}

type contabilidadService struct {
	repo repository.ContabilidadRepository
}

func NewContabilidadService(repo repository.ContabilidadRepository) ContabilidadService {
	return &contabilidadService{repo: repo}
}

func (s *contabilidadService) RegistrarVenta(ctx context.Context, ventaID uuid.UUID, pf *model.ProductoFinal, cantidad int, tipoProducto string) error {
	precioVenta := decimal.Zero
	if pf.PrecioVenta != nil {
		precioVenta = *pf.PrecioVenta
	}

	qty := decimal.NewFromInt(int64(cantidad))
	costoTotal := qty.Mul(pf.CostoUnitarioTotal)
	ingresoTotal := qty.Mul(precioVenta)
	ganancia := ingresoTotal.Sub(costoTotal)
	margen := decimal.Zero
	if ingresoTotal.GreaterThan(decimal.Zero) {
		margen = ganancia.Div(ingresoTotal).Mul(decimal.NewFromInt(100))
	}

	entrada := &model.Contabilidad{
		VentaID:             ventaID,
		ProductoFinalID:     pf.ID,
		CantidadVendida:     cantidad,
		PrecioUnitarioCosto: pf.CostoUnitarioTotal,
		PrecioUnitarioVenta: precioVenta,
		CostoTotal:          costoTotal,
		IngresoTotal:        ingresoTotal,
		GananciaNeta:        ganancia,
		MargenGanancia:      margen,
		TipoProducto:        tipoProducto,
	}
	if err := s.repo.Create(ctx, entrada); err != nil {
		return err
	}

	log.Info().Str("venta_id", ventaID.String()).Str("producto_final", pf.Nombre).
		Int("cantidad", cantidad).Str("ganancia_neta", ganancia.String()).
		Msg("entrada contable registrada")
	return nil
}

// Los resúmenes son lecturas fail-soft: ante un error devuelven valores vacíos.

func (s *contabilidadService) Historial(ctx context.Context, limit int) []model.Contabilidad {
	entradas, err := s.repo.Historial(ctx, limit)
	if err != nil {
		log.Error().Err(err).Msg("error obteniendo historial contable")
		return []model.Contabilidad{}
	}
	return entradas
}

func (s *contabilidadService) ResumenGeneral(ctx context.Context) *repository.ResumenGeneral {
	resumen, err := s.repo.ResumenGeneral(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error calculando resumen contable general")
		return &repository.ResumenGeneral{}
	}
	return resumen
}

func (s *contabilidadService) ResumenPorProducto(ctx context.Context) []repository.ResumenProducto {
	resumen, err := s.repo.ResumenPorProducto(ctx)
	if err != nil {
		log.Error().Err(err).Msg("error calculando resumen contable por producto")
		return []repository.ResumenProducto{}
	}
	return resumen
}
