package service

import (
	"context"
	"fmt"

	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// EfectivoService tracks physical cash: capital injections minus purchase
// spending. Purchases are gated against the current balance.
type EfectivoService interface {
	// EstadoCaja returns dinero fisico = capital total - gastos de compras.
	EstadoCaja(ctx context.Context) (dto.EstadoCajaResponse, error)
	// PuedeComprar applies the purchase gate. A nil error with a non-empty
	// Alerta means the purchase is allowed but leaves the cash box tight.
	PuedeComprar(ctx context.Context, precio decimal.Decimal) (alerta string, err error)
	AgregarCapital(ctx context.Context, monto decimal.Decimal, descripcion string) (*model.EfectivoMovimiento, error)
	Movimientos(ctx context.Context, limit int) ([]model.EfectivoMovimiento, error)
}

type efectivoService struct {
	repo      repository.EfectivoRepository
	gastoRepo repository.GastoRepository
}

func NewEfectivoService(repo repository.EfectivoRepository, gastoRepo repository.GastoRepository) EfectivoService {
	return &efectivoService{repo: repo, gastoRepo: gastoRepo}
}

func (s *efectivoService) EstadoCaja(ctx context.Context) (dto.EstadoCajaResponse, error) {
	capital, err := s.repo.CapitalTotal(ctx)
	if err != nil {
		return dto.EstadoCajaResponse{}, err
	}
	gastos, err := s.gastoRepo.TotalGastosCompras(ctx)
	if err != nil {
		return dto.EstadoCajaResponse{}, err
	}
	return dto.EstadoCajaResponse{
		CapitalTotal:  capital,
		GastosCompras: gastos,
		DineroFisico:  capital.Sub(gastos),
	}, nil
}

var umbralWarning = decimal.NewFromFloat(1.5)

// Gate table, in order: balance <= 0 blocks outright; balance < price is
// insufficient; balance < price*1.5 passes with a warning; otherwise clean.
func (s *efectivoService) PuedeComprar(ctx context.Context, precio decimal.Decimal) (string, error) {
	estado, err := s.EstadoCaja(ctx)
	if err != nil {
		return "", err
	}
	disponible := estado.DineroFisico

	switch {
	case disponible.LessThanOrEqual(decimal.Zero):
		return "", &CompraBloqueadaError{
			Motivo: MotivoBloqueado,
			Detalle: fmt.Sprintf("sin dinero fisico disponible (saldo: $%s)",
				disponible.StringFixed(2)),
		}
	case disponible.LessThan(precio):
		return "", &CompraBloqueadaError{
			Motivo: MotivoInsuficiente,
			Detalle: fmt.Sprintf("dinero fisico $%s insuficiente para compra de $%s",
				disponible.StringFixed(2), precio.StringFixed(2)),
		}
	case disponible.LessThan(precio.Mul(umbralWarning)):
		alerta := fmt.Sprintf("%s: la compra de $%s deja la caja en $%s",
			MotivoWarning, precio.StringFixed(2), disponible.Sub(precio).StringFixed(2))
		log.Warn().Str("precio", precio.String()).Str("disponible", disponible.String()).
			Msg("compra permitida con advertencia de caja")
		return alerta, nil
	default:
		return "", nil
	}
}

func (s *efectivoService) AgregarCapital(ctx context.Context, monto decimal.Decimal, descripcion string) (*model.EfectivoMovimiento, error) {
	if monto.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: el monto debe ser mayor a 0", ErrValidacion)
	}
	if descripcion == "" {
		descripcion = model.TipoCapitalExtra
	}

	estado, err := s.EstadoCaja(ctx)
	if err != nil {
		return nil, err
	}

	mov := &model.EfectivoMovimiento{
		Tipo:        model.TipoCapitalExtra,
		Descripcion: descripcion,
		Monto:       monto,
		Saldo:       estado.DineroFisico.Add(monto),
	}
	if err := s.repo.Create(ctx, mov); err != nil {
		return nil, err
	}

	log.Info().Str("monto", monto.String()).Str("saldo", mov.Saldo.String()).
		Msg("capital agregado a caja")
	return mov, nil
}

func (s *efectivoService) Movimientos(ctx context.Context, limit int) ([]model.EfectivoMovimiento, error) {
	return s.repo.List(ctx, limit)
}
