package tests

import (
	"context"
	"testing"

	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCapital(t *testing.T, repo *stubEfectivoRepo, monto string) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &model.EfectivoMovimiento{
		Tipo:        model.TipoCapitalExtra,
		Descripcion: "capital inicial",
		Monto:       dec(monto),
		Saldo:       dec(monto),
	}))
}

func seedGastoCompra(t *testing.T, repo *stubGastoRepo, monto string) {
	t.Helper()
	compraID := uuid.New()
	require.NoError(t, repo.CreateMoney(context.Background(), &model.GastoMoney{
		Descripcion: "Compra: insumos",
		Monto:       dec(monto),
		CompraID:    &compraID,
	}))
}

func TestEstadoCaja(t *testing.T) {
	efRepo := &stubEfectivoRepo{}
	gastoRepo := &stubGastoRepo{}
	svc := service.NewEfectivoService(efRepo, gastoRepo)

	seedCapital(t, efRepo, "500")
	seedGastoCompra(t, gastoRepo, "120")
	// gasto sin compra asociada: no descuenta dinero fisico
	require.NoError(t, gastoRepo.CreateMoney(context.Background(), &model.GastoMoney{
		Descripcion: "alquiler",
		Monto:       dec("300"),
	}))

	estado, err := svc.EstadoCaja(context.Background())
	require.NoError(t, err)
	assert.True(t, estado.CapitalTotal.Equal(dec("500")))
	assert.True(t, estado.GastosCompras.Equal(dec("120")))
	assert.True(t, estado.DineroFisico.Equal(dec("380")))
}

func TestPuedeComprarBloqueadoSinSaldo(t *testing.T) {
	svc := service.NewEfectivoService(&stubEfectivoRepo{}, &stubGastoRepo{})

	_, err := svc.PuedeComprar(context.Background(), dec("100"))
	require.Error(t, err)
	require.True(t, service.EsCompraBloqueada(err))

	var cb *service.CompraBloqueadaError
	require.ErrorAs(t, err, &cb)
	assert.Equal(t, service.MotivoBloqueado, cb.Motivo)
}

func TestPuedeComprarInsuficiente(t *testing.T) {
	efRepo := &stubEfectivoRepo{}
	svc := service.NewEfectivoService(efRepo, &stubGastoRepo{})
	seedCapital(t, efRepo, "50")

	_, err := svc.PuedeComprar(context.Background(), dec("100"))
	require.Error(t, err)

	var cb *service.CompraBloqueadaError
	require.ErrorAs(t, err, &cb)
	assert.Equal(t, service.MotivoInsuficiente, cb.Motivo)
}

func TestPuedeComprarConAdvertencia(t *testing.T) {
	efRepo := &stubEfectivoRepo{}
	svc := service.NewEfectivoService(efRepo, &stubGastoRepo{})
	// 120 cubre la compra de 100 pero queda bajo el umbral de 150
	seedCapital(t, efRepo, "120")

	alerta, err := svc.PuedeComprar(context.Background(), dec("100"))
	require.NoError(t, err)
	assert.Contains(t, alerta, service.MotivoWarning)
}

func TestPuedeComprarSinAdvertencia(t *testing.T) {
	efRepo := &stubEfectivoRepo{}
	svc := service.NewEfectivoService(efRepo, &stubGastoRepo{})
	seedCapital(t, efRepo, "500")

	alerta, err := svc.PuedeComprar(context.Background(), dec("100"))
	require.NoError(t, err)
	assert.Empty(t, alerta)
}

func TestAgregarCapital(t *testing.T) {
	efRepo := &stubEfectivoRepo{}
	gastoRepo := &stubGastoRepo{}
	svc := service.NewEfectivoService(efRepo, gastoRepo)

	seedCapital(t, efRepo, "200")
	seedGastoCompra(t, gastoRepo, "50")

	mov, err := svc.AgregarCapital(context.Background(), dec("100"), "aporte socio")
	require.NoError(t, err)
	assert.Equal(t, model.TipoCapitalExtra, mov.Tipo)
	assert.Equal(t, "aporte socio", mov.Descripcion)
	// saldo snapshot: (200-50) + 100
	assert.True(t, mov.Saldo.Equal(dec("250")), "saldo: %s", mov.Saldo)

	estado, err := svc.EstadoCaja(context.Background())
	require.NoError(t, err)
	assert.True(t, estado.DineroFisico.Equal(dec("250")))
}

func TestAgregarCapitalMontoInvalido(t *testing.T) {
	svc := service.NewEfectivoService(&stubEfectivoRepo{}, &stubGastoRepo{})

	_, err := svc.AgregarCapital(context.Background(), dec("0"), "nada")
	assert.ErrorIs(t, err, service.ErrValidacion)

	_, err = svc.AgregarCapital(context.Background(), dec("-5"), "negativo")
	assert.ErrorIs(t, err, service.ErrValidacion)
}
