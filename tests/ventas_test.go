package tests

import (
	"context"
	"testing"

	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ventaFixture struct {
	ventaRepo   *stubVentaRepo
	clienteRepo *stubClienteRepo
	pfRepo      *stubProductoFinalRepo
	contaRepo   *stubContabilidadRepo
	svc         service.VentaService
}

func newVentaFixture(t *testing.T) *ventaFixture {
	t.Helper()
	f := &ventaFixture{
		ventaRepo:   newStubVentaRepo(),
		clienteRepo: newStubClienteRepo(),
		pfRepo:      newStubProductoFinalRepo(),
		contaRepo:   &stubContabilidadRepo{},
	}
	contabilidad := service.NewContabilidadService(f.contaRepo)
	f.svc = service.NewVentaService(f.ventaRepo, f.clienteRepo, f.pfRepo, contabilidad)
	return f
}

func (f *ventaFixture) seedCliente(t *testing.T, nombre string, activo bool) *model.Cliente {
	t.Helper()
	c := &model.Cliente{Nombre: nombre, Activo: activo}
	require.NoError(t, f.clienteRepo.Create(context.Background(), c))
	return c
}

func (f *ventaFixture) seedProductoFinal(t *testing.T, nombre, costo string, precio *string) *model.ProductoFinal {
	t.Helper()
	pf := &model.ProductoFinal{
		Nombre:             nombre,
		CostoUnitarioTotal: dec(costo),
	}
	if precio != nil {
		p := dec(*precio)
		pf.PrecioVenta = &p
	}
	require.NoError(t, f.pfRepo.CreateTx(nil, pf))
	return pf
}

func strPtr(s string) *string { return &s }

func TestRegistrarVentaTotalNegociado(t *testing.T) {
	f := newVentaFixture(t)
	cliente := f.seedCliente(t, "panaderia norte", true)
	pf := f.seedProductoFinal(t, "alfajor", "0.43", strPtr("2"))

	// precio negociado 1.80, distinto del de catalogo
	venta, err := f.svc.RegistrarVenta(context.Background(), dto.VentaRequest{
		ClienteID:    cliente.ID,
		TipoProducto: "mayorista",
		Items: []dto.VentaItemRequest{
			{ProductoFinalID: pf.ID, Cantidad: 10, PrecioUnitario: dec("1.80")},
		},
	})
	require.NoError(t, err)
	assert.True(t, venta.TotalVenta.Equal(dec("18")), "total: %s", venta.TotalVenta)
	require.Len(t, venta.Items, 1)
	assert.True(t, venta.Items[0].PrecioUnitarioVenta.Equal(dec("1.80")))
}

func TestContabilidadUsaPreciosDeCatalogo(t *testing.T) {
	f := newVentaFixture(t)
	cliente := f.seedCliente(t, "panaderia norte", true)
	pf := f.seedProductoFinal(t, "alfajor", "0.50", strPtr("2"))

	_, err := f.svc.RegistrarVenta(context.Background(), dto.VentaRequest{
		ClienteID: cliente.ID,
		Items: []dto.VentaItemRequest{
			{ProductoFinalID: pf.ID, Cantidad: 10, PrecioUnitario: dec("1.80")},
		},
	})
	require.NoError(t, err)

	require.Len(t, f.contaRepo.entradas, 1)
	e := f.contaRepo.entradas[0]
	// contabilidad ignora el precio negociado: ingreso 10*2, costo 10*0.50
	assert.True(t, e.IngresoTotal.Equal(dec("20")), "ingreso: %s", e.IngresoTotal)
	assert.True(t, e.CostoTotal.Equal(dec("5")))
	assert.True(t, e.GananciaNeta.Equal(dec("15")))
	// margen = ganancia / ingreso * 100
	assert.True(t, e.MargenGanancia.Equal(dec("75")), "margen: %s", e.MargenGanancia)
	assert.True(t, e.PrecioUnitarioVenta.Equal(dec("2")))
}

func TestContabilidadSinPrecioCatalogo(t *testing.T) {
	f := newVentaFixture(t)
	cliente := f.seedCliente(t, "panaderia norte", true)
	pf := f.seedProductoFinal(t, "alfajor", "0.50", nil)

	_, err := f.svc.RegistrarVenta(context.Background(), dto.VentaRequest{
		ClienteID: cliente.ID,
		Items: []dto.VentaItemRequest{
			{ProductoFinalID: pf.ID, Cantidad: 4, PrecioUnitario: dec("1")},
		},
	})
	require.NoError(t, err)

	require.Len(t, f.contaRepo.entradas, 1)
	e := f.contaRepo.entradas[0]
	// sin precio de catalogo: ingreso 0, margen 0, ganancia negativa
	assert.True(t, e.IngresoTotal.IsZero())
	assert.True(t, e.MargenGanancia.IsZero())
	assert.True(t, e.GananciaNeta.Equal(dec("-2")))
}

func TestVentaSobreviveAFalloContable(t *testing.T) {
	f := newVentaFixture(t)
	cliente := f.seedCliente(t, "panaderia norte", true)
	pf := f.seedProductoFinal(t, "alfajor", "0.50", strPtr("2"))
	f.contaRepo.failCreate = true

	venta, err := f.svc.RegistrarVenta(context.Background(), dto.VentaRequest{
		ClienteID: cliente.ID,
		Items: []dto.VentaItemRequest{
			{ProductoFinalID: pf.ID, Cantidad: 2, PrecioUnitario: dec("2")},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, venta)

	// la venta queda registrada aunque la entrada contable haya fallado
	guardada, err := f.svc.ObtenerVenta(context.Background(), venta.ID)
	require.NoError(t, err)
	assert.True(t, guardada.TotalVenta.Equal(dec("4")))
	assert.Empty(t, f.contaRepo.entradas)
}

func TestVentaClienteInactivo(t *testing.T) {
	f := newVentaFixture(t)
	cliente := f.seedCliente(t, "cliente viejo", false)
	pf := f.seedProductoFinal(t, "alfajor", "0.50", strPtr("2"))

	_, err := f.svc.RegistrarVenta(context.Background(), dto.VentaRequest{
		ClienteID: cliente.ID,
		Items: []dto.VentaItemRequest{
			{ProductoFinalID: pf.ID, Cantidad: 1, PrecioUnitario: dec("2")},
		},
	})
	assert.ErrorIs(t, err, service.ErrValidacion)
	assert.Empty(t, f.ventaRepo.ventas)
}

func TestVentaProductoInexistente(t *testing.T) {
	f := newVentaFixture(t)
	cliente := f.seedCliente(t, "panaderia norte", true)

	_, err := f.svc.RegistrarVenta(context.Background(), dto.VentaRequest{
		ClienteID: cliente.ID,
		Items: []dto.VentaItemRequest{
			{ProductoFinalID: uuid.New(), Cantidad: 1, PrecioUnitario: dec("2")},
		},
	})
	assert.ErrorIs(t, err, service.ErrNoEncontrado)
	assert.Empty(t, f.ventaRepo.ventas)
	assert.Empty(t, f.contaRepo.entradas)
}

func TestDesactivarCliente(t *testing.T) {
	f := newVentaFixture(t)
	cliente := f.seedCliente(t, "panaderia norte", true)
	ctx := context.Background()

	require.NoError(t, f.svc.DesactivarCliente(ctx, cliente.ID))

	activos, err := f.svc.ListarClientes(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, activos)

	todos, err := f.svc.ListarClientes(ctx, false)
	require.NoError(t, err)
	assert.Len(t, todos, 1)

	assert.ErrorIs(t, f.svc.DesactivarCliente(ctx, uuid.New()), service.ErrNoEncontrado)
}

func TestResumenGeneralAcumulaVentas(t *testing.T) {
	f := newVentaFixture(t)
	cliente := f.seedCliente(t, "panaderia norte", true)
	pf := f.seedProductoFinal(t, "alfajor", "0.50", strPtr("2"))
	contabilidad := service.NewContabilidadService(f.contaRepo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := f.svc.RegistrarVenta(ctx, dto.VentaRequest{
			ClienteID: cliente.ID,
			Items: []dto.VentaItemRequest{
				{ProductoFinalID: pf.ID, Cantidad: 5, PrecioUnitario: dec("2")},
			},
		})
		require.NoError(t, err)
	}

	resumen := contabilidad.ResumenGeneral(ctx)
	assert.Equal(t, int64(3), resumen.TotalVentas)
	assert.Equal(t, int64(15), resumen.TotalUnidades)
	assert.True(t, resumen.TotalIngresos.Equal(decimal.NewFromInt(30)))
	assert.True(t, resumen.TotalCostos.Equal(decimal.RequireFromString("7.5")))
}
