package tests

import (
	"context"
	"testing"
	"time"

	"github.com/Carlos-148/App-Economia-CB/internal/cache"
	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type compraFixture struct {
	compraRepo *stubCompraRepo
	gastoRepo  *stubGastoRepo
	invRepo    *stubInventarioRepo
	efRepo     *stubEfectivoRepo
	svc        service.CompraService
}

func newCompraFixture(t *testing.T, capital string) *compraFixture {
	t.Helper()
	f := &compraFixture{
		compraRepo: &stubCompraRepo{},
		gastoRepo:  &stubGastoRepo{},
		invRepo:    newStubInventarioRepo(),
		efRepo:     &stubEfectivoRepo{},
	}
	inventario := service.NewInventarioService(f.invRepo, cache.New(time.Minute))
	efectivo := service.NewEfectivoService(f.efRepo, f.gastoRepo)
	f.svc = service.NewCompraService(f.compraRepo, f.gastoRepo, inventario, efectivo)
	if capital != "" {
		seedCapital(t, f.efRepo, capital)
	}
	return f
}

func TestRegistrarCompraGranel(t *testing.T) {
	f := newCompraFixture(t, "1000")

	resp, err := f.svc.RegistrarGranel(context.Background(), dto.CompraGranelRequest{
		Producto:    "harina",
		Cantidad:    dec("10"),
		Unidad:      "kg",
		PrecioTotal: dec("20"),
		Proveedor:   "molino san jose",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CompraTipoGranel, resp.Tipo)
	assert.Empty(t, resp.Alerta)

	// fila de compra + recepcion de stock + gasto vinculado
	require.Len(t, f.compraRepo.compras, 1)
	p, ok := f.invRepo.productos["harina"]
	require.True(t, ok)
	assert.True(t, p.CantidadStock.Equal(dec("10000")))
	assert.True(t, p.CostoPromedioPonderado.Equal(dec("0.002")))

	require.Len(t, f.gastoRepo.money, 1)
	gasto := f.gastoRepo.money[0]
	assert.Equal(t, "Compra: harina", gasto.Descripcion)
	assert.True(t, gasto.Monto.Equal(dec("20")))
	require.NotNil(t, gasto.CompraID)
	assert.Equal(t, f.compraRepo.compras[0].ID, *gasto.CompraID)
}

func TestRegistrarCompraPaquetes(t *testing.T) {
	f := newCompraFixture(t, "1000")

	// 4 paquetes de 500 g a $5 c/u → 2000 g por $20
	resp, err := f.svc.RegistrarPaquetes(context.Background(), dto.CompraPaquetesRequest{
		Producto:         "azucar",
		Paquetes:         4,
		Contenido:        dec("500"),
		Unidad:           "g",
		PrecioPorPaquete: dec("5"),
		Proveedor:        "mayorista del centro",
	})
	require.NoError(t, err)
	assert.Equal(t, model.CompraTipoPaquetes, resp.Tipo)
	assert.True(t, resp.Cantidad.Equal(dec("2000")))
	assert.True(t, resp.PrecioTotal.Equal(dec("20")))

	require.Len(t, f.compraRepo.compras, 1)
	assert.True(t, f.compraRepo.compras[0].PrecioCompra.Equal(dec("5")))

	p, ok := f.invRepo.productos["azucar"]
	require.True(t, ok)
	assert.True(t, p.CantidadStock.Equal(dec("2000")))
	assert.True(t, p.CostoPromedioPonderado.Equal(dec("0.01")))
}

func TestCompraBloqueadaNoEscribeNada(t *testing.T) {
	// caja vacia: la compra se rechaza antes de tocar el inventario
	f := newCompraFixture(t, "")

	_, err := f.svc.RegistrarGranel(context.Background(), dto.CompraGranelRequest{
		Producto:    "harina",
		Cantidad:    dec("10"),
		Unidad:      "kg",
		PrecioTotal: dec("20"),
		Proveedor:   "molino san jose",
	})
	require.Error(t, err)
	assert.True(t, service.EsCompraBloqueada(err))

	assert.Empty(t, f.compraRepo.compras)
	assert.Empty(t, f.gastoRepo.money)
	assert.Empty(t, f.invRepo.productos)
}

func TestCompraConAdvertenciaDeCaja(t *testing.T) {
	// el saldo cubre la compra pero queda por debajo de 1.5x el precio
	f := newCompraFixture(t, "25")

	resp, err := f.svc.RegistrarGranel(context.Background(), dto.CompraGranelRequest{
		Producto:    "harina",
		Cantidad:    dec("10"),
		Unidad:      "kg",
		PrecioTotal: dec("20"),
		Proveedor:   "molino san jose",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.Alerta, service.MotivoWarning)
	require.Len(t, f.compraRepo.compras, 1)
}

func TestComprasReducenDineroFisico(t *testing.T) {
	f := newCompraFixture(t, "100")

	_, err := f.svc.RegistrarGranel(context.Background(), dto.CompraGranelRequest{
		Producto:    "harina",
		Cantidad:    dec("5"),
		Unidad:      "kg",
		PrecioTotal: dec("40"),
		Proveedor:   "molino san jose",
	})
	require.NoError(t, err)

	efectivo := service.NewEfectivoService(f.efRepo, f.gastoRepo)
	estado, err := efectivo.EstadoCaja(context.Background())
	require.NoError(t, err)
	assert.True(t, estado.DineroFisico.Equal(dec("60")), "dinero fisico: %s", estado.DineroFisico)
}

func TestHistorialPorProductoYProveedor(t *testing.T) {
	f := newCompraFixture(t, "10000")
	ctx := context.Background()

	compras := []dto.CompraGranelRequest{
		{Producto: "harina", Cantidad: dec("1"), Unidad: "kg", PrecioTotal: dec("2"), Proveedor: "molino"},
		{Producto: "azucar", Cantidad: dec("1"), Unidad: "kg", PrecioTotal: dec("3"), Proveedor: "mayorista"},
		{Producto: "harina", Cantidad: dec("2"), Unidad: "kg", PrecioTotal: dec("4"), Proveedor: "mayorista"},
	}
	for _, req := range compras {
		_, err := f.svc.RegistrarGranel(ctx, req)
		require.NoError(t, err)
	}

	todas, err := f.svc.Historial(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, todas, 3)

	porProducto, err := f.svc.HistorialPorProducto(ctx, "harina")
	require.NoError(t, err)
	assert.Len(t, porProducto, 2)

	porProveedor, err := f.svc.HistorialPorProveedor(ctx, "mayorista")
	require.NoError(t, err)
	assert.Len(t, porProveedor, 2)
}
