package tests

// stubs_test.go — in-memory repository stubs shared by the service tests.
// Tx variants ignore the (nil) tx handle; services run fn(nil) when no DB
// is attached, so there is nothing to roll back here. Tests that care about
// atomicity assert on observable state instead.

import (
	"context"
	"sort"

	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ── Inventario ───────────────────────────────────────────────────────────────

type stubInventarioRepo struct {
	productos map[string]*model.Producto
}

func newStubInventarioRepo() *stubInventarioRepo {
	return &stubInventarioRepo{productos: make(map[string]*model.Producto)}
}

func (r *stubInventarioRepo) FindByNombre(_ context.Context, nombre string) (*model.Producto, error) {
	return r.FindByNombreTx(nil, nombre)
}

func (r *stubInventarioRepo) FindByNombreTx(_ *gorm.DB, nombre string) (*model.Producto, error) {
	p, ok := r.productos[nombre]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubInventarioRepo) List(_ context.Context) ([]model.Producto, error) {
	nombres := make([]string, 0, len(r.productos))
	for n, p := range r.productos {
		if p.CantidadStock.GreaterThan(decimal.Zero) {
			nombres = append(nombres, n)
		}
	}
	sort.Strings(nombres)
	out := make([]model.Producto, 0, len(nombres))
	for _, n := range nombres {
		out = append(out, *r.productos[n])
	}
	return out, nil
}

func (r *stubInventarioRepo) TotalInvertido(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, p := range r.productos {
		total = total.Add(p.CantidadStock.Mul(p.CostoPromedioPonderado))
	}
	return total, nil
}

func (r *stubInventarioRepo) CreateTx(_ *gorm.DB, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	cp := *p
	r.productos[p.Nombre] = &cp
	return nil
}

func (r *stubInventarioRepo) UpdateTx(_ *gorm.DB, p *model.Producto) error {
	cp := *p
	r.productos[p.Nombre] = &cp
	return nil
}

func (r *stubInventarioRepo) DB() *gorm.DB { return nil }

// ── Compras ──────────────────────────────────────────────────────────────────

type stubCompraRepo struct {
	compras []model.Compra
}

func (r *stubCompraRepo) CreateTx(_ *gorm.DB, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.compras = append(r.compras, *c)
	return nil
}

func (r *stubCompraRepo) List(_ context.Context, _ int) ([]model.Compra, error) {
	return r.compras, nil
}

func (r *stubCompraRepo) ListByProducto(_ context.Context, producto string) ([]model.Compra, error) {
	var out []model.Compra
	for _, c := range r.compras {
		if c.Producto == producto {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCompraRepo) ListByProveedor(_ context.Context, proveedor string) ([]model.Compra, error) {
	var out []model.Compra
	for _, c := range r.compras {
		if c.Proveedor == proveedor {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCompraRepo) DB() *gorm.DB { return nil }

// ── Gastos ───────────────────────────────────────────────────────────────────

type stubGastoRepo struct {
	money     []model.GastoMoney
	productos []model.GastoProducto
}

func (r *stubGastoRepo) CreateMoney(_ context.Context, g *model.GastoMoney) error {
	return r.CreateMoneyTx(nil, g)
}

func (r *stubGastoRepo) CreateMoneyTx(_ *gorm.DB, g *model.GastoMoney) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.money = append(r.money, *g)
	return nil
}

func (r *stubGastoRepo) CreateProducto(_ context.Context, g *model.GastoProducto) error {
	return r.CreateProductoTx(nil, g)
}

func (r *stubGastoRepo) CreateProductoTx(_ *gorm.DB, g *model.GastoProducto) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.productos = append(r.productos, *g)
	return nil
}

func (r *stubGastoRepo) ListMoney(_ context.Context, _ int) ([]model.GastoMoney, error) {
	return r.money, nil
}

func (r *stubGastoRepo) ListProductos(_ context.Context, _ int) ([]model.GastoProducto, error) {
	return r.productos, nil
}

func (r *stubGastoRepo) TotalGastos(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, g := range r.money {
		total = total.Add(g.Monto)
	}
	for _, g := range r.productos {
		total = total.Add(g.PrecioTotal)
	}
	return total, nil
}

func (r *stubGastoRepo) TotalGastosCompras(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, g := range r.money {
		if g.CompraID != nil {
			total = total.Add(g.Monto)
		}
	}
	return total, nil
}

func (r *stubGastoRepo) DB() *gorm.DB { return nil }

// ── Efectivo ─────────────────────────────────────────────────────────────────

type stubEfectivoRepo struct {
	movimientos []model.EfectivoMovimiento
}

func (r *stubEfectivoRepo) Create(_ context.Context, m *model.EfectivoMovimiento) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimientos = append(r.movimientos, *m)
	return nil
}

func (r *stubEfectivoRepo) List(_ context.Context, _ int) ([]model.EfectivoMovimiento, error) {
	return r.movimientos, nil
}

func (r *stubEfectivoRepo) CapitalTotal(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, m := range r.movimientos {
		if m.Tipo == model.TipoCapitalExtra {
			total = total.Add(m.Monto)
		}
	}
	return total, nil
}

// ── Subproductos ─────────────────────────────────────────────────────────────

type stubSubproductoRepo struct {
	subs         map[uuid.UUID]*model.Subproducto
	producciones []model.SubproductoProduccion
}

func newStubSubproductoRepo() *stubSubproductoRepo {
	return &stubSubproductoRepo{subs: make(map[uuid.UUID]*model.Subproducto)}
}

func (r *stubSubproductoRepo) CreateTx(_ *gorm.DB, s *model.Subproducto) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	for i := range s.Ingredientes {
		if s.Ingredientes[i].ID == uuid.Nil {
			s.Ingredientes[i].ID = uuid.New()
		}
		s.Ingredientes[i].SubproductoID = s.ID
	}
	r.subs[s.ID] = s
	return nil
}

func (r *stubSubproductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Subproducto, error) {
	return r.FindByIDTx(nil, id)
}

func (r *stubSubproductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Subproducto, error) {
	s, ok := r.subs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (r *stubSubproductoRepo) List(_ context.Context) ([]model.Subproducto, error) {
	out := make([]model.Subproducto, 0, len(r.subs))
	for _, s := range r.subs {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubSubproductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.subs, id)
	return nil
}

func (r *stubSubproductoRepo) CreateProduccionTx(_ *gorm.DB, p *model.SubproductoProduccion) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.producciones = append(r.producciones, *p)
	return nil
}

func (r *stubSubproductoRepo) FindUltimaProduccion(_ context.Context, subproductoID uuid.UUID) (*model.SubproductoProduccion, error) {
	for i := len(r.producciones) - 1; i >= 0; i-- {
		if r.producciones[i].SubproductoID == subproductoID {
			cp := r.producciones[i]
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSubproductoRepo) ListProducciones(_ context.Context, subproductoID uuid.UUID, _ int) ([]model.SubproductoProduccion, error) {
	var out []model.SubproductoProduccion
	for _, p := range r.producciones {
		if p.SubproductoID == subproductoID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubSubproductoRepo) DeleteProduccion(_ context.Context, id uuid.UUID) error {
	for i, p := range r.producciones {
		if p.ID == id {
			r.producciones = append(r.producciones[:i], r.producciones[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubSubproductoRepo) DB() *gorm.DB { return nil }

// ── Productos finales ────────────────────────────────────────────────────────

type stubProductoFinalRepo struct {
	productos map[uuid.UUID]*model.ProductoFinal
}

func newStubProductoFinalRepo() *stubProductoFinalRepo {
	return &stubProductoFinalRepo{productos: make(map[uuid.UUID]*model.ProductoFinal)}
}

func (r *stubProductoFinalRepo) CreateTx(_ *gorm.DB, pf *model.ProductoFinal) error {
	if pf.ID == uuid.Nil {
		pf.ID = uuid.New()
	}
	for i := range pf.Componentes {
		if pf.Componentes[i].ID == uuid.Nil {
			pf.Componentes[i].ID = uuid.New()
		}
		pf.Componentes[i].ProductoFinalID = pf.ID
	}
	r.productos[pf.ID] = pf
	return nil
}

func (r *stubProductoFinalRepo) FindByID(_ context.Context, id uuid.UUID) (*model.ProductoFinal, error) {
	pf, ok := r.productos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return pf, nil
}

func (r *stubProductoFinalRepo) FindByNombre(_ context.Context, nombre string) (*model.ProductoFinal, error) {
	for _, pf := range r.productos {
		if pf.Nombre == nombre {
			return pf, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductoFinalRepo) List(_ context.Context) ([]model.ProductoFinal, error) {
	out := make([]model.ProductoFinal, 0, len(r.productos))
	for _, pf := range r.productos {
		out = append(out, *pf)
	}
	return out, nil
}

func (r *stubProductoFinalRepo) UpdatePrecioVenta(_ context.Context, id uuid.UUID, precio decimal.Decimal) error {
	pf, ok := r.productos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	pf.PrecioVenta = &precio
	return nil
}

func (r *stubProductoFinalRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	return nil
}

func (r *stubProductoFinalRepo) DB() *gorm.DB { return nil }

// ── Ventas / clientes ────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.VentaCabecera
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.VentaCabecera)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.VentaCabecera) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	for i := range v.Items {
		if v.Items[i].ID == uuid.Nil {
			v.Items[i].ID = uuid.New()
		}
		v.Items[i].VentaID = v.ID
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.VentaCabecera, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, _ int) ([]model.VentaCabecera, error) {
	out := make([]model.VentaCabecera, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context, soloActivos bool) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		if soloActivos && !c.Activo {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) SetActivo(_ context.Context, id uuid.UUID, activo bool) error {
	c, ok := r.clientes[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Activo = activo
	return nil
}

// ── Contabilidad ─────────────────────────────────────────────────────────────

type stubContabilidadRepo struct {
	entradas   []model.Contabilidad
	failCreate bool
}

func (r *stubContabilidadRepo) Create(_ context.Context, e *model.Contabilidad) error {
	if r.failCreate {
		return gorm.ErrInvalidDB
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.entradas = append(r.entradas, *e)
	return nil
}

func (r *stubContabilidadRepo) Historial(_ context.Context, _ int) ([]model.Contabilidad, error) {
	return r.entradas, nil
}

func (r *stubContabilidadRepo) ResumenGeneral(_ context.Context) (*repository.ResumenGeneral, error) {
	res := &repository.ResumenGeneral{
		TotalIngresos: decimal.Zero,
		TotalCostos:   decimal.Zero,
		TotalGanancia: decimal.Zero,
	}
	for _, e := range r.entradas {
		res.TotalVentas++
		res.TotalUnidades += int64(e.CantidadVendida)
		res.TotalIngresos = res.TotalIngresos.Add(e.IngresoTotal)
		res.TotalCostos = res.TotalCostos.Add(e.CostoTotal)
		res.TotalGanancia = res.TotalGanancia.Add(e.GananciaNeta)
	}
	return res, nil
}

func (r *stubContabilidadRepo) ResumenPorProducto(_ context.Context) ([]repository.ResumenProducto, error) {
	return nil, nil
}
