//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// These tests:
//   T-E2E-1: Full cycle (capital → compras → receta → produccion → stock y caja)
//   T-E2E-2: Produccion sin stock aborta y revierte los consumos ya aplicados

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Carlos-148/App-Economia-CB/internal/config"
	"github.com/Carlos-148/App-Economia-CB/internal/infra"
	"github.com/Carlos-148/App-Economia-CB/internal/model"
	"github.com/Carlos-148/App-Economia-CB/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	engine *gin.Engine
	db     *gorm.DB
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	// Start Postgres container
	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("economia_test"),
		tcPostgres.WithUsername("economia"),
		tcPostgres.WithPassword("economia"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Start Redis container
	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	// Build config
	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		WorkerPoolSize:     1,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		CacheTTLSeconds:    60,
		ReportStoragePath:  t.TempDir(),
	}

	// Connect DB + run migrations
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	require.NoError(t, infra.RunMigrations(db))

	// Seed admin user
	hash, err := bcrypt.GenerateFromPassword([]byte("economia2026"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.Usuario{
		Username:     "admin",
		Nombre:       "Admin E2E",
		PasswordHash: string(hash),
		Rol:          "administrador",
		Activo:       true,
	}).Error)

	// Build router
	r, _ := router.New(cfg, db, rdb)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	// Login as admin
	loginResp := do(t, srv, "POST", "/v1/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "economia2026"}),
		"",
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{
		server: srv,
		token:  loginBody.AccessToken,
		engine: r,
		db:     db,
	}
}

// seedBase loads capital and the two raw materials every scenario starts from.
func seedBase(t *testing.T, env *testEnv) {
	t.Helper()

	resp := do(t, env.server, "POST", "/v1/efectivo/capital",
		jsonBody(t, map[string]any{"monto": 10000, "descripcion": "capital inicial"}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	for _, compra := range []map[string]any{
		{"producto": "harina", "cantidad": 10, "unidad": "kg", "precio_total": 20, "proveedor": "Molino Centro"},
		{"producto": "leche", "cantidad": 4, "unidad": "l", "precio_total": 20, "proveedor": "Lacteos Sur"},
	} {
		resp := do(t, env.server, "POST", "/v1/compras/granel", jsonBody(t, compra), env.token)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}
}

// crearRecetaMasa registers the shared test recipe: 2 kg harina + 500 ml leche.
func crearRecetaMasa(t *testing.T, env *testEnv) string {
	t.Helper()

	resp := do(t, env.server, "POST", "/v1/subproductos",
		jsonBody(t, map[string]any{
			"nombre": "masa base",
			"ingredientes": []map[string]any{
				{"producto": "harina", "cantidad": 2, "unidad": "kg"},
				{"producto": "leche", "cantidad": 500, "unidad": "ml"},
			},
		}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sub struct {
		ID string `json:"id"`
	}
	decodeJSON(t, resp, &sub)
	require.NotEmpty(t, sub.ID)
	return sub.ID
}

func stockDe(t *testing.T, env *testEnv, nombre string) decimal.Decimal {
	t.Helper()
	resp := do(t, env.server, "GET", "/v1/inventario/"+nombre, nil, env.token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var prod model.Producto
	decodeJSON(t, resp, &prod)
	return prod.CantidadStock
}

// ── Tests ────────────────────────────────────────────────────────────────────

// T-E2E-1: capital → compras → receta → produccion, checking stock and caja.
func TestE2E_CicloCompraProduccion(t *testing.T) {
	env := setupTestEnv(t)
	seedBase(t, env)
	subID := crearRecetaMasa(t, env)

	// Produce: consumes the recipe quantities verbatim.
	prodResp := do(t, env.server, "POST", "/v1/subproductos/producir",
		jsonBody(t, map[string]any{"subproducto_id": subID, "unidades": 20, "tipo_unidad": "reales"}),
		env.token,
	)
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var produccion struct {
		UnidadesProducidas int             `json:"UnidadesProducidas"`
		CostoTotalMasa     decimal.Decimal `json:"CostoTotalMasa"`
	}
	decodeJSON(t, prodResp, &produccion)
	require.Equal(t, 20, produccion.UnidadesProducidas)
	// harina: 20/10000g = 0.002/g * 2000g = 4; leche: 20/4000ml = 0.005/ml * 500ml = 2.5
	require.True(t, produccion.CostoTotalMasa.Equal(decimal.RequireFromString("6.5")),
		"costo masa = %s", produccion.CostoTotalMasa)

	// Stock decremented in base units.
	harina := stockDe(t, env, "harina")
	require.True(t, harina.Equal(decimal.NewFromInt(8000)), "harina = %s", harina)
	leche := stockDe(t, env, "leche")
	require.True(t, leche.Equal(decimal.NewFromInt(3500)), "leche = %s", leche)

	// The run is listed.
	listResp := do(t, env.server, "GET", "/v1/subproductos/"+subID+"/producciones", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var runs []model.SubproductoProduccion
	decodeJSON(t, listResp, &runs)
	require.Len(t, runs, 1)

	// Caja: 10000 capital - 40 compras.
	cajaResp := do(t, env.server, "GET", "/v1/efectivo", nil, env.token)
	require.Equal(t, http.StatusOK, cajaResp.StatusCode)
	var caja struct {
		DineroFisico decimal.Decimal `json:"dinero_fisico"`
	}
	decodeJSON(t, cajaResp, &caja)
	require.True(t, caja.DineroFisico.Equal(decimal.NewFromInt(9960)), "fisico = %s", caja.DineroFisico)
}

// T-E2E-2: a run that fails on a later ingredient rolls back the consumption
// already applied to earlier ones; no partial issue survives.
func TestE2E_ProduccionSinStockRevierteConsumo(t *testing.T) {
	env := setupTestEnv(t)
	seedBase(t, env)
	subID := crearRecetaMasa(t, env)

	// Drain leche down to 200 ml so the recipe's 500 ml line cannot be issued.
	consResp := do(t, env.server, "POST", "/v1/inventario/consumir",
		jsonBody(t, map[string]any{"producto": "leche", "cantidad": 3800, "unidad": "ml"}),
		env.token,
	)
	require.Equal(t, http.StatusOK, consResp.StatusCode)
	consResp.Body.Close()

	prodResp := do(t, env.server, "POST", "/v1/subproductos/producir",
		jsonBody(t, map[string]any{"subproducto_id": subID, "unidades": 20}),
		env.token,
	)
	require.Equal(t, http.StatusConflict, prodResp.StatusCode)
	prodResp.Body.Close()

	// The harina line was inside the same transaction: its 2 kg issue must
	// have been rolled back, leaving the full 10000 g in stock.
	harina := stockDe(t, env, "harina")
	require.True(t, harina.Equal(decimal.NewFromInt(10000)), "harina tras abort = %s", harina)
	leche := stockDe(t, env, "leche")
	require.True(t, leche.Equal(decimal.NewFromInt(200)), "leche tras abort = %s", leche)

	// And no run record exists.
	listResp := do(t, env.server, "GET", "/v1/subproductos/"+subID+"/producciones", nil, env.token)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var runs []model.SubproductoProduccion
	decodeJSON(t, listResp, &runs)
	require.Empty(t, runs)
}
