package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Carlos-148/App-Economia-CB/internal/apierror"
	"github.com/Carlos-148/App-Economia-CB/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const precioCacheTTL = 4 * time.Hour

// PrecioResponse is the public price lookup payload.
type PrecioResponse struct {
	Nombre             string          `json:"nombre"`
	PrecioVenta        decimal.Decimal `json:"precio_venta"`
	CostoUnitarioTotal decimal.Decimal `json:"costo_unitario_total"`
}

// ConsultaPreciosHandler serves the public catalog price check endpoint.
// No authentication required — no side effects whatsoever.
type ConsultaPreciosHandler struct {
	repo repository.ProductoFinalRepository
	rdb  *redis.Client
}

func NewConsultaPreciosHandler(repo repository.ProductoFinalRepository, rdb *redis.Client) *ConsultaPreciosHandler {
	return &ConsultaPreciosHandler{repo: repo, rdb: rdb}
}

// GetPrecioPorNombre godoc
// @Summary Consulta de precio de catalogo por nombre (sin autenticacion)
// @Tags precio
// @Produce json
// @Param nombre path string true "Nombre del producto final"
// @Success 200 {object} handler.PrecioResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/precio/{nombre} [get]
func (h *ConsultaPreciosHandler) GetPrecioPorNombre(c *gin.Context) {
	nombre := c.Param("nombre")
	ctx := c.Request.Context()
	cacheKey := "precio:" + nombre

	// 1. Try Redis cache
	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp PrecioResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	// 2. Cache miss — query DB
	pf, err := h.repo.FindByNombre(ctx, nombre)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}

	precio := decimal.Zero
	if pf.PrecioVenta != nil {
		precio = *pf.PrecioVenta
	}
	resp := PrecioResponse{
		Nombre:             pf.Nombre,
		PrecioVenta:        precio,
		CostoUnitarioTotal: pf.CostoUnitarioTotal,
	}

	// 3. Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, precioCacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}
