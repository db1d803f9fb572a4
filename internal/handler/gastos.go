package handler

import (
	"net/http"

	"github.com/Carlos-148/App-Economia-CB/internal/apierror"
	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/gin-gonic/gin"
)

type GastosHandler struct{ svc service.GastoService }

func NewGastosHandler(svc service.GastoService) *GastosHandler {
	return &GastosHandler{svc: svc}
}

// RegistrarMoney godoc
// @Summary      Registrar gasto en dinero
// @Description  Descuenta un gasto operativo de caja sin tocar inventario.
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.GastoMoneyRequest true "Gasto"
// @Success      201  {object} model.GastoMoney
// @Failure      400  {object} apierror.APIError
// @Router       /v1/gastos/money [post]
func (h *GastosHandler) RegistrarMoney(c *gin.Context) {
	var req dto.GastoMoneyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	gasto, err := h.svc.RegistrarGastoMoney(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gasto)
}

func (h *GastosHandler) RegistrarProducto(c *gin.Context) {
	var req dto.GastoProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	gasto, err := h.svc.RegistrarGastoProducto(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gasto)
}

func (h *GastosHandler) ListarMoney(c *gin.Context) {
	gastos, err := h.svc.ListarMoney(c.Request.Context(), limitQuery(c, 100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar gastos"))
		return
	}
	c.JSON(http.StatusOK, gastos)
}

func (h *GastosHandler) ListarProductos(c *gin.Context) {
	gastos, err := h.svc.ListarProductos(c.Request.Context(), limitQuery(c, 100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar gastos"))
		return
	}
	c.JSON(http.StatusOK, gastos)
}

func (h *GastosHandler) Total(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_gastos": h.svc.TotalGastos(c.Request.Context()),
	})
}
