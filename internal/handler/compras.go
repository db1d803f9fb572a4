package handler

import (
	"net/http"

	"github.com/Carlos-148/App-Economia-CB/internal/apierror"
	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/gin-gonic/gin"
)

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// RegistrarGranel godoc
// @Summary      Registrar compra a granel
// @Description  Registra una compra valuada por lote completo, promedia el costo del stock y descuenta caja.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CompraGranelRequest true "Detalle de la compra"
// @Success      201  {object} dto.CompraResponse
// @Failure      409  {object} apierror.APIError "Compra bloqueada por caja insuficiente"
// @Router       /v1/compras/granel [post]
func (h *ComprasHandler) RegistrarGranel(c *gin.Context) {
	var req dto.CompraGranelRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarGranel(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// RegistrarPaquetes godoc
// @Summary      Registrar compra por paquetes
// @Description  Registra N paquetes de contenido conocido; el total se expande a unidades base antes de promediar.
// @Tags         compras
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CompraPaquetesRequest true "Detalle de la compra"
// @Success      201  {object} dto.CompraResponse
// @Failure      409  {object} apierror.APIError "Compra bloqueada por caja insuficiente"
// @Router       /v1/compras/paquetes [post]
func (h *ComprasHandler) RegistrarPaquetes(c *gin.Context) {
	var req dto.CompraPaquetesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPaquetes(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ComprasHandler) Historial(c *gin.Context) {
	if producto := c.Query("producto"); producto != "" {
		compras, err := h.svc.HistorialPorProducto(c.Request.Context(), producto)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
			return
		}
		c.JSON(http.StatusOK, compras)
		return
	}
	if proveedor := c.Query("proveedor"); proveedor != "" {
		compras, err := h.svc.HistorialPorProveedor(c.Request.Context(), proveedor)
		if err != nil {
			c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
			return
		}
		c.JSON(http.StatusOK, compras)
		return
	}
	compras, err := h.svc.Historial(c.Request.Context(), limitQuery(c, 100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar compras"))
		return
	}
	c.JSON(http.StatusOK, compras)
}
