package handler

import (
	"net/http"

	"github.com/Carlos-148/App-Economia-CB/internal/apierror"
	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosFinalesHandler struct{ svc service.ProductoFinalService }

func NewProductosFinalesHandler(svc service.ProductoFinalService) *ProductosFinalesHandler {
	return &ProductosFinalesHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear producto final
// @Description  Registra un producto de venta compuesto por insumos directos y subproductos.
// @Tags         productos-finales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ProductoFinalRequest true "Composicion"
// @Success      201  {object} model.ProductoFinal
// @Failure      400  {object} apierror.APIError
// @Router       /v1/productos-finales [post]
func (h *ProductosFinalesHandler) Crear(c *gin.Context) {
	var req dto.ProductoFinalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pf, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pf)
}

func (h *ProductosFinalesHandler) Listar(c *gin.Context) {
	pfs, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar productos finales"))
		return
	}
	c.JSON(http.StatusOK, pfs)
}

// Info godoc
// @Summary      Info de producto final
// @Description  Retorna la composicion con doble costo: el congelado de la receta y el dinamico de la ultima produccion.
// @Tags         productos-finales
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del producto final"
// @Success      200  {object} dto.ProductoFinalInfoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/productos-finales/{id}/info [get]
func (h *ProductosFinalesHandler) Info(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	info, err := h.svc.Info(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *ProductosFinalesHandler) SetPrecioVenta(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.PrecioVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.SetPrecioVenta(c.Request.Context(), id, req.PrecioVenta); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *ProductosFinalesHandler) Eliminar(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
