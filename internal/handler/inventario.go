package handler

import (
	"net/http"

	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/gin-gonic/gin"
)

type InventarioHandler struct{ svc service.InventarioService }

func NewInventarioHandler(svc service.InventarioService) *InventarioHandler {
	return &InventarioHandler{svc: svc}
}

// Resumen godoc
// @Summary      Resumen de inventario
// @Description  Lista cada producto con cantidad en unidad legible, costo promedio ponderado y valor total.
// @Tags         inventario
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array} dto.InventarioItemResponse
// @Router       /v1/inventario [get]
func (h *InventarioHandler) Resumen(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Resumen(c.Request.Context()))
}

func (h *InventarioHandler) ObtenerProducto(c *gin.Context) {
	producto, err := h.svc.ObtenerProducto(c.Request.Context(), c.Param("nombre"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producto)
}

func (h *InventarioHandler) TotalInvertido(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"total_invertido": h.svc.TotalInvertido(c.Request.Context()),
	})
}

// Consumir issues stock directly (mermas, ajustes). Production runs have
// their own consumption path.
//
// Consumir godoc
// @Summary      Consumir stock directo
// @Description  Descuenta stock fuera de una corrida de produccion, por ejemplo mermas o ajustes.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ConsumoRequest true "Consumo"
// @Success      200
// @Failure      409  {object} apierror.APIError "Stock insuficiente"
// @Router       /v1/inventario/consumir [post]
func (h *InventarioHandler) Consumir(c *gin.Context) {
	var req dto.ConsumoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ConsumirStock(c.Request.Context(), req.Producto, req.Cantidad, req.Unidad); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
