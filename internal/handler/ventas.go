package handler

import (
	"net/http"

	"github.com/Carlos-148/App-Economia-CB/internal/apierror"
	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/gin-gonic/gin"
)

type VentasHandler struct{ svc service.VentaService }

func NewVentasHandler(svc service.VentaService) *VentasHandler {
	return &VentasHandler{svc: svc}
}

// RegistrarVenta godoc
// @Summary      Registrar venta a cliente
// @Description  Crea la venta, ingresa el monto a caja y actualiza el acumulado vendido de cada producto final.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.VentaRequest true "Detalle de la venta"
// @Success      201  {object} model.VentaCabecera
// @Failure      400  {object} apierror.APIError
// @Router       /v1/ventas [post]
func (h *VentasHandler) RegistrarVenta(c *gin.Context) {
	var req dto.VentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	venta, err := h.svc.RegistrarVenta(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, venta)
}

func (h *VentasHandler) ObtenerVenta(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	venta, err := h.svc.ObtenerVenta(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, venta)
}

func (h *VentasHandler) ListarVentas(c *gin.Context) {
	ventas, err := h.svc.ListarVentas(c.Request.Context(), limitQuery(c, 100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar ventas"))
		return
	}
	c.JSON(http.StatusOK, ventas)
}

// ── Clientes ─────────────────────────────────────────────────────────────────

func (h *VentasHandler) CrearCliente(c *gin.Context) {
	var req dto.ClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.CrearCliente(c.Request.Context(), req.Nombre)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cliente)
}

func (h *VentasHandler) ListarClientes(c *gin.Context) {
	soloActivos := c.Query("todos") == ""
	clientes, err := h.svc.ListarClientes(c.Request.Context(), soloActivos)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar clientes"))
		return
	}
	c.JSON(http.StatusOK, clientes)
}

func (h *VentasHandler) DesactivarCliente(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DesactivarCliente(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
