package handler

import (
	"net/http"

	"github.com/Carlos-148/App-Economia-CB/internal/apierror"
	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/gin-gonic/gin"
)

type EfectivoHandler struct{ svc service.EfectivoService }

func NewEfectivoHandler(svc service.EfectivoService) *EfectivoHandler {
	return &EfectivoHandler{svc: svc}
}

// EstadoCaja godoc
// @Summary      Estado de caja
// @Description  Estado derivado (capital total, gastos en compras, dinero fisico); nada se persiste.
// @Tags         efectivo
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} dto.EstadoCajaResponse
// @Router       /v1/efectivo [get]
func (h *EfectivoHandler) EstadoCaja(c *gin.Context) {
	estado, err := h.svc.EstadoCaja(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al calcular estado de caja"))
		return
	}
	c.JSON(http.StatusOK, estado)
}

// AgregarCapital godoc
// @Summary      Agregar capital a caja
// @Description  Registra un ingreso de capital; solo administradores.
// @Tags         efectivo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CapitalRequest true "Monto y descripcion"
// @Success      201  {object} model.EfectivoMovimiento
// @Failure      403  {object} apierror.APIError
// @Router       /v1/efectivo/capital [post]
func (h *EfectivoHandler) AgregarCapital(c *gin.Context) {
	var req dto.CapitalRequest
	if !bindAndValidate(c, &req) {
		return
	}
	mov, err := h.svc.AgregarCapital(c.Request.Context(), req.Monto, req.Descripcion)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mov)
}

func (h *EfectivoHandler) Movimientos(c *gin.Context) {
	movs, err := h.svc.Movimientos(c.Request.Context(), limitQuery(c, 100))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar movimientos"))
		return
	}
	c.JSON(http.StatusOK, movs)
}
