package handler

import (
	"net/http"

	"github.com/Carlos-148/App-Economia-CB/internal/apierror"
	"github.com/Carlos-148/App-Economia-CB/internal/service"
	"github.com/Carlos-148/App-Economia-CB/internal/worker"

	"github.com/gin-gonic/gin"
)

type ContabilidadHandler struct {
	svc        service.ContabilidadService
	dispatcher *worker.Dispatcher
}

func NewContabilidadHandler(svc service.ContabilidadService, dispatcher *worker.Dispatcher) *ContabilidadHandler {
	return &ContabilidadHandler{svc: svc, dispatcher: dispatcher}
}

func (h *ContabilidadHandler) Historial(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Historial(c.Request.Context(), limitQuery(c, 100)))
}

// ResumenGeneral godoc
// @Summary Resumen contable agregado
// @Tags contabilidad
// @Produce json
// @Success 200 {object} repository.ResumenGeneral
// @Router /v1/contabilidad/resumen [get]
func (h *ContabilidadHandler) ResumenGeneral(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ResumenGeneral(c.Request.Context()))
}

func (h *ContabilidadHandler) ResumenPorProducto(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.ResumenPorProducto(c.Request.Context()))
}

type exportarReporteRequest struct {
	Email    string `json:"email"    validate:"omitempty,email"`
	Entradas int    `json:"entradas" validate:"omitempty,min=1,max=500"`
}

// ExportarReporte enqueues an async PDF report job; the response only
// acknowledges the enqueue, generation happens in the worker pool.
func (h *ContabilidadHandler) ExportarReporte(c *gin.Context) {
	var req exportarReporteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	payload := worker.ReporteJobPayload{Email: req.Email, Entradas: req.Entradas}
	if err := h.dispatcher.EnqueueReporte(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al encolar el reporte"))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"encolado": true})
}
