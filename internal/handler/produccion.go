package handler

import (
	"net/http"

	"github.com/Carlos-148/App-Economia-CB/internal/apierror"
	"github.com/Carlos-148/App-Economia-CB/internal/dto"
	"github.com/Carlos-148/App-Economia-CB/internal/service"

	"github.com/gin-gonic/gin"
)

type ProduccionHandler struct{ svc service.ProduccionService }

func NewProduccionHandler(svc service.ProduccionService) *ProduccionHandler {
	return &ProduccionHandler{svc: svc}
}

// CrearSubproducto godoc
// @Summary      Crear receta de subproducto
// @Description  Registra la receta y congela su costo total con los promedios vigentes de cada ingrediente.
// @Tags         produccion
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.SubproductoRequest true "Receta con ingredientes"
// @Success      201  {object} model.Subproducto
// @Failure      400  {object} apierror.APIError
// @Router       /v1/subproductos [post]
func (h *ProduccionHandler) CrearSubproducto(c *gin.Context) {
	var req dto.SubproductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sub, err := h.svc.CrearSubproducto(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sub)
}

func (h *ProduccionHandler) ListarSubproductos(c *gin.Context) {
	subs, err := h.svc.ListarSubproductos(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar subproductos"))
		return
	}
	c.JSON(http.StatusOK, subs)
}

func (h *ProduccionHandler) ObtenerSubproducto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	sub, err := h.svc.ObtenerSubproducto(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *ProduccionHandler) EliminarSubproducto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.svc.EliminarSubproducto(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProduccionHandler) Estimar(c *gin.Context) {
	var req dto.EstimacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	est, err := h.svc.Estimar(c.Request.Context(), req.SubproductoID, req.Unidades)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, est)
}

// Producir godoc
// @Summary      Registrar corrida de produccion
// @Description  Consume los ingredientes de la receta tal cual (sin escalar por unidades) en una transaccion; aborta completa si falta stock.
// @Tags         produccion
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ProduccionRequest true "Corrida"
// @Success      201  {object} model.SubproductoProduccion
// @Failure      409  {object} apierror.APIError "Stock insuficiente"
// @Router       /v1/subproductos/producir [post]
func (h *ProduccionHandler) Producir(c *gin.Context) {
	var req dto.ProduccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	prod, err := h.svc.Producir(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prod)
}

func (h *ProduccionHandler) ListarProducciones(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	prods, err := h.svc.ListarProducciones(c.Request.Context(), id, limitQuery(c, 50))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar producciones"))
		return
	}
	c.JSON(http.StatusOK, prods)
}

func (h *ProduccionHandler) EliminarProduccion(c *gin.Context) {
	id, ok := parseIDParam(c, "produccion_id")
	if !ok {
		return
	}
	if err := h.svc.EliminarProduccion(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
