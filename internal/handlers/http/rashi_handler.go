package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

// RashiHandler expõe a tabela de referência dos signos
type RashiHandler struct {
	rashiService *services.RashiService
	errors       *ErrorHandler
}

func NewRashiHandler(rashiService *services.RashiService, errors *ErrorHandler) *RashiHandler {
	return &RashiHandler{
		rashiService: rashiService,
		errors:       errors,
	}
}

// List godoc
// @Summary      List Rashi reference rows
// @Tags         rashis
// @Produce      json
// @Success      200 {array} dto.RashiResponse
// @Router       /rashis [get]
func (h *RashiHandler) List(c *gin.Context) {
	rashis, err := h.rashiService.List(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRashiResponses(rashis))
}

// Get godoc
// @Summary      Get a Rashi by name
// @Tags         rashis
// @Produce      json
// @Param        name path string true "Sign name, any case"
// @Success      200 {object} dto.RashiResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /rashis/{name} [get]
func (h *RashiHandler) Get(c *gin.Context) {
	rashi, err := h.rashiService.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRashiResponse(rashi))
}

// Upsert godoc
// @Summary      Create or update a Rashi by name
// @Tags         rashis
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.UpsertRashiRequest true "Rashi"
// @Success      200 {object} dto.RashiEnvelope
// @Success      201 {object} dto.RashiEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Router       /rashis [post]
func (h *RashiHandler) Upsert(c *gin.Context) {
	var req dto.UpsertRashiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	rashi, created, err := h.rashiService.Upsert(c.Request.Context(), req.ToInput())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	status, key := http.StatusOK, "message.rashi_updated"
	if created {
		status, key = http.StatusCreated, "message.rashi_created"
	}

	c.JSON(status, dto.RashiEnvelope{
		Message: dto.T(c, key),
		Rashi:   dto.ToRashiResponse(rashi),
	})
}
