package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

// ZodiacHandler serve o catálogo estático e a compatibilidade
type ZodiacHandler struct {
	zodiacService *services.ZodiacService
	errors        *ErrorHandler
}

func NewZodiacHandler(zodiacService *services.ZodiacService, errors *ErrorHandler) *ZodiacHandler {
	return &ZodiacHandler{
		zodiacService: zodiacService,
		errors:        errors,
	}
}

// List godoc
// @Summary      List the twelve signs
// @Tags         zodiac
// @Produce      json
// @Success      200 {array} dto.ZodiacResponse
// @Router       /zodiac [get]
func (h *ZodiacHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToZodiacResponses(h.zodiacService.List()))
}

// Get godoc
// @Summary      Get a sign by name
// @Tags         zodiac
// @Produce      json
// @Param        sign path string true "Sign name, any case"
// @Success      200 {object} dto.ZodiacResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /zodiac/{sign} [get]
func (h *ZodiacHandler) Get(c *gin.Context) {
	profile, err := h.zodiacService.Get(c.Param("sign"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToZodiacResponse(profile))
}

// Compatibility godoc
// @Summary      Compatibility score of two signs
// @Tags         zodiac
// @Produce      json
// @Param        sign1 path string true "First sign"
// @Param        sign2 path string true "Second sign"
// @Success      200 {object} dto.CompatibilityResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /zodiac/compatibility/{sign1}/{sign2} [get]
func (h *ZodiacHandler) Compatibility(c *gin.Context) {
	result, err := h.zodiacService.Compatibility(c.Param("sign1"), c.Param("sign2"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCompatibilityResponse(result))
}
