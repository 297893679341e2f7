package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

// HoroscopeHandler expõe leitura pública e escrita do admin
type HoroscopeHandler struct {
	horoscopeService *services.HoroscopeService
	errors           *ErrorHandler
}

func NewHoroscopeHandler(horoscopeService *services.HoroscopeService, errors *ErrorHandler) *HoroscopeHandler {
	return &HoroscopeHandler{
		horoscopeService: horoscopeService,
		errors:           errors,
	}
}

// List godoc
// @Summary      List horoscopes
// @Description  Equality filters only, newest date first
// @Tags         horoscopes
// @Produce      json
// @Param        zodiacSign query string false "Zodiac sign"
// @Param        type       query string false "daily, weekly, monthly or yearly"
// @Param        date       query string false "YYYY-MM-DD or RFC 3339"
// @Success      200 {array} dto.HoroscopeResponse
// @Router       /horoscopes [get]
func (h *HoroscopeHandler) List(c *gin.Context) {
	var query dto.HoroscopeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.errors.BindError(c, err)
		return
	}

	date, err := dto.ParseOptionalDate(query.Date)
	if err != nil {
		dto.Abort(c, dto.FieldErrorResponse(c, "date", "error.invalid_date"))
		return
	}

	list, err := h.horoscopeService.List(c.Request.Context(), repositories.HoroscopeFilters{
		ZodiacSign: query.ZodiacSign,
		Type:       query.Type,
		Date:       date,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHoroscopeResponses(list))
}

// Today godoc
// @Summary      Today's daily horoscopes
// @Tags         horoscopes
// @Produce      json
// @Success      200 {array} dto.HoroscopeResponse
// @Router       /horoscopes/today [get]
func (h *HoroscopeHandler) Today(c *gin.Context) {
	list, err := h.horoscopeService.Today(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHoroscopeResponses(list))
}

// Create godoc
// @Summary      Create a horoscope
// @Tags         horoscopes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateHoroscopeRequest true "Horoscope"
// @Success      201 {object} dto.HoroscopeResponse
// @Failure      400 {object} dto.ErrorResponse
// @Failure      403 {object} dto.ErrorResponse
// @Router       /horoscopes [post]
func (h *HoroscopeHandler) Create(c *gin.Context) {
	var req dto.CreateHoroscopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		dto.Abort(c, dto.FieldErrorResponse(c, "date", "error.invalid_date"))
		return
	}

	horoscope, err := h.horoscopeService.Create(c.Request.Context(), services.CreateHoroscopeInput{
		ZodiacSign:    req.ZodiacSign,
		Type:          req.Type,
		Content:       req.Content,
		Date:          date,
		LuckyNumber:   req.LuckyNumber,
		LuckyColor:    req.LuckyColor,
		Mood:          req.Mood,
		Compatibility: req.Compatibility,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToHoroscopeResponse(horoscope))
}

// Update godoc
// @Summary      Partially update a horoscope
// @Description  Sign and type are not revalidated on update
// @Tags         horoscopes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                     true "Horoscope ID"
// @Param        request body dto.UpdateHoroscopeRequest true "Patch"
// @Success      200 {object} dto.HoroscopeResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /horoscopes/{id} [put]
func (h *HoroscopeHandler) Update(c *gin.Context) {
	var req dto.UpdateHoroscopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		dto.Abort(c, dto.FieldErrorResponse(c, "date", "error.invalid_date"))
		return
	}

	horoscope, err := h.horoscopeService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToHoroscopeResponse(horoscope))
}

// Delete godoc
// @Summary      Delete a horoscope
// @Tags         horoscopes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Horoscope ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /horoscopes/{id} [delete]
func (h *HoroscopeHandler) Delete(c *gin.Context) {
	if err := h.horoscopeService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "message.horoscope_deleted"))
}
