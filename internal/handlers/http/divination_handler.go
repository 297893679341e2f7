package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

// DivinationHandler atende os geradores sem estado: números da sorte e tarô
type DivinationHandler struct {
	luckyService *services.LuckyService
	tarotService *services.TarotService
	errors       *ErrorHandler
}

func NewDivinationHandler(luckyService *services.LuckyService, tarotService *services.TarotService, errors *ErrorHandler) *DivinationHandler {
	return &DivinationHandler{
		luckyService: luckyService,
		tarotService: tarotService,
		errors:       errors,
	}
}

// LuckyNumbers godoc
// @Summary      Generate lucky numbers and colors
// @Tags         divination
// @Accept       json
// @Produce      json
// @Param        request body dto.LuckyRequest true "Method and input"
// @Success      200 {object} dto.LuckyResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /lucky-numbers [post]
func (h *DivinationHandler) LuckyNumbers(c *gin.Context) {
	var req dto.LuckyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	birthDate, err := dto.ParseOptionalDate(req.BirthDate)
	if err != nil {
		dto.Abort(c, dto.FieldErrorResponse(c, "birthDate", "error.invalid_date"))
		return
	}

	result, err := h.luckyService.Generate(services.LuckyInput{
		Method:     services.LuckyMethod(req.Method),
		ZodiacSign: req.ZodiacSign,
		BirthDate:  birthDate,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLuckyResponse(result))
}

// TarotSpreads godoc
// @Summary      List tarot spreads
// @Tags         divination
// @Produce      json
// @Success      200 {array} dto.TarotSpreadResponse
// @Router       /tarot/spreads [get]
func (h *DivinationHandler) TarotSpreads(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToTarotSpreadResponses(h.tarotService.Spreads()))
}

// TarotDraw godoc
// @Summary      Draw a tarot reading
// @Tags         divination
// @Produce      json
// @Param        spread query string false "Spread key, three-card by default"
// @Success      200 {object} dto.TarotReadingResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /tarot/draw [get]
func (h *DivinationHandler) TarotDraw(c *gin.Context) {
	reading, err := h.tarotService.Draw(c.Query("spread"))
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTarotReadingResponse(reading))
}
