package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

// ContactHandler recebe o formulário de contato
type ContactHandler struct {
	contactService *services.ContactService
	errors         *ErrorHandler
}

func NewContactHandler(contactService *services.ContactService, errors *ErrorHandler) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		errors:         errors,
	}
}

// Submit godoc
// @Summary      Send a contact message
// @Description  The message is stored before the admin notice is queued; email failures never fail the request
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body dto.ContactRequest true "Message"
// @Success      201 {object} dto.ContactResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	message, err := h.contactService.Submit(c.Request.Context(), services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ContactResponse{
		Message: dto.T(c, "message.contact_sent"),
		ID:      message.ID,
	})
}
