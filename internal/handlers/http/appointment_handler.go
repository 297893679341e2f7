package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/handlers/middleware"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

// AppointmentHandler lida com agendamentos de consultas
type AppointmentHandler struct {
	appointmentService *services.AppointmentService
	errors             *ErrorHandler
}

func NewAppointmentHandler(appointmentService *services.AppointmentService, errors *ErrorHandler) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentService: appointmentService,
		errors:             errors,
	}
}

// ListMine godoc
// @Summary      List my appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.AppointmentResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	appointments, err := h.appointmentService.ListForClient(c.Request.Context(), user.ID)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponses(appointments, false))
}

// ListAll godoc
// @Summary      List every appointment with its client
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.AppointmentResponse
// @Router       /appointments/admin [get]
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	appointments, err := h.appointmentService.ListAll(c.Request.Context())
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAppointmentResponses(appointments, true))
}

// Create godoc
// @Summary      Book a consultation
// @Description  Price and duration come from the consultation type; values sent by the client are ignored
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateAppointmentRequest true "Booking"
// @Success      201 {object} dto.AppointmentEnvelope
// @Failure      400 {object} dto.ErrorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	scheduled, err := dto.ParseDate(req.ScheduledTime)
	if err != nil {
		dto.Abort(c, dto.FieldErrorResponse(c, "scheduledTime", "error.invalid_date"))
		return
	}

	client, _ := middleware.CurrentUser(c)

	appointment, err := h.appointmentService.Book(c.Request.Context(), client, services.BookInput{
		ConsultationType: req.ConsultationType,
		ScheduledTime:    scheduled,
		ZodiacSign:       req.ZodiacSign,
		Notes:            req.Notes,
		PreferredMethod:  req.PreferredMethod,
	})
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AppointmentEnvelope{
		Message:     dto.T(c, "message.appointment_scheduled"),
		Appointment: dto.ToAppointmentResponse(appointment, false),
	})
}

// UpdateStatus godoc
// @Summary      Change an appointment status
// @Description  Confirming with a meeting link emails the link to the client
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path string                              true "Appointment ID"
// @Param        request body dto.UpdateAppointmentStatusRequest true "Status"
// @Success      200 {object} dto.AppointmentEnvelope
// @Failure      404 {object} dto.ErrorResponse
// @Router       /appointments/{id}/status [put]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAppointmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errors.BindError(c, err)
		return
	}

	appointment, err := h.appointmentService.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, req.MeetingLink)
	if err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AppointmentEnvelope{
		Message:     dto.T(c, "message.appointment_status_updated"),
		Appointment: dto.ToAppointmentResponse(appointment, true),
	})
}

// Cancel godoc
// @Summary      Cancel my appointment
// @Description  Appointments of other clients answer 404
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Appointment ID"
// @Success      200 {object} dto.MessageResponse
// @Failure      404 {object} dto.ErrorResponse
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	if err := h.appointmentService.Cancel(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		h.errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Message(c, "message.appointment_cancelled"))
}
