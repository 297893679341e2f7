package dto

import (
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// CreateAppointmentRequest representa o agendamento de uma consulta.
// Preço e duração enviados pelo cliente são ignorados.
type CreateAppointmentRequest struct {
	ConsultationType string  `json:"consultationType" binding:"required,consultationtype"`
	ScheduledTime    string  `json:"scheduledTime" binding:"required,isodate"`
	ZodiacSign       *string `json:"zodiacSign" binding:"omitempty,zodiacsign"`
	Notes            *string `json:"notes"`
	PreferredMethod  string  `json:"preferredMethod" binding:"omitempty,oneof=video phone"`
}

// UpdateAppointmentStatusRequest é a mudança de status feita pelo admin
type UpdateAppointmentStatusRequest struct {
	Status      string  `json:"status" binding:"required,oneof=pending confirmed completed cancelled"`
	MeetingLink *string `json:"meetingLink"`
}

// AppointmentClientResponse é a projeção do cliente na listagem do admin
type AppointmentClientResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Username  string `json:"username"`
}

// RashiSummaryResponse é o Rashi anexado pelo nome do signo
type RashiSummaryResponse struct {
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	Element string `json:"element"`
}

// AppointmentResponse representa a resposta de um agendamento
type AppointmentResponse struct {
	ID               string                     `json:"id"`
	ClientID         string                     `json:"clientId"`
	ConsultationType string                     `json:"consultationType"`
	ScheduledTime    time.Time                  `json:"scheduledTime"`
	ZodiacSign       *string                    `json:"zodiacSign"`
	Status           string                     `json:"status"`
	Notes            *string                    `json:"notes"`
	PreferredMethod  string                     `json:"preferredMethod"`
	MeetingLink      *string                    `json:"meetingLink"`
	Price            string                     `json:"price"`
	Duration         int                        `json:"duration"`
	Client           *AppointmentClientResponse `json:"client,omitempty"`
	Rashi            *RashiSummaryResponse      `json:"rashi"`
	CreatedAt        time.Time                  `json:"createdAt"`
	UpdatedAt        time.Time                  `json:"updatedAt"`
}

// AppointmentEnvelope é a resposta de criação e de mudança de status
type AppointmentEnvelope struct {
	Message     string              `json:"message"`
	Appointment AppointmentResponse `json:"appointment"`
}

// ToAppointmentResponse converte uma entidade Appointment.
// withClient controla a projeção do cliente, exclusiva do admin.
func ToAppointmentResponse(a *entities.Appointment, withClient bool) AppointmentResponse {
	var sign *string
	if a.ZodiacSign != nil {
		s := a.ZodiacSign.String()
		sign = &s
	}

	response := AppointmentResponse{
		ID:               a.ID,
		ClientID:         a.ClientID,
		ConsultationType: string(a.ConsultationType),
		ScheduledTime:    a.ScheduledTime,
		ZodiacSign:       sign,
		Status:           string(a.Status),
		Notes:            a.Notes,
		PreferredMethod:  string(a.PreferredMethod),
		MeetingLink:      a.MeetingLink,
		Price:            a.Price.StringFixed(2),
		Duration:         a.Duration,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
	if withClient && a.Client != nil {
		response.Client = &AppointmentClientResponse{
			FirstName: a.Client.FirstName,
			LastName:  a.Client.LastName,
			Email:     a.Client.Email,
			Username:  a.Client.Username,
		}
	}
	if a.Rashi != nil {
		response.Rashi = &RashiSummaryResponse{
			Name:    string(a.Rashi.Name),
			Symbol:  a.Rashi.Symbol,
			Element: string(a.Rashi.Element),
		}
	}
	return response
}

// ToAppointmentResponses converte uma lista de agendamentos
func ToAppointmentResponses(list []*entities.Appointment, withClient bool) []AppointmentResponse {
	responses := make([]AppointmentResponse, len(list))
	for i, a := range list {
		responses[i] = ToAppointmentResponse(a, withClient)
	}
	return responses
}
