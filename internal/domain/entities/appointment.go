package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ConsultationType é uma das quatro categorias de consulta
type ConsultationType string

const (
	ConsultationBirthChart    ConsultationType = "birth-chart"
	ConsultationCompatibility ConsultationType = "compatibility"
	ConsultationCareer        ConsultationType = "career"
	ConsultationGeneral       ConsultationType = "general"
)

// ConsultationTypes lista as categorias aceitas
var ConsultationTypes = []ConsultationType{
	ConsultationBirthChart, ConsultationCompatibility, ConsultationCareer, ConsultationGeneral,
}

// ParseConsultationType normaliza e valida a categoria
func ParseConsultationType(name string) (ConsultationType, bool) {
	t := ConsultationType(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range ConsultationTypes {
		if c == t {
			return t, true
		}
	}
	return "", false
}

// AppointmentStatus é o estado de um agendamento
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// ParseAppointmentStatus normaliza e valida o status
func ParseAppointmentStatus(name string) (AppointmentStatus, bool) {
	s := AppointmentStatus(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled:
		return s, true
	}
	return "", false
}

// ContactMethod é o canal preferido para a consulta
type ContactMethod string

const (
	MethodVideo ContactMethod = "video"
	MethodPhone ContactMethod = "phone"
)

// AppointmentClient é a projeção do cliente usada na listagem do admin
type AppointmentClient struct {
	FirstName string
	LastName  string
	Email     string
	Username  string
}

// RashiSummary é a projeção de Rashi exibida junto ao agendamento
type RashiSummary struct {
	Name    ZodiacSign
	Symbol  string
	Element Element
}

// Appointment é uma consulta agendada por um cliente.
// Price e Duration são sempre derivados de ConsultationType no servidor.
type Appointment struct {
	ID               string
	ClientID         string
	ConsultationType ConsultationType
	ScheduledTime    time.Time
	ZodiacSign       *ZodiacSign
	Status           AppointmentStatus
	Notes            *string
	PreferredMethod  ContactMethod
	MeetingLink      *string
	Price            decimal.Decimal
	Duration         int
	Client           *AppointmentClient
	Rashi            *RashiSummary
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsOwnedBy verifica se o agendamento pertence ao usuário
func (a *Appointment) IsOwnedBy(userID string) bool {
	return a.ClientID == userID
}

// Cancel marca o agendamento como cancelado (transição de estado, não remoção)
func (a *Appointment) Cancel() {
	a.Status = AppointmentCancelled
}

// SetStatus aplica a mudança feita pelo admin; link nil mantém o atual
func (a *Appointment) SetStatus(status AppointmentStatus, meetingLink *string) {
	a.Status = status
	if meetingLink != nil {
		a.MeetingLink = meetingLink
	}
}

// ShouldSendMeetingLink indica se a confirmação deve ser enviada ao cliente
func (a *Appointment) ShouldSendMeetingLink() bool {
	return a.Status == AppointmentConfirmed && a.MeetingLink != nil && *a.MeetingLink != ""
}
