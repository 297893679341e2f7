package services

import (
	"context"
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/catalog"
	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

const scheduleLayout = "Monday, January 2, 2006 at 15:04 MST"

// AppointmentService contém o agendamento de consultas
type AppointmentService struct {
	appointments repositories.AppointmentRepository
	rashis       repositories.RashiRepository
	catalog      *catalog.Catalog
	notifier     ports.Notifier
	logger       ports.Logger
}

// NewAppointmentService cria um novo AppointmentService
func NewAppointmentService(
	appointments repositories.AppointmentRepository,
	rashis repositories.RashiRepository,
	catalog *catalog.Catalog,
	notifier ports.Notifier,
	logger ports.Logger,
) *AppointmentService {
	return &AppointmentService{
		appointments: appointments,
		rashis:       rashis,
		catalog:      catalog,
		notifier:     notifier,
		logger:       logger,
	}
}

// BookInput não tem preço nem duração: ambos vêm do catálogo
type BookInput struct {
	ConsultationType string
	ScheduledTime    time.Time
	ZodiacSign       *string
	Notes            *string
	PreferredMethod  string
}

// Book cria um agendamento pendente para o cliente
func (s *AppointmentService) Book(ctx context.Context, client *entities.User, input BookInput) (*entities.Appointment, error) {
	consultation, ok := entities.ParseConsultationType(input.ConsultationType)
	if !ok {
		return nil, errors.Invalid("consultationType", errors.ErrInvalidConsultationType)
	}
	terms, ok := s.catalog.ConsultationTerms(consultation)
	if !ok {
		return nil, errors.Invalid("consultationType", errors.ErrInvalidConsultationType)
	}
	if input.ScheduledTime.IsZero() {
		return nil, errors.Invalid("scheduledTime", errors.ErrInvalidDate)
	}

	var sign *entities.ZodiacSign
	if input.ZodiacSign != nil && *input.ZodiacSign != "" {
		parsed, ok := entities.ParseZodiacSign(*input.ZodiacSign)
		if !ok {
			return nil, errors.Invalid("zodiacSign", errors.ErrInvalidZodiacSign)
		}
		sign = &parsed
	}

	method := entities.ContactMethod(input.PreferredMethod)
	if method == "" {
		method = entities.MethodVideo
	}
	if method != entities.MethodVideo && method != entities.MethodPhone {
		return nil, errors.Invalid("preferredMethod", errors.ErrInvalidContactMethod)
	}

	appointment := &entities.Appointment{
		ClientID:         client.ID,
		ConsultationType: consultation,
		ScheduledTime:    input.ScheduledTime,
		ZodiacSign:       sign,
		Status:           entities.AppointmentPending,
		Notes:            input.Notes,
		PreferredMethod:  method,
		Price:            terms.Price,
		Duration:         terms.Duration,
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.logger.Info("appointment booked",
		"appointment_id", appointment.ID,
		"client_id", client.ID,
		"consultation_type", consultation,
	)

	if err := s.attachRashis(ctx, []*entities.Appointment{appointment}); err != nil {
		return nil, err
	}

	s.notifier.Notify(ports.Notification{
		Kind:    ports.NotificationAppointmentCreated,
		To:      client.Email.String(),
		Subject: "Appointment Confirmation - KundliVision",
		Data: map[string]any{
			"FirstName":        client.FirstName,
			"ConsultationType": string(consultation),
			"ScheduledTime":    appointment.ScheduledTime.Format(scheduleLayout),
			"Duration":         appointment.Duration,
			"Price":            appointment.Price.StringFixed(2),
		},
	})

	return appointment, nil
}

// ListForClient retorna apenas os agendamentos do próprio cliente
func (s *AppointmentService) ListForClient(ctx context.Context, clientID string) ([]*entities.Appointment, error) {
	appointments, err := s.appointments.ListByClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return appointments, s.attachRashis(ctx, appointments)
}

// ListAll retorna todos os agendamentos com o cliente carregado
func (s *AppointmentService) ListAll(ctx context.Context) ([]*entities.Appointment, error) {
	appointments, err := s.appointments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return appointments, s.attachRashis(ctx, appointments)
}

// UpdateStatus aplica qualquer status válido; confirmado com link avisa o cliente
func (s *AppointmentService) UpdateStatus(ctx context.Context, id, status string, meetingLink *string) (*entities.Appointment, error) {
	newStatus, ok := entities.ParseAppointmentStatus(status)
	if !ok {
		return nil, errors.Invalid("status", errors.ErrInvalidStatus)
	}

	appointment, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, errors.ErrAppointmentNotFound
	}

	appointment.SetStatus(newStatus, meetingLink)

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.logger.Info("appointment status updated", "appointment_id", id, "status", newStatus)

	if err := s.attachRashis(ctx, []*entities.Appointment{appointment}); err != nil {
		return nil, err
	}

	if appointment.ShouldSendMeetingLink() && appointment.Client != nil {
		s.notifier.Notify(ports.Notification{
			Kind:    ports.NotificationMeetingLink,
			To:      appointment.Client.Email,
			Subject: "Appointment Confirmed - Meeting Link",
			Data: map[string]any{
				"FirstName":        appointment.Client.FirstName,
				"ConsultationType": string(appointment.ConsultationType),
				"ScheduledTime":    appointment.ScheduledTime.Format(scheduleLayout),
				"MeetingLink":      *appointment.MeetingLink,
			},
		})
	}

	return appointment, nil
}

// Cancel só permite ao dono cancelar; de outro cliente responde como inexistente
func (s *AppointmentService) Cancel(ctx context.Context, id, clientID string) error {
	appointment, err := s.appointments.FindByIDForClient(ctx, id, clientID)
	if err != nil {
		return err
	}
	if appointment == nil {
		return errors.ErrAppointmentNotFound
	}

	appointment.Cancel()

	if err := s.appointments.Update(ctx, appointment); err != nil {
		return err
	}

	s.logger.Info("appointment cancelled", "appointment_id", id, "client_id", clientID)
	return nil
}

// attachRashis resolve o Rashi de cada agendamento pelo nome do signo
func (s *AppointmentService) attachRashis(ctx context.Context, appointments []*entities.Appointment) error {
	names := make([]entities.ZodiacSign, 0, len(appointments))
	seen := make(map[entities.ZodiacSign]bool)
	for _, a := range appointments {
		if a.ZodiacSign != nil && !seen[*a.ZodiacSign] {
			seen[*a.ZodiacSign] = true
			names = append(names, *a.ZodiacSign)
		}
	}
	if len(names) == 0 {
		return nil
	}

	rashis, err := s.rashis.FindByNames(ctx, names)
	if err != nil {
		return err
	}

	for _, a := range appointments {
		if a.ZodiacSign == nil {
			continue
		}
		if r, ok := rashis[*a.ZodiacSign]; ok {
			a.Rashi = r.Summary()
		}
	}
	return nil
}
