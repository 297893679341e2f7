package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

// AppointmentRepository implementa repositories.AppointmentRepository
type AppointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository cria um novo AppointmentRepository
func NewAppointmentRepository(db *gorm.DB) repositories.AppointmentRepository {
	return &AppointmentRepository{db: db}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *entities.Appointment) error {
	model := appointmentToModel(appointment)

	if err := r.getDB(ctx).Omit("Client").Create(model).Error; err != nil {
		return err
	}

	appointment.ID = model.ID
	appointment.CreatedAt = model.CreatedAt
	appointment.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*entities.Appointment, error) {
	return r.findOne(ctx, "id = ?", id)
}

// FindByIDForClient devolve nil quando o agendamento pertence a outro cliente
func (r *AppointmentRepository) FindByIDForClient(ctx context.Context, id, clientID string) (*entities.Appointment, error) {
	return r.findOne(ctx, "id = ? AND client_id = ?", id, clientID)
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *entities.Appointment) error {
	model := appointmentToModel(appointment)
	if err := r.getDB(ctx).Omit("Client").Save(model).Error; err != nil {
		return err
	}
	appointment.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *AppointmentRepository) ListByClient(ctx context.Context, clientID string) ([]*entities.Appointment, error) {
	return r.list(ctx, r.getDB(ctx).Where("client_id = ?", clientID))
}

func (r *AppointmentRepository) ListAll(ctx context.Context) ([]*entities.Appointment, error) {
	return r.list(ctx, r.getDB(ctx))
}

func (r *AppointmentRepository) list(_ context.Context, query *gorm.DB) ([]*entities.Appointment, error) {
	var models []*AppointmentModel

	if err := query.Preload("Client").Order("scheduled_time ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	result := make([]*entities.Appointment, 0, len(models))
	for _, model := range models {
		result = append(result, appointmentToEntity(model))
	}
	return result, nil
}

func (r *AppointmentRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.Appointment, error) {
	var model AppointmentModel

	if err := r.getDB(ctx).Preload("Client").Where(query, args...).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return appointmentToEntity(&model), nil
}

func (r *AppointmentRepository) getDB(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// Conversores
func appointmentToModel(a *entities.Appointment) *AppointmentModel {
	var sign *string
	if a.ZodiacSign != nil {
		s := a.ZodiacSign.String()
		sign = &s
	}

	return &AppointmentModel{
		BaseModel: BaseModel{
			ID:        a.ID,
			CreatedAt: a.CreatedAt,
			UpdatedAt: a.UpdatedAt,
		},
		ClientID:         a.ClientID,
		ConsultationType: string(a.ConsultationType),
		ScheduledTime:    a.ScheduledTime.UTC(),
		ZodiacSign:       sign,
		Status:           string(a.Status),
		Notes:            a.Notes,
		PreferredMethod:  string(a.PreferredMethod),
		MeetingLink:      a.MeetingLink,
		Price:            a.Price,
		Duration:         a.Duration,
	}
}

func appointmentToEntity(model *AppointmentModel) *entities.Appointment {
	var sign *entities.ZodiacSign
	if model.ZodiacSign != nil {
		s := entities.ZodiacSign(*model.ZodiacSign)
		sign = &s
	}

	appointment := &entities.Appointment{
		ID:               model.ID,
		ClientID:         model.ClientID,
		ConsultationType: entities.ConsultationType(model.ConsultationType),
		ScheduledTime:    model.ScheduledTime,
		ZodiacSign:       sign,
		Status:           entities.AppointmentStatus(model.Status),
		Notes:            model.Notes,
		PreferredMethod:  entities.ContactMethod(model.PreferredMethod),
		MeetingLink:      model.MeetingLink,
		Price:            model.Price,
		Duration:         model.Duration,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}

	if model.Client != nil {
		appointment.Client = &entities.AppointmentClient{
			FirstName: model.Client.FirstName,
			LastName:  model.Client.LastName,
			Email:     model.Client.Email,
			Username:  model.Client.Username,
		}
	}

	return appointment
}
