package repositories

import (
	"context"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// AppointmentRepository define a interface para persistência de agendamentos.
// Os métodos de leitura carregam o cliente; Rashi é resolvido à parte pelo nome.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entities.Appointment) error
	FindByID(ctx context.Context, id string) (*entities.Appointment, error)
	FindByIDForClient(ctx context.Context, id, clientID string) (*entities.Appointment, error)
	Update(ctx context.Context, appointment *entities.Appointment) error
	ListByClient(ctx context.Context, clientID string) ([]*entities.Appointment, error)
	ListAll(ctx context.Context) ([]*entities.Appointment, error)
}
