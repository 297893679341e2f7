package repositories

import (
	"context"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// RashiRepository define a interface para a tabela de referência de signos
type RashiRepository interface {
	Create(ctx context.Context, rashi *entities.Rashi) error
	Update(ctx context.Context, rashi *entities.Rashi) error
	FindByName(ctx context.Context, name entities.ZodiacSign) (*entities.Rashi, error)
	// FindByNames é a busca secundária usada para anexar Rashi aos agendamentos
	FindByNames(ctx context.Context, names []entities.ZodiacSign) (map[entities.ZodiacSign]*entities.Rashi, error)
	List(ctx context.Context) ([]*entities.Rashi, error)
}
