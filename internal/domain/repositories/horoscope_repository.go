package repositories

import (
	"context"
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// HoroscopeRepository define a interface para persistência de horóscopos
type HoroscopeRepository interface {
	Create(ctx context.Context, horoscope *entities.Horoscope) error
	FindByID(ctx context.Context, id string) (*entities.Horoscope, error)
	Update(ctx context.Context, horoscope *entities.Horoscope) error
	Delete(ctx context.Context, id string) error
	// List filtra por igualdade e ordena por data decrescente
	List(ctx context.Context, filters HoroscopeFilters) ([]*entities.Horoscope, error)
	// ListForDate retorna os horóscopos de um tipo e data, ordenados por signo
	ListForDate(ctx context.Context, horoscopeType entities.HoroscopeType, date time.Time) ([]*entities.Horoscope, error)
}

// HoroscopeFilters contém filtros de igualdade opcionais
type HoroscopeFilters struct {
	ZodiacSign *string
	Type       *string
	Date       *time.Time
}
