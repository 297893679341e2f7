package ports

import (
	"context"
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// HoroscopeCache guarda a lista de horóscopos diários de um dia.
// Um miss retorna (nil, false, nil).
type HoroscopeCache interface {
	GetDaily(ctx context.Context, day time.Time) ([]*entities.Horoscope, bool, error)
	SetDaily(ctx context.Context, day time.Time, horoscopes []*entities.Horoscope) error
	Invalidate(ctx context.Context) error
}
