package services

import (
	"context"
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

// HoroscopeService contém a lógica de leitura e administração de horóscopos
type HoroscopeService struct {
	repo   repositories.HoroscopeRepository
	cache  ports.HoroscopeCache
	events ports.EventPublisher
	logger ports.Logger
	now    func() time.Time
}

// NewHoroscopeService cria um novo HoroscopeService; now define o "hoje" do servidor
func NewHoroscopeService(
	repo repositories.HoroscopeRepository,
	cache ports.HoroscopeCache,
	events ports.EventPublisher,
	logger ports.Logger,
	now func() time.Time,
) *HoroscopeService {
	if now == nil {
		now = time.Now
	}
	return &HoroscopeService{
		repo:   repo,
		cache:  cache,
		events: events,
		logger: logger,
		now:    now,
	}
}

// CreateHoroscopeInput representa os dados de um novo horóscopo
type CreateHoroscopeInput struct {
	ZodiacSign    string
	Type          string
	Content       string
	Date          time.Time
	LuckyNumber   *int
	LuckyColor    *string
	Mood          *string
	Compatibility *string
}

// List aplica os filtros de igualdade
func (s *HoroscopeService) List(ctx context.Context, filters repositories.HoroscopeFilters) ([]*entities.Horoscope, error) {
	return s.repo.List(ctx, filters)
}

// Today retorna os horóscopos diários do dia corrente, ordenados por signo
func (s *HoroscopeService) Today(ctx context.Context) ([]*entities.Horoscope, error) {
	day := entities.StartOfDay(s.now())

	cached, hit, err := s.cache.GetDaily(ctx, day)
	if err != nil {
		s.logger.Warn("horoscope cache read failed", "error", err)
	}
	if hit {
		return cached, nil
	}

	horoscopes, err := s.repo.ListForDate(ctx, entities.HoroscopeDaily, day)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetDaily(ctx, day, horoscopes); err != nil {
		s.logger.Warn("horoscope cache write failed", "error", err)
	}

	return horoscopes, nil
}

// Create valida signo, tipo e conteúdo; duplicatas de (signo, tipo, data) são aceitas
func (s *HoroscopeService) Create(ctx context.Context, input CreateHoroscopeInput) (*entities.Horoscope, error) {
	sign, ok := entities.ParseZodiacSign(input.ZodiacSign)
	if !ok {
		return nil, errors.Invalid("zodiacSign", errors.ErrInvalidZodiacSign)
	}
	horoscopeType, ok := entities.ParseHoroscopeType(input.Type)
	if !ok {
		return nil, errors.Invalid("type", errors.ErrInvalidHoroscopeType)
	}
	if input.Date.IsZero() {
		return nil, errors.Invalid("date", errors.ErrInvalidDate)
	}

	horoscope := &entities.Horoscope{
		ZodiacSign:    sign,
		Type:          horoscopeType,
		Content:       input.Content,
		Date:          input.Date,
		LuckyNumber:   input.LuckyNumber,
		LuckyColor:    input.LuckyColor,
		Mood:          input.Mood,
		Compatibility: input.Compatibility,
	}

	if err := s.repo.Create(ctx, horoscope); err != nil {
		return nil, err
	}

	s.logger.Info("horoscope created", "horoscope_id", horoscope.ID, "zodiac_sign", sign, "type", horoscopeType)

	s.invalidate(ctx)
	s.events.Publish(ports.EventHoroscopeCreated, horoscope)

	return horoscope, nil
}

// Update aplica o patch sem revalidar signo e tipo
func (s *HoroscopeService) Update(ctx context.Context, id string, patch entities.HoroscopePatch) (*entities.Horoscope, error) {
	horoscope, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if horoscope == nil {
		return nil, errors.ErrHoroscopeNotFound
	}

	horoscope.Apply(patch)

	if err := s.repo.Update(ctx, horoscope); err != nil {
		return nil, err
	}

	s.logger.Info("horoscope updated", "horoscope_id", id)
	s.invalidate(ctx)

	return horoscope, nil
}

// Delete remove o horóscopo definitivamente
func (s *HoroscopeService) Delete(ctx context.Context, id string) error {
	horoscope, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if horoscope == nil {
		return errors.ErrHoroscopeNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("horoscope deleted", "horoscope_id", id)
	s.invalidate(ctx)

	return nil
}

func (s *HoroscopeService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("horoscope cache invalidation failed", "error", err)
	}
}
