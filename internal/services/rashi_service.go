package services

import (
	"context"
	"strings"

	"github.com/rafabene/kundlivision-backend/internal/domain/catalog"
	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
)

// RashiService mantém a tabela de referência dos signos
type RashiService struct {
	repo   repositories.RashiRepository
	uow    ports.UnitOfWork
	logger ports.Logger
}

func NewRashiService(repo repositories.RashiRepository, uow ports.UnitOfWork, logger ports.Logger) *RashiService {
	return &RashiService{repo: repo, uow: uow, logger: logger}
}

// UpsertRashiInput representa todos os campos editáveis de um Rashi
type UpsertRashiInput struct {
	Name          string
	Description   string
	Element       string
	RulingPlanet  string
	Traits        []string
	LuckyNumbers  []int
	LuckyColors   []string
	Compatibility []string
	Dates         string
	Symbol        string
}

func (s *RashiService) List(ctx context.Context) ([]*entities.Rashi, error) {
	return s.repo.List(ctx)
}

// Get aceita o nome em qualquer caixa
func (s *RashiService) Get(ctx context.Context, name string) (*entities.Rashi, error) {
	sign, ok := entities.ParseZodiacSign(name)
	if !ok {
		return nil, errors.ErrRashiNotFound
	}

	rashi, err := s.repo.FindByName(ctx, sign)
	if err != nil {
		return nil, err
	}
	if rashi == nil {
		return nil, errors.ErrRashiNotFound
	}
	return rashi, nil
}

// Upsert cria ou atualiza pelo nome; created indica se a linha é nova
func (s *RashiService) Upsert(ctx context.Context, input UpsertRashiInput) (*entities.Rashi, bool, error) {
	sign, ok := entities.ParseZodiacSign(input.Name)
	if !ok {
		return nil, false, errors.Invalid("name", errors.ErrInvalidZodiacSign)
	}
	element, ok := entities.ParseElement(input.Element)
	if !ok {
		return nil, false, errors.Invalid("element", errors.ErrInvalidElement)
	}

	var (
		result  *entities.Rashi
		created bool
	)

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		rashi, err := s.repo.FindByName(txCtx, sign)
		if err != nil {
			return err
		}

		if rashi == nil {
			rashi = &entities.Rashi{Name: sign}
			created = true
		}

		rashi.Description = input.Description
		rashi.Element = element
		rashi.RulingPlanet = input.RulingPlanet
		rashi.Traits = input.Traits
		rashi.LuckyNumbers = input.LuckyNumbers
		rashi.LuckyColors = input.LuckyColors
		rashi.Compatibility = lowerAll(input.Compatibility)
		rashi.Dates = input.Dates
		rashi.Symbol = input.Symbol

		if created {
			err = s.repo.Create(txCtx, rashi)
		} else {
			err = s.repo.Update(txCtx, rashi)
		}
		if err != nil {
			return err
		}

		result = rashi
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	s.logger.Info("rashi upserted", "name", sign, "created", created)
	return result, created, nil
}

// seedCompatibilityThreshold é a nota mínima para um signo entrar na lista de compatíveis
const seedCompatibilityThreshold = 80

// Seed cria ou atualiza os 12 Rashis a partir do catálogo embutido
func (s *RashiService) Seed(ctx context.Context, c *catalog.Catalog) (int, error) {
	count := 0
	for _, profile := range c.Profiles() {
		var compatible []string
		for _, other := range entities.ZodiacSigns {
			if other != profile.Sign() && c.Compatibility(profile.Sign(), other) >= seedCompatibilityThreshold {
				compatible = append(compatible, other.String())
			}
		}

		_, _, err := s.Upsert(ctx, UpsertRashiInput{
			Name:          profile.Name,
			Description:   profile.Description,
			Element:       profile.Element,
			RulingPlanet:  profile.Planet,
			Traits:        profile.Traits,
			LuckyNumbers:  profile.LuckyNumbers,
			LuckyColors:   profile.LuckyColors,
			Compatibility: compatible,
			Dates:         profile.Dates,
			Symbol:        profile.Symbol,
		})
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func lowerAll(values []string) []string {
	if values == nil {
		return []string{}
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}
