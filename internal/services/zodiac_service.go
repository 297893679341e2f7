package services

import (
	"github.com/rafabene/kundlivision-backend/internal/domain/catalog"
	"github.com/rafabene/kundlivision-backend/internal/domain/errors"
)

// ZodiacService responde consultas ao catálogo estático
type ZodiacService struct {
	catalog *catalog.Catalog
}

func NewZodiacService(c *catalog.Catalog) *ZodiacService {
	return &ZodiacService{catalog: c}
}

// CompatibilityResult é a nota do par com a descrição da faixa
type CompatibilityResult struct {
	Sign1         string
	Sign2         string
	Compatibility int
	Description   string
}

func (s *ZodiacService) List() []catalog.ZodiacProfile {
	return s.catalog.Profiles()
}

func (s *ZodiacService) Get(name string) (catalog.ZodiacProfile, error) {
	profile, ok := s.catalog.Profile(name)
	if !ok {
		return catalog.ZodiacProfile{}, errors.ErrZodiacSignNotFound
	}
	return profile, nil
}

// Compatibility é simétrica; pares fora da matriz valem o padrão
func (s *ZodiacService) Compatibility(sign1, sign2 string) (*CompatibilityResult, error) {
	first, ok1 := s.catalog.Profile(sign1)
	second, ok2 := s.catalog.Profile(sign2)
	if !ok1 || !ok2 {
		return nil, errors.ErrInvalidZodiacSign
	}

	score := s.catalog.Compatibility(first.Sign(), second.Sign())

	return &CompatibilityResult{
		Sign1:         first.Name,
		Sign2:         second.Name,
		Compatibility: score,
		Description:   catalog.CompatibilityDescription(score),
	}, nil
}
