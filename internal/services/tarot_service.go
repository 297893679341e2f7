package services

import (
	"github.com/rafabene/kundlivision-backend/internal/domain/catalog"
	"github.com/rafabene/kundlivision-backend/internal/domain/errors"
)

const (
	defaultSpread       = "three-card"
	reversedProbability = 0.3
)

// DrawnCard é uma carta posicionada na tiragem
type DrawnCard struct {
	catalog.TarotCard
	Position   string
	IsReversed bool
}

// Reading é o resultado de uma tiragem
type Reading struct {
	Spread catalog.TarotSpread
	Cards  []DrawnCard
}

// TarotService sorteia cartas dos arcanos maiores
type TarotService struct {
	catalog *catalog.Catalog
	rand    Randomizer
}

func NewTarotService(c *catalog.Catalog, rnd Randomizer) *TarotService {
	if rnd == nil {
		rnd = DefaultRandomizer()
	}
	return &TarotService{catalog: c, rand: rnd}
}

func (s *TarotService) Spreads() []catalog.TarotSpread {
	return s.catalog.Spreads()
}

// Draw embaralha o baralho e pega uma carta distinta por posição
func (s *TarotService) Draw(spreadKey string) (*Reading, error) {
	if spreadKey == "" {
		spreadKey = defaultSpread
	}
	spread, ok := s.catalog.Spread(spreadKey)
	if !ok {
		return nil, errors.Invalid("spread", errors.ErrUnknownSpread)
	}

	deck := s.catalog.Deck()
	s.rand.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	cards := make([]DrawnCard, spread.Count())
	for i, position := range spread.Positions {
		cards[i] = DrawnCard{
			TarotCard:  deck[i],
			Position:   position,
			IsReversed: s.rand.Float64() < reversedProbability,
		}
	}

	return &Reading{Spread: spread, Cards: cards}, nil
}
