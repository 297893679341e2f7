// Package catalog guarda os dados de referência carregados uma única vez na
// inicialização: perfis dos signos, matriz de compatibilidade, tabela de preços
// das consultas e o baralho de tarô. Um Catalog é imutável depois de criado.
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// DefaultCompatibility é usado quando o par não está na matriz
const DefaultCompatibility = 50

// ZodiacProfile é a ficha pública de um signo
type ZodiacProfile struct {
	Name         string
	Symbol       string
	Dates        string
	Element      string
	Planet       string
	Description  string
	Traits       []string
	LuckyNumbers []int
	LuckyColors  []string
}

// Sign retorna o signo normalizado do perfil
func (p ZodiacProfile) Sign() entities.ZodiacSign {
	return entities.ZodiacSign(strings.ToLower(p.Name))
}

// ConsultationTerms é o preço e a duração (minutos) de uma consulta
type ConsultationTerms struct {
	Price    decimal.Decimal
	Duration int
}

// TarotCard é uma carta com os significados normal e invertido
type TarotCard struct {
	Name     string
	Meaning  string
	Reversed string
}

// TarotSpread é uma tiragem com posições nomeadas
type TarotSpread struct {
	Key       string
	Name      string
	Positions []string
}

// Count retorna quantas cartas a tiragem usa
func (s TarotSpread) Count() int {
	return len(s.Positions)
}

// Data é a entrada bruta para New
type Data struct {
	Profiles      []ZodiacProfile
	Compatibility map[string]map[string]int
	Consultations map[string]ConsultationTerms
	Deck          []TarotCard
	Spreads       []TarotSpread
}

type pair struct {
	a, b entities.ZodiacSign
}

func newPair(a, b entities.ZodiacSign) pair {
	if b < a {
		a, b = b, a
	}
	return pair{a: a, b: b}
}

// Catalog é a estrutura imutável injetada nos serviços
type Catalog struct {
	profiles      []ZodiacProfile
	bySign        map[entities.ZodiacSign]int
	scores        map[pair]int
	consultations map[entities.ConsultationType]ConsultationTerms
	deck          []TarotCard
	spreads       []TarotSpread
}

// New valida os dados e monta o catálogo
func New(data Data) (*Catalog, error) {
	c := &Catalog{
		bySign:        make(map[entities.ZodiacSign]int, len(data.Profiles)),
		scores:        make(map[pair]int),
		consultations: make(map[entities.ConsultationType]ConsultationTerms, len(data.Consultations)),
	}

	for _, p := range data.Profiles {
		sign, ok := entities.ParseZodiacSign(p.Name)
		if !ok {
			return nil, fmt.Errorf("unknown zodiac sign %q", p.Name)
		}
		if _, dup := c.bySign[sign]; dup {
			return nil, fmt.Errorf("duplicate zodiac sign %q", p.Name)
		}
		c.bySign[sign] = len(c.profiles)
		c.profiles = append(c.profiles, p)
	}
	if len(c.profiles) != len(entities.ZodiacSigns) {
		return nil, fmt.Errorf("expected %d zodiac signs, got %d", len(entities.ZodiacSigns), len(c.profiles))
	}

	for first, row := range data.Compatibility {
		a, ok := entities.ParseZodiacSign(first)
		if !ok {
			return nil, fmt.Errorf("compatibility: unknown sign %q", first)
		}
		for second, score := range row {
			b, ok := entities.ParseZodiacSign(second)
			if !ok {
				return nil, fmt.Errorf("compatibility: unknown sign %q", second)
			}
			if score < 0 || score > 100 {
				return nil, fmt.Errorf("compatibility %s/%s: score %d out of range", a, b, score)
			}
			key := newPair(a, b)
			if prev, seen := c.scores[key]; seen && prev != score {
				return nil, fmt.Errorf("compatibility %s/%s: conflicting scores %d and %d", a, b, prev, score)
			}
			c.scores[key] = score
		}
	}

	for name, terms := range data.Consultations {
		t, ok := entities.ParseConsultationType(name)
		if !ok {
			return nil, fmt.Errorf("unknown consultation type %q", name)
		}
		if terms.Duration <= 0 || !terms.Price.IsPositive() {
			return nil, fmt.Errorf("consultation %s: price and duration must be positive", t)
		}
		c.consultations[t] = terms
	}
	for _, t := range entities.ConsultationTypes {
		if _, ok := c.consultations[t]; !ok {
			return nil, fmt.Errorf("missing terms for consultation type %s", t)
		}
	}

	c.deck = append(c.deck, data.Deck...)
	for _, s := range data.Spreads {
		if s.Count() == 0 || s.Count() > len(c.deck) {
			return nil, fmt.Errorf("spread %s: needs between 1 and %d positions", s.Key, len(c.deck))
		}
		c.spreads = append(c.spreads, s)
	}

	return c, nil
}

// Profiles retorna os 12 perfis na ordem do zodíaco carregada
func (c *Catalog) Profiles() []ZodiacProfile {
	out := make([]ZodiacProfile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// Profile busca um perfil sem diferenciar maiúsculas
func (c *Catalog) Profile(name string) (ZodiacProfile, bool) {
	sign, ok := entities.ParseZodiacSign(name)
	if !ok {
		return ZodiacProfile{}, false
	}
	idx, ok := c.bySign[sign]
	if !ok {
		return ZodiacProfile{}, false
	}
	return c.profiles[idx], true
}

// Compatibility retorna a nota do par em qualquer ordem, ou DefaultCompatibility
func (c *Catalog) Compatibility(a, b entities.ZodiacSign) int {
	if score, ok := c.scores[newPair(a, b)]; ok {
		return score
	}
	return DefaultCompatibility
}

// ConsultationTerms retorna preço e duração da categoria
func (c *Catalog) ConsultationTerms(t entities.ConsultationType) (ConsultationTerms, bool) {
	terms, ok := c.consultations[t]
	return terms, ok
}

// Deck retorna uma cópia do baralho
func (c *Catalog) Deck() []TarotCard {
	out := make([]TarotCard, len(c.deck))
	copy(out, c.deck)
	return out
}

// Spreads retorna as tiragens disponíveis
func (c *Catalog) Spreads() []TarotSpread {
	out := make([]TarotSpread, len(c.spreads))
	copy(out, c.spreads)
	return out
}

// Spread busca uma tiragem pela chave
func (c *Catalog) Spread(key string) (TarotSpread, bool) {
	for _, s := range c.spreads {
		if s.Key == key {
			return s, true
		}
	}
	return TarotSpread{}, false
}

// CompatibilityDescription traduz a nota nas faixas fixas
func CompatibilityDescription(score int) string {
	switch {
	case score >= 90:
		return "Excellent match! You two are made for each other."
	case score >= 80:
		return "Great compatibility! You complement each other well."
	case score >= 70:
		return "Good match with potential for a strong relationship."
	case score >= 60:
		return "Moderate compatibility. Some work needed but promising."
	case score >= 50:
		return "Average compatibility. Requires understanding and compromise."
	default:
		return "Challenging match. Significant differences to work through."
	}
}
