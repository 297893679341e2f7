package dto

import (
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/catalog"
	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

// ZodiacResponse é a ficha pública de um signo
type ZodiacResponse struct {
	Name         string   `json:"name"`
	Symbol       string   `json:"symbol"`
	Dates        string   `json:"dates"`
	Element      string   `json:"element"`
	Planet       string   `json:"planet"`
	Description  string   `json:"description"`
	Traits       []string `json:"traits"`
	LuckyNumbers []int    `json:"luckyNumbers"`
	LuckyColors  []string `json:"luckyColors"`
}

// CompatibilityResponse é a nota do par com a descrição da faixa
type CompatibilityResponse struct {
	Sign1         string `json:"sign1"`
	Sign2         string `json:"sign2"`
	Compatibility int    `json:"compatibility"`
	Description   string `json:"description"`
}

func ToZodiacResponse(p catalog.ZodiacProfile) ZodiacResponse {
	return ZodiacResponse{
		Name:         p.Name,
		Symbol:       p.Symbol,
		Dates:        p.Dates,
		Element:      p.Element,
		Planet:       p.Planet,
		Description:  p.Description,
		Traits:       p.Traits,
		LuckyNumbers: p.LuckyNumbers,
		LuckyColors:  p.LuckyColors,
	}
}

func ToZodiacResponses(list []catalog.ZodiacProfile) []ZodiacResponse {
	responses := make([]ZodiacResponse, len(list))
	for i, p := range list {
		responses[i] = ToZodiacResponse(p)
	}
	return responses
}

func ToCompatibilityResponse(r *services.CompatibilityResult) CompatibilityResponse {
	return CompatibilityResponse(*r)
}

// UpsertRashiRequest traz todos os campos editáveis de um Rashi
type UpsertRashiRequest struct {
	Name          string   `json:"name" binding:"required,zodiacsign"`
	Description   string   `json:"description" binding:"required"`
	Element       string   `json:"element" binding:"required,element"`
	RulingPlanet  string   `json:"rulingPlanet" binding:"required"`
	Traits        []string `json:"traits"`
	LuckyNumbers  []int    `json:"luckyNumbers"`
	LuckyColors   []string `json:"luckyColors"`
	Compatibility []string `json:"compatibility"`
	Dates         string   `json:"dates" binding:"required"`
	Symbol        string   `json:"symbol" binding:"required"`
}

// RashiResponse representa a resposta de um Rashi
type RashiResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Element       string    `json:"element"`
	RulingPlanet  string    `json:"rulingPlanet"`
	Traits        []string  `json:"traits"`
	LuckyNumbers  []int     `json:"luckyNumbers"`
	LuckyColors   []string  `json:"luckyColors"`
	Compatibility []string  `json:"compatibility"`
	Dates         string    `json:"dates"`
	Symbol        string    `json:"symbol"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RashiEnvelope é a resposta do upsert
type RashiEnvelope struct {
	Message string        `json:"message"`
	Rashi   RashiResponse `json:"rashi"`
}

func (r UpsertRashiRequest) ToInput() services.UpsertRashiInput {
	return services.UpsertRashiInput{
		Name:          r.Name,
		Description:   r.Description,
		Element:       r.Element,
		RulingPlanet:  r.RulingPlanet,
		Traits:        r.Traits,
		LuckyNumbers:  r.LuckyNumbers,
		LuckyColors:   r.LuckyColors,
		Compatibility: r.Compatibility,
		Dates:         r.Dates,
		Symbol:        r.Symbol,
	}
}

func ToRashiResponse(r *entities.Rashi) RashiResponse {
	return RashiResponse{
		ID:            r.ID,
		Name:          string(r.Name),
		Description:   r.Description,
		Element:       string(r.Element),
		RulingPlanet:  r.RulingPlanet,
		Traits:        nonNil(r.Traits),
		LuckyNumbers:  nonNil(r.LuckyNumbers),
		LuckyColors:   nonNil(r.LuckyColors),
		Compatibility: nonNil(r.Compatibility),
		Dates:         r.Dates,
		Symbol:        r.Symbol,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func ToRashiResponses(list []*entities.Rashi) []RashiResponse {
	responses := make([]RashiResponse, len(list))
	for i, r := range list {
		responses[i] = ToRashiResponse(r)
	}
	return responses
}

// LuckyRequest escolhe o método e traz o dado exigido por ele
type LuckyRequest struct {
	Method     string  `json:"method" binding:"required,oneof=zodiac birthdate random"`
	ZodiacSign string  `json:"zodiacSign" binding:"omitempty,zodiacsign"`
	BirthDate  *string `json:"birthDate" binding:"omitempty,isodate"`
}

// LuckyResponse é o resultado do gerador
type LuckyResponse struct {
	Numbers      []int    `json:"numbers"`
	Colors       []string `json:"colors"`
	Description  string   `json:"description"`
	TodaySpecial int      `json:"todaySpecial"`
}

func ToLuckyResponse(r *services.LuckyResult) LuckyResponse {
	return LuckyResponse(*r)
}

// TarotSpreadResponse descreve uma tiragem disponível
type TarotSpreadResponse struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Count     int      `json:"count"`
	Positions []string `json:"positions"`
}

// TarotCardResponse é uma carta posicionada
type TarotCardResponse struct {
	Name            string `json:"name"`
	Meaning         string `json:"meaning"`
	ReversedMeaning string `json:"reversedMeaning"`
	Position        string `json:"position"`
	IsReversed      bool   `json:"isReversed"`
}

// TarotReadingResponse é o resultado de uma tiragem
type TarotReadingResponse struct {
	Spread TarotSpreadResponse `json:"spread"`
	Cards  []TarotCardResponse `json:"cards"`
}

func ToTarotSpreadResponse(s catalog.TarotSpread) TarotSpreadResponse {
	return TarotSpreadResponse{Key: s.Key, Name: s.Name, Count: s.Count(), Positions: s.Positions}
}

func ToTarotSpreadResponses(list []catalog.TarotSpread) []TarotSpreadResponse {
	responses := make([]TarotSpreadResponse, len(list))
	for i, s := range list {
		responses[i] = ToTarotSpreadResponse(s)
	}
	return responses
}

func ToTarotReadingResponse(r *services.Reading) TarotReadingResponse {
	cards := make([]TarotCardResponse, len(r.Cards))
	for i, card := range r.Cards {
		cards[i] = TarotCardResponse{
			Name:            card.Name,
			Meaning:         card.Meaning,
			ReversedMeaning: card.Reversed,
			Position:        card.Position,
			IsReversed:      card.IsReversed,
		}
	}
	return TarotReadingResponse{Spread: ToTarotSpreadResponse(r.Spread), Cards: cards}
}

func nonNil[T any](values []T) []T {
	if values == nil {
		return []T{}
	}
	return values
}
