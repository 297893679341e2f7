package dto

import (
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

// CreateHoroscopeRequest representa a criação de um horóscopo
type CreateHoroscopeRequest struct {
	ZodiacSign    string  `json:"zodiacSign" binding:"required,zodiacsign"`
	Type          string  `json:"type" binding:"required,horoscopetype"`
	Content       string  `json:"content" binding:"required"`
	Date          string  `json:"date" binding:"required,isodate"`
	LuckyNumber   *int    `json:"luckyNumber"`
	LuckyColor    *string `json:"luckyColor"`
	Mood          *string `json:"mood"`
	Compatibility *string `json:"compatibility"`
}

// UpdateHoroscopeRequest é um patch parcial; signo e tipo não são revalidados
type UpdateHoroscopeRequest struct {
	ZodiacSign    *string `json:"zodiacSign"`
	Type          *string `json:"type"`
	Content       *string `json:"content"`
	Date          *string `json:"date" binding:"omitempty,isodate"`
	LuckyNumber   *int    `json:"luckyNumber"`
	LuckyColor    *string `json:"luckyColor"`
	Mood          *string `json:"mood"`
	Compatibility *string `json:"compatibility"`
}

// HoroscopeQuery são os filtros de igualdade da listagem
type HoroscopeQuery struct {
	ZodiacSign *string `form:"zodiacSign"`
	Type       *string `form:"type"`
	Date       *string `form:"date" binding:"omitempty,isodate"`
}

// HoroscopeResponse representa a resposta de um horóscopo
type HoroscopeResponse struct {
	ID            string    `json:"id"`
	ZodiacSign    string    `json:"zodiacSign"`
	Type          string    `json:"type"`
	Content       string    `json:"content"`
	Date          time.Time `json:"date"`
	LuckyNumber   *int      `json:"luckyNumber"`
	LuckyColor    *string   `json:"luckyColor"`
	Mood          *string   `json:"mood"`
	Compatibility *string   `json:"compatibility"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToPatch converte o corpo em patch de domínio; a data já foi validada no binding
func (r UpdateHoroscopeRequest) ToPatch() (entities.HoroscopePatch, error) {
	date, err := ParseOptionalDate(r.Date)
	if err != nil {
		return entities.HoroscopePatch{}, err
	}
	return entities.HoroscopePatch{
		ZodiacSign:    r.ZodiacSign,
		Type:          r.Type,
		Content:       r.Content,
		Date:          date,
		LuckyNumber:   r.LuckyNumber,
		LuckyColor:    r.LuckyColor,
		Mood:          r.Mood,
		Compatibility: r.Compatibility,
	}, nil
}

// ToHoroscopeResponse converte uma entidade Horoscope para HoroscopeResponse
func ToHoroscopeResponse(h *entities.Horoscope) HoroscopeResponse {
	return HoroscopeResponse{
		ID:            h.ID,
		ZodiacSign:    string(h.ZodiacSign),
		Type:          string(h.Type),
		Content:       h.Content,
		Date:          h.Date,
		LuckyNumber:   h.LuckyNumber,
		LuckyColor:    h.LuckyColor,
		Mood:          h.Mood,
		Compatibility: h.Compatibility,
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}
}

// ToHoroscopeResponses converte uma lista de entidades Horoscope
func ToHoroscopeResponses(list []*entities.Horoscope) []HoroscopeResponse {
	responses := make([]HoroscopeResponse, len(list))
	for i, h := range list {
		responses[i] = ToHoroscopeResponse(h)
	}
	return responses
}
