package entities

import (
	"strings"
	"time"
)

// HoroscopeType é o período coberto por um horóscopo
type HoroscopeType string

const (
	HoroscopeDaily   HoroscopeType = "daily"
	HoroscopeWeekly  HoroscopeType = "weekly"
	HoroscopeMonthly HoroscopeType = "monthly"
	HoroscopeYearly  HoroscopeType = "yearly"
)

// ParseHoroscopeType normaliza e valida o tipo
func ParseHoroscopeType(name string) (HoroscopeType, bool) {
	t := HoroscopeType(strings.ToLower(strings.TrimSpace(name)))
	switch t {
	case HoroscopeDaily, HoroscopeWeekly, HoroscopeMonthly, HoroscopeYearly:
		return t, true
	}
	return "", false
}

// Horoscope é uma previsão publicada para um signo.
// Não há unicidade em (signo, tipo, data): duplicatas são permitidas.
type Horoscope struct {
	ID            string
	ZodiacSign    ZodiacSign
	Type          HoroscopeType
	Content       string
	Date          time.Time
	LuckyNumber   *int
	LuckyColor    *string
	Mood          *string
	Compatibility *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HoroscopePatch é uma atualização parcial; campos nil não mudam.
// Os valores não são revalidados.
type HoroscopePatch struct {
	ZodiacSign    *string
	Type          *string
	Content       *string
	Date          *time.Time
	LuckyNumber   *int
	LuckyColor    *string
	Mood          *string
	Compatibility *string
}

// Apply aplica o patch ao horóscopo
func (h *Horoscope) Apply(p HoroscopePatch) {
	if p.ZodiacSign != nil {
		h.ZodiacSign = ZodiacSign(*p.ZodiacSign)
	}
	if p.Type != nil {
		h.Type = HoroscopeType(*p.Type)
	}
	if p.Content != nil {
		h.Content = *p.Content
	}
	if p.Date != nil {
		h.Date = *p.Date
	}
	if p.LuckyNumber != nil {
		h.LuckyNumber = p.LuckyNumber
	}
	if p.LuckyColor != nil {
		h.LuckyColor = p.LuckyColor
	}
	if p.Mood != nil {
		h.Mood = p.Mood
	}
	if p.Compatibility != nil {
		h.Compatibility = p.Compatibility
	}
}

// StartOfDay zera o horário mantendo o fuso de t
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
