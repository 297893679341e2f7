// Package catalogdata lê o catálogo de referência embutido no binário.
package catalogdata

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rafabene/kundlivision-backend/internal/domain/catalog"
)

//go:embed zodiac.yaml
var embedded []byte

type fileFormat struct {
	Signs []struct {
		Name         string   `yaml:"name"`
		Symbol       string   `yaml:"symbol"`
		Dates        string   `yaml:"dates"`
		Element      string   `yaml:"element"`
		Planet       string   `yaml:"planet"`
		Description  string   `yaml:"description"`
		Traits       []string `yaml:"traits"`
		LuckyNumbers []int    `yaml:"luckyNumbers"`
		LuckyColors  []string `yaml:"luckyColors"`
	} `yaml:"signs"`
	Compatibility map[string]map[string]int `yaml:"compatibility"`
	Consultations map[string]struct {
		Price    string `yaml:"price"`
		Duration int    `yaml:"duration"`
	} `yaml:"consultations"`
	Tarot struct {
		Deck []struct {
			Name     string `yaml:"name"`
			Meaning  string `yaml:"meaning"`
			Reversed string `yaml:"reversed"`
		} `yaml:"deck"`
		Spreads []struct {
			Key       string   `yaml:"key"`
			Name      string   `yaml:"name"`
			Positions []string `yaml:"positions"`
		} `yaml:"spreads"`
	} `yaml:"tarot"`
}

// Load monta o catálogo a partir do YAML embutido
func Load() (*catalog.Catalog, error) {
	return Parse(embedded)
}

// LoadFile permite sobrescrever o catálogo com um arquivo externo
func LoadFile(path string) (*catalog.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(raw)
}

// Parse decodifica e valida um documento do catálogo
func Parse(raw []byte) (*catalog.Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	data := catalog.Data{
		Compatibility: f.Compatibility,
		Consultations: make(map[string]catalog.ConsultationTerms, len(f.Consultations)),
	}

	for _, s := range f.Signs {
		data.Profiles = append(data.Profiles, catalog.ZodiacProfile{
			Name:         s.Name,
			Symbol:       s.Symbol,
			Dates:        s.Dates,
			Element:      s.Element,
			Planet:       s.Planet,
			Description:  s.Description,
			Traits:       s.Traits,
			LuckyNumbers: s.LuckyNumbers,
			LuckyColors:  s.LuckyColors,
		})
	}

	for name, c := range f.Consultations {
		price, err := decimal.NewFromString(c.Price)
		if err != nil {
			return nil, fmt.Errorf("consultation %s: invalid price %q: %w", name, c.Price, err)
		}
		data.Consultations[name] = catalog.ConsultationTerms{Price: price, Duration: c.Duration}
	}

	for _, card := range f.Tarot.Deck {
		data.Deck = append(data.Deck, catalog.TarotCard{Name: card.Name, Meaning: card.Meaning, Reversed: card.Reversed})
	}
	for _, s := range f.Tarot.Spreads {
		data.Spreads = append(data.Spreads, catalog.TarotSpread{Key: s.Key, Name: s.Name, Positions: s.Positions})
	}

	return catalog.New(data)
}
