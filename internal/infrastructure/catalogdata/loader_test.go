package catalogdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rafabene/kundlivision-backend/internal/domain/catalog"
	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("catálogo embutido inválido: %v", err)
	}

	if got := len(c.Profiles()); got != 12 {
		t.Errorf("esperava 12 signos, obteve %d", got)
	}

	leo, ok := c.Profile("LEO")
	if !ok || leo.Symbol != "♌" || leo.Element != "Fire" {
		t.Errorf("perfil de leo inesperado: %+v", leo)
	}

	aries, _ := c.Profile("aries")
	if len(aries.LuckyNumbers) != 5 || aries.LuckyNumbers[0] != 1 || aries.LuckyColors[0] != "Red" {
		t.Errorf("números da sorte de aries inesperados: %+v", aries)
	}

	if len(c.Deck()) != 22 {
		t.Errorf("esperava 22 arcanos maiores, obteve %d", len(c.Deck()))
	}

	spreads := map[string]int{"single-card": 1, "three-card": 3, "love": 3, "celtic-cross": 5}
	for key, count := range spreads {
		s, ok := c.Spread(key)
		if !ok || s.Count() != count {
			t.Errorf("tiragem %s: esperava %d cartas, obteve %+v", key, count, s)
		}
	}
}

func TestConsultationTerms(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		consultation entities.ConsultationType
		price        int64
		duration     int
	}{
		{entities.ConsultationBirthChart, 99, 60},
		{entities.ConsultationCompatibility, 79, 45},
		{entities.ConsultationCareer, 59, 30},
		{entities.ConsultationGeneral, 49, 30},
	}

	for _, tt := range tests {
		t.Run(string(tt.consultation), func(t *testing.T) {
			terms, ok := c.ConsultationTerms(tt.consultation)
			if !ok {
				t.Fatal("termos ausentes")
			}
			if !terms.Price.Equal(decimal.NewFromInt(tt.price)) || terms.Duration != tt.duration {
				t.Errorf("esperava %d/%d, obteve %s/%d", tt.price, tt.duration, terms.Price, terms.Duration)
			}
		})
	}
}

func TestCompatibilityIsSymmetric(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatal(err)
	}

	for _, a := range entities.ZodiacSigns {
		for _, b := range entities.ZodiacSigns {
			if c.Compatibility(a, b) != c.Compatibility(b, a) {
				t.Errorf("%s/%s não é simétrico", a, b)
			}
		}
	}

	if got := c.Compatibility(entities.Leo, entities.Aries); got != 93 {
		t.Errorf("esperava 93 para leo/aries, obteve %d", got)
	}
	if got := c.Compatibility(entities.Gemini, entities.Capricorn); got != catalog.DefaultCompatibility {
		t.Errorf("par ausente deveria valer %d, obteve %d", catalog.DefaultCompatibility, got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"yaml inválido", "signs: ["},
		{"sem signos", "signs: []"},
		{"preço inválido", "consultations:\n  career:\n    price: abc\n    duration: 30\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.doc)); err == nil {
				t.Error("esperava erro")
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zodiac.yaml")
	if err := os.WriteFile(path, embedded, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err != nil {
		t.Errorf("erro inesperado: %v", err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("esperava erro para arquivo inexistente")
	}
}
