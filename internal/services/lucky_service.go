package services

import (
	"slices"
	"strconv"
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/catalog"
	"github.com/rafabene/kundlivision-backend/internal/domain/errors"
)

// LuckyMethod define como os números da sorte são gerados
type LuckyMethod string

const (
	LuckyByZodiac    LuckyMethod = "zodiac"
	LuckyByBirthdate LuckyMethod = "birthdate"
	LuckyRandom      LuckyMethod = "random"
)

var (
	birthdateColors = []string{"Blue", "Green", "Purple"}
	randomColors    = []string{"Red", "Blue", "Green", "Yellow", "Purple", "Orange"}
)

// LuckyInput traz o método e o dado exigido por ele
type LuckyInput struct {
	Method     LuckyMethod
	ZodiacSign string
	BirthDate  *time.Time
}

// LuckyResult é a resposta do gerador
type LuckyResult struct {
	Numbers      []int
	Colors       []string
	Description  string
	TodaySpecial int
}

// LuckyService gera números e cores da sorte
type LuckyService struct {
	catalog *catalog.Catalog
	rand    Randomizer
}

func NewLuckyService(c *catalog.Catalog, rnd Randomizer) *LuckyService {
	if rnd == nil {
		rnd = DefaultRandomizer()
	}
	return &LuckyService{catalog: c, rand: rnd}
}

// Generate aplica o método pedido; todo resultado traz um número especial do dia
func (s *LuckyService) Generate(input LuckyInput) (*LuckyResult, error) {
	var result *LuckyResult

	switch input.Method {
	case LuckyByZodiac:
		profile, ok := s.catalog.Profile(input.ZodiacSign)
		if !ok {
			return nil, errors.Invalid("zodiacSign", errors.ErrInvalidZodiacSign)
		}
		result = &LuckyResult{
			Numbers:     slices.Clone(profile.LuckyNumbers),
			Colors:      slices.Clone(profile.LuckyColors),
			Description: "Based on your zodiac sign " + profile.Name + ", these numbers and colors carry special significance and positive energy for you.",
		}
	case LuckyByBirthdate:
		if input.BirthDate == nil {
			return nil, errors.Invalid("birthDate", errors.ErrInvalidLuckyMethod)
		}
		result = &LuckyResult{
			Numbers:     BirthdateNumbers(*input.BirthDate),
			Colors:      slices.Clone(birthdateColors),
			Description: "Based on your birth date, these numbers are calculated using numerological principles and carry personal significance for you.",
		}
	case LuckyRandom:
		result = &LuckyResult{
			Numbers:     s.randomNumbers(6, 49),
			Colors:      s.randomColors(3),
			Description: "These randomly generated numbers and colors are infused with cosmic energy for today.",
		}
	default:
		return nil, errors.Invalid("method", errors.ErrInvalidLuckyMethod)
	}

	result.TodaySpecial = s.rand.IntN(99) + 1
	return result, nil
}

// LifePathNumber soma os dígitos até um dígito, preservando 11, 22 e 33
func LifePathNumber(day, month, year int) int {
	n := day + month + year
	for n > 9 && n != 11 && n != 22 && n != 33 {
		n = digitSum(n)
	}
	return n
}

// BirthdateNumbers deriva os números da data, sem repetições e na ordem de origem
func BirthdateNumbers(birth time.Time) []int {
	day, month, year := birth.Day(), int(birth.Month()), birth.Year()

	candidates := []int{
		LifePathNumber(day, month, year),
		day,
		month,
		(day+month)%31 + 1,
		(year%100)%31 + 1,
	}

	numbers := make([]int, 0, len(candidates))
	for _, n := range candidates {
		if !slices.Contains(numbers, n) {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

func digitSum(n int) int {
	sum := 0
	for _, r := range strconv.Itoa(n) {
		sum += int(r - '0')
	}
	return sum
}

// randomNumbers sorteia count números distintos em [1, upper], em ordem crescente
func (s *LuckyService) randomNumbers(count, upper int) []int {
	numbers := make([]int, 0, count)
	for len(numbers) < count {
		n := s.rand.IntN(upper) + 1
		if !slices.Contains(numbers, n) {
			numbers = append(numbers, n)
		}
	}
	slices.Sort(numbers)
	return numbers
}

func (s *LuckyService) randomColors(count int) []string {
	colors := slices.Clone(randomColors)
	s.rand.Shuffle(len(colors), func(i, j int) { colors[i], colors[j] = colors[j], colors[i] })
	return colors[:count]
}
