package services_test

import (
	"context"
	"math/rand/v2"
	"slices"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

var _ = Describe("ZodiacService", func() {
	var svc *services.ZodiacService

	BeforeEach(func() {
		svc = services.NewZodiacService(newFixture().catalog)
	})

	It("lista os doze signos", func() {
		Expect(svc.List()).To(HaveLen(12))
	})

	It("busca sem diferenciar caixa", func() {
		profile, err := svc.Get("SCORPIO")
		Expect(err).NotTo(HaveOccurred())
		Expect(profile.Name).To(Equal("Scorpio"))

		_, err = svc.Get("ophiuchus")
		Expect(err).To(MatchError(domainerrors.ErrZodiacSignNotFound))
	})

	It("a compatibilidade é simétrica", func() {
		for _, a := range entities.ZodiacSigns {
			for _, b := range entities.ZodiacSigns {
				ab, err := svc.Compatibility(a.String(), b.String())
				Expect(err).NotTo(HaveOccurred())
				ba, err := svc.Compatibility(b.String(), a.String())
				Expect(err).NotTo(HaveOccurred())
				Expect(ab.Compatibility).To(Equal(ba.Compatibility), "%s/%s", a, b)
			}
		}
	})

	DescribeTable("descrição por faixa",
		func(a, b string, score int, prefix string) {
			result, err := svc.Compatibility(a, b)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Compatibility).To(Equal(score))
			Expect(result.Description).To(HavePrefix(prefix))
		},
		Entry("excelente", "aries", "leo", 93, "Excellent match!"),
		Entry("ótima", "gemini", "aries", 83, "Great compatibility!"),
		Entry("boa", "aries", "aquarius", 78, "Good match"),
		Entry("moderada", "libra", "aries", 64, "Moderate compatibility."),
		Entry("média", "aries", "scorpio", 52, "Average compatibility."),
		Entry("desafiadora", "taurus", "aries", 38, "Challenging match."),
		Entry("par fora da matriz", "gemini", "capricorn", 50, "Average compatibility."),
	)

	It("rejeita signo desconhecido", func() {
		_, err := svc.Compatibility("aries", "dragon")
		Expect(err).To(MatchError(domainerrors.ErrInvalidZodiacSign))
	})
})

var _ = Describe("RashiService", func() {
	var (
		f   *fixture
		svc *services.RashiService
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		svc = services.NewRashiService(f.rashis, f.uow, f.logger)
		ctx = context.Background()
	})

	input := func(description string) services.UpsertRashiInput {
		return services.UpsertRashiInput{
			Name: "Aries", Description: description, Element: "fire", RulingPlanet: "Mars",
			Traits: []string{"Bold"}, LuckyNumbers: []int{1, 9}, LuckyColors: []string{"Red"},
			Compatibility: []string{"Leo", " Sagittarius "}, Dates: "March 21 - April 19", Symbol: "♈",
		}
	}

	It("cria na primeira vez e atualiza na segunda", func() {
		first, created, err := svc.Upsert(ctx, input("first"))
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeTrue())
		Expect(first.Compatibility).To(Equal([]string{"leo", "sagittarius"}))

		second, created, err := svc.Upsert(ctx, input("second"))
		Expect(err).NotTo(HaveOccurred())
		Expect(created).To(BeFalse())
		Expect(second.ID).To(Equal(first.ID))

		stored, err := svc.Get(ctx, "ARIES")
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Description).To(Equal("second"))
	})

	It("rejeita nome e elemento inválidos", func() {
		bad := input("x")
		bad.Name = "dragon"
		_, _, err := svc.Upsert(ctx, bad)
		Expect(err).To(MatchError(domainerrors.ErrInvalidZodiacSign))

		bad = input("x")
		bad.Element = "metal"
		_, _, err = svc.Upsert(ctx, bad)
		Expect(err).To(MatchError(domainerrors.ErrInvalidElement))
	})

	It("Get retorna não encontrado antes do seed", func() {
		_, err := svc.Get(ctx, "aries")
		Expect(err).To(MatchError(domainerrors.ErrRashiNotFound))
		_, err = svc.Get(ctx, "dragon")
		Expect(err).To(MatchError(domainerrors.ErrRashiNotFound))
	})

	It("Seed grava os doze signos e é idempotente", func() {
		count, err := svc.Seed(ctx, f.catalog)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(12))

		_, err = svc.Seed(ctx, f.catalog)
		Expect(err).NotTo(HaveOccurred())

		list, err := svc.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(12))

		aries, err := svc.Get(ctx, "aries")
		Expect(err).NotTo(HaveOccurred())
		Expect(aries.Compatibility).To(ConsistOf("leo", "sagittarius", "gemini"))
	})
})

var _ = Describe("LuckyService", func() {
	var svc *services.LuckyService

	BeforeEach(func() {
		svc = services.NewLuckyService(newFixture().catalog, rand.New(rand.NewPCG(1, 2)))
	})

	DescribeTable("LifePathNumber",
		func(day, month, year, want int) {
			Expect(services.LifePathNumber(day, month, year)).To(Equal(want))
		},
		Entry("reduz a um dígito", 15, 6, 1990, 4),
		Entry("reduz em mais de uma rodada", 1, 1, 1997, 1),
		Entry("preserva 11", 1, 1, 2007, 11),
		Entry("preserva 22", 1, 1, 1991, 22),
	)

	It("números da data não se repetem", func() {
		numbers := services.BirthdateNumbers(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
		Expect(numbers).To(Equal([]int{4, 1, 3}))
	})

	It("método zodiac usa o catálogo", func() {
		result, err := svc.Generate(services.LuckyInput{Method: services.LuckyByZodiac, ZodiacSign: "aries"})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Numbers).To(Equal([]int{1, 8, 17, 26, 35}))
		Expect(result.Colors).To(Equal([]string{"Red", "Orange", "Yellow"}))
		Expect(result.Description).To(ContainSubstring("Aries"))
		Expect(result.TodaySpecial).To(BeNumerically(">=", 1))
		Expect(result.TodaySpecial).To(BeNumerically("<=", 99))
	})

	It("método random sorteia seis números distintos em ordem", func() {
		for range 50 {
			result, err := svc.Generate(services.LuckyInput{Method: services.LuckyRandom})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Numbers).To(HaveLen(6))
			Expect(slices.IsSorted(result.Numbers)).To(BeTrue())
			Expect(slices.Compact(slices.Clone(result.Numbers))).To(HaveLen(6))
			Expect(result.Numbers[0]).To(BeNumerically(">=", 1))
			Expect(result.Numbers[5]).To(BeNumerically("<=", 49))
			Expect(result.Colors).To(HaveLen(3))
		}
	})

	DescribeTable("rejeita entradas inválidas",
		func(input services.LuckyInput, want error) {
			_, err := svc.Generate(input)
			Expect(err).To(MatchError(want))
		},
		Entry("método desconhecido", services.LuckyInput{Method: "tea-leaves"}, domainerrors.ErrInvalidLuckyMethod),
		Entry("signo desconhecido", services.LuckyInput{Method: services.LuckyByZodiac, ZodiacSign: "dragon"}, domainerrors.ErrInvalidZodiacSign),
		Entry("data ausente", services.LuckyInput{Method: services.LuckyByBirthdate}, domainerrors.ErrInvalidLuckyMethod),
	)
})

var _ = Describe("TarotService", func() {
	var svc *services.TarotService

	BeforeEach(func() {
		svc = services.NewTarotService(newFixture().catalog, rand.New(rand.NewPCG(7, 11)))
	})

	It("usa três cartas por padrão", func() {
		reading, err := svc.Draw("")
		Expect(err).NotTo(HaveOccurred())
		Expect(reading.Spread.Key).To(Equal("three-card"))
		Expect(reading.Cards).To(HaveLen(3))
		Expect(reading.Cards[0].Position).To(Equal("Past"))
	})

	It("cada posição recebe uma carta distinta", func() {
		for range 50 {
			reading, err := svc.Draw("celtic-cross")
			Expect(err).NotTo(HaveOccurred())
			Expect(reading.Cards).To(HaveLen(5))

			seen := map[string]bool{}
			for _, card := range reading.Cards {
				Expect(seen).NotTo(HaveKey(card.Name))
				seen[card.Name] = true
			}
		}
	})

	It("não altera o baralho do catálogo", func() {
		f := newFixture()
		before := f.catalog.Deck()
		tarot := services.NewTarotService(f.catalog, rand.New(rand.NewPCG(3, 4)))
		_, err := tarot.Draw("love")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.catalog.Deck()).To(Equal(before))
	})

	It("rejeita tiragem desconhecida", func() {
		_, err := svc.Draw("runes")
		Expect(err).To(MatchError(domainerrors.ErrUnknownSpread))
	})
})
