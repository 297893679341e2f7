package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
	"github.com/rafabene/kundlivision-backend/internal/services"
	"github.com/rafabene/kundlivision-backend/internal/testutil"
)

var _ = Describe("HoroscopeService", func() {
	var (
		f     *fixture
		cache *memoryCache
		svc   *services.HoroscopeService
		ctx   context.Context
		today time.Time
	)

	BeforeEach(func() {
		f = newFixture()
		cache = newMemoryCache()
		today = time.Date(2026, time.March, 21, 0, 0, 0, 0, time.UTC)
		svc = services.NewHoroscopeService(f.horoscopes, cache, f.events, f.logger,
			testutil.FixedClock(today.Add(15*time.Hour)))
		ctx = context.Background()
	})

	create := func(sign, kind string, date time.Time) *entities.Horoscope {
		h, err := svc.Create(ctx, services.CreateHoroscopeInput{
			ZodiacSign: sign, Type: kind, Content: "The stars align for " + sign, Date: date,
		})
		Expect(err).NotTo(HaveOccurred())
		return h
	}

	Describe("Create", func() {
		It("normaliza signo e tipo e publica no feed", func() {
			h := create("Aries", "DAILY", today)
			Expect(h.ID).NotTo(BeEmpty())
			Expect(h.ZodiacSign).To(Equal(entities.Aries))
			Expect(h.Type).To(Equal(entities.HoroscopeDaily))

			events := f.events.Events()
			Expect(events).To(HaveLen(1))
			Expect(events[0].Name).To(Equal(ports.EventHoroscopeCreated))
		})

		It("aceita duplicatas de signo, tipo e data", func() {
			create("aries", "daily", today)
			create("aries", "daily", today)

			list, err := svc.List(ctx, repositories.HoroscopeFilters{ZodiacSign: ptr("aries")})
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})

		DescribeTable("rejeita entradas inválidas",
			func(sign, kind string, date time.Time, want error) {
				_, err := svc.Create(ctx, services.CreateHoroscopeInput{
					ZodiacSign: sign, Type: kind, Content: "x", Date: date,
				})
				Expect(err).To(MatchError(want))
				var domainErr *domainerrors.DomainError
				Expect(err).To(BeAssignableToTypeOf(domainErr))
			},
			Entry("signo desconhecido", "ophiuchus", "daily", time.Now(), domainerrors.ErrInvalidZodiacSign),
			Entry("tipo desconhecido", "aries", "hourly", time.Now(), domainerrors.ErrInvalidHoroscopeType),
			Entry("data vazia", "aries", "daily", time.Time{}, domainerrors.ErrInvalidDate),
		)
	})

	Describe("Today", func() {
		It("retorna apenas os diários de hoje, ordenados por signo, com duplicatas", func() {
			create("leo", "daily", today)
			create("aries", "daily", today)
			create("aries", "daily", today)
			create("aries", "weekly", today)
			create("taurus", "daily", today.AddDate(0, 0, -1))

			list, err := svc.Today(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(3))
			Expect(list[0].ZodiacSign).To(Equal(entities.Aries))
			Expect(list[1].ZodiacSign).To(Equal(entities.Aries))
			Expect(list[2].ZodiacSign).To(Equal(entities.Leo))
		})

		It("usa o cache até uma escrita invalidá-lo", func() {
			create("aries", "daily", today)

			_, err := svc.Today(ctx)
			Expect(err).NotTo(HaveOccurred())
			list, err := svc.Today(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(1))
			Expect(cache.hits).To(Equal(1))

			create("leo", "daily", today)
			list, err = svc.Today(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(list).To(HaveLen(2))
		})
	})

	Describe("Update", func() {
		It("aplica apenas os campos enviados", func() {
			h := create("aries", "daily", today)
			mood := "Calm"

			updated, err := svc.Update(ctx, h.ID, entities.HoroscopePatch{Mood: &mood})
			Expect(err).NotTo(HaveOccurred())
			Expect(*updated.Mood).To(Equal("Calm"))
			Expect(updated.Content).To(Equal(h.Content))
			Expect(cache.invalidations).To(Equal(2))
		})

		It("retorna não encontrado para id desconhecido", func() {
			_, err := svc.Update(ctx, "missing", entities.HoroscopePatch{})
			Expect(err).To(MatchError(domainerrors.ErrHoroscopeNotFound))
		})
	})

	Describe("Delete", func() {
		It("remove de forma definitiva", func() {
			h := create("aries", "daily", today)
			Expect(svc.Delete(ctx, h.ID)).To(Succeed())

			found, err := f.horoscopes.FindByID(ctx, h.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
			Expect(svc.Delete(ctx, h.ID)).To(MatchError(domainerrors.ErrHoroscopeNotFound))
		})
	})
})
