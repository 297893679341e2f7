package services_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

var _ = Describe("AppointmentService", func() {
	var (
		f      *fixture
		svc    *services.AppointmentService
		ctx    context.Context
		client *entities.User
		when   time.Time
	)

	BeforeEach(func() {
		f = newFixture()
		svc = services.NewAppointmentService(f.appointments, f.rashis, f.catalog, f.notifier, f.logger)
		ctx = context.Background()
		client = f.createUser("seeker", false)
		when = time.Date(2026, time.November, 3, 14, 30, 0, 0, time.UTC)
	})

	book := func(user *entities.User, kind string) *entities.Appointment {
		appointment, err := svc.Book(ctx, user, services.BookInput{ConsultationType: kind, ScheduledTime: when})
		Expect(err).NotTo(HaveOccurred())
		return appointment
	}

	Describe("Book", func() {
		DescribeTable("preço e duração vêm do catálogo",
			func(kind, price string, duration int) {
				appointment := book(client, kind)
				Expect(appointment.Price.StringFixed(2)).To(Equal(price))
				Expect(appointment.Duration).To(Equal(duration))
				Expect(appointment.Status).To(Equal(entities.AppointmentPending))
				Expect(appointment.PreferredMethod).To(Equal(entities.MethodVideo))
			},
			Entry("mapa natal", "birth-chart", "99.00", 60),
			Entry("compatibilidade", "compatibility", "79.00", 45),
			Entry("carreira", "career", "59.00", 30),
			Entry("geral", "general", "49.00", 30),
		)

		It("envia a confirmação ao cliente", func() {
			book(client, "birth-chart")

			sent := f.notifier.Sent()
			Expect(sent).To(HaveLen(1))
			Expect(sent[0].Kind).To(Equal(ports.NotificationAppointmentCreated))
			Expect(sent[0].To).To(Equal("seeker@example.com"))
			Expect(sent[0].Subject).To(Equal("Appointment Confirmation - KundliVision"))
			Expect(sent[0].Data).To(HaveKeyWithValue("Price", "99.00"))
		})

		It("anexa o Rashi do signo informado", func() {
			rashis := services.NewRashiService(f.rashis, f.uow, f.logger)
			_, err := rashis.Seed(ctx, f.catalog)
			Expect(err).NotTo(HaveOccurred())

			appointment, err := svc.Book(ctx, client, services.BookInput{
				ConsultationType: "career", ScheduledTime: when, ZodiacSign: ptr("Leo"), PreferredMethod: "phone",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(appointment.Rashi).NotTo(BeNil())
			Expect(appointment.Rashi.Name).To(Equal(entities.Leo))
			Expect(appointment.PreferredMethod).To(Equal(entities.MethodPhone))
		})

		DescribeTable("rejeita entradas inválidas",
			func(input services.BookInput, want error) {
				_, err := svc.Book(ctx, client, input)
				Expect(err).To(MatchError(want))
			},
			Entry("tipo desconhecido", services.BookInput{ConsultationType: "palmistry", ScheduledTime: time.Now()}, domainerrors.ErrInvalidConsultationType),
			Entry("sem horário", services.BookInput{ConsultationType: "career"}, domainerrors.ErrInvalidDate),
			Entry("signo inválido", services.BookInput{ConsultationType: "career", ScheduledTime: time.Now(), ZodiacSign: ptr("dragon")}, domainerrors.ErrInvalidZodiacSign),
			Entry("canal desconhecido", services.BookInput{ConsultationType: "career", ScheduledTime: time.Now(), PreferredMethod: "pigeon"}, domainerrors.ErrInvalidContactMethod),
		)
	})

	Describe("listagens", func() {
		It("o cliente vê apenas os próprios agendamentos", func() {
			other := f.createUser("other", false)
			book(client, "career")
			book(other, "general")

			mine, err := svc.ListForClient(ctx, client.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(mine).To(HaveLen(1))
			Expect(mine[0].ClientID).To(Equal(client.ID))

			all, err := svc.ListAll(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].Client).NotTo(BeNil())
		})
	})

	Describe("UpdateStatus", func() {
		It("confirmado com link envia o link ao cliente", func() {
			appointment := book(client, "general")
			link := "https://meet.example.com/abc"

			updated, err := svc.UpdateStatus(ctx, appointment.ID, "confirmed", &link)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.AppointmentConfirmed))
			Expect(*updated.MeetingLink).To(Equal(link))

			sent := f.notifier.Sent()
			Expect(sent).To(HaveLen(2))
			Expect(sent[1].Kind).To(Equal(ports.NotificationMeetingLink))
			Expect(sent[1].To).To(Equal("seeker@example.com"))
			Expect(sent[1].Data).To(HaveKeyWithValue("MeetingLink", link))
		})

		It("confirmado sem link não envia nada", func() {
			appointment := book(client, "general")

			_, err := svc.UpdateStatus(ctx, appointment.ID, "confirmed", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.notifier.Sent()).To(HaveLen(1))
		})

		It("aceita qualquer status válido", func() {
			appointment := book(client, "general")

			updated, err := svc.UpdateStatus(ctx, appointment.ID, "completed", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Status).To(Equal(entities.AppointmentCompleted))
		})

		It("rejeita status desconhecido", func() {
			appointment := book(client, "general")
			_, err := svc.UpdateStatus(ctx, appointment.ID, "archived", nil)
			Expect(err).To(MatchError(domainerrors.ErrInvalidStatus))
		})

		It("retorna não encontrado para id desconhecido", func() {
			_, err := svc.UpdateStatus(ctx, "missing", "confirmed", nil)
			Expect(err).To(MatchError(domainerrors.ErrAppointmentNotFound))
		})
	})

	Describe("Cancel", func() {
		It("o dono cancela sem apagar a linha", func() {
			appointment := book(client, "general")

			Expect(svc.Cancel(ctx, appointment.ID, client.ID)).To(Succeed())

			stored, err := f.appointments.FindByID(ctx, appointment.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal(entities.AppointmentCancelled))
		})

		It("outro cliente recebe não encontrado e o status não muda", func() {
			appointment := book(client, "general")
			intruder := f.createUser("intruder", false)

			err := svc.Cancel(ctx, appointment.ID, intruder.ID)
			Expect(err).To(MatchError(domainerrors.ErrAppointmentNotFound))

			stored, err := f.appointments.FindByID(ctx, appointment.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored.Status).To(Equal(entities.AppointmentPending))
		})
	})
})
