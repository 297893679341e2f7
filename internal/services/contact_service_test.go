package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

var _ = Describe("ContactService", func() {
	var (
		f     *fixture
		ctx   context.Context
		input services.ContactInput
	)

	BeforeEach(func() {
		f = newFixture()
		ctx = context.Background()
		input = services.ContactInput{
			Name: "Ravi", Email: "ravi@example.com", Subject: "Reading", Message: "Can I book a reading?",
		}
	})

	It("grava a mensagem e avisa o admin", func() {
		svc := services.NewContactService(f.messages, f.notifier, "admin@kundlivision.com", f.logger)

		message, err := svc.Submit(ctx, input)
		Expect(err).NotTo(HaveOccurred())

		stored, err := f.messages.FindByID(ctx, message.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(stored.Message).To(Equal("Can I book a reading?"))

		sent := f.notifier.Sent()
		Expect(sent).To(HaveLen(1))
		Expect(sent[0].Kind).To(Equal(ports.NotificationContact))
		Expect(sent[0].To).To(Equal("admin@kundlivision.com"))
		Expect(sent[0].Subject).To(Equal("New Contact Form: Reading"))
		Expect(sent[0].Data).To(HaveKeyWithValue("Email", "ravi@example.com"))
	})

	It("grava mesmo sem endereço do admin configurado", func() {
		svc := services.NewContactService(f.messages, f.notifier, "", f.logger)

		message, err := svc.Submit(ctx, input)
		Expect(err).NotTo(HaveOccurred())
		Expect(message.ID).NotTo(BeEmpty())
		Expect(f.notifier.Sent()).To(BeEmpty())
	})
})
