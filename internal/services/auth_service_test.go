package services_test

import (
	"context"
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/kundlivision-backend/internal/domain/errors"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/services"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/persistence/postgres"
)

var _ = Describe("AuthService", func() {
	var (
		f   *fixture
		svc *services.AuthService
		ctx context.Context
	)

	BeforeEach(func() {
		f = newFixture()
		svc = services.NewAuthService(f.users, f.hasher, f.tokens, f.notifier, f.logger)
		ctx = context.Background()
	})

	register := func(username, email string) (*services.AuthResult, error) {
		return svc.Register(ctx, services.RegisterInput{
			Username:  username,
			Email:     email,
			Password:  "secret123",
			FirstName: "Asha",
			LastName:  "Rao",
		})
	}

	countUsers := func() int64 {
		var n int64
		Expect(f.db.Model(&postgres.UserModel{}).Count(&n).Error).To(Succeed())
		return n
	}

	Describe("Register", func() {
		It("cria o usuário, emite token e envia boas-vindas", func() {
			result, err := register("asha", "Asha@Example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.User.Email.String()).To(Equal("asha@example.com"))
			Expect(result.User.PasswordHash).NotTo(Equal("secret123"))
			Expect(result.User.IsActive).To(BeTrue())
			Expect(result.User.IsAdmin).To(BeFalse())

			userID, err := f.tokens.Verify(result.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(userID).To(Equal(result.User.ID))

			sent := f.notifier.Sent()
			Expect(sent).To(HaveLen(1))
			Expect(sent[0].Kind).To(Equal(ports.NotificationWelcome))
			Expect(sent[0].To).To(Equal("asha@example.com"))
		})

		It("rejeita email já usado sem criar nova linha", func() {
			_, err := register("asha", "asha@example.com")
			Expect(err).NotTo(HaveOccurred())
			before := countUsers()

			_, err = register("other", "ASHA@example.com")
			Expect(err).To(MatchError(domainerrors.ErrUserAlreadyExists))
			Expect(countUsers()).To(Equal(before))
		})

		It("recusa senha acima do limite do bcrypt como erro de validação", func() {
			// 30 runas de 3 bytes passam por max=72 no binding mas somam 90 bytes
			_, err := svc.Register(ctx, services.RegisterInput{
				Username:  "asha",
				Email:     "asha@example.com",
				Password:  strings.Repeat("€", 30),
				FirstName: "Asha",
				LastName:  "Rao",
			})

			Expect(errors.Is(err, domainerrors.ErrPasswordTooLong)).To(BeTrue())
			var domainErr *domainerrors.DomainError
			Expect(errors.As(err, &domainErr)).To(BeTrue())
			Expect(domainErr.Title).To(Equal("password"))
			Expect(countUsers()).To(BeZero())
		})

		It("rejeita username já usado", func() {
			_, err := register("asha", "asha@example.com")
			Expect(err).NotTo(HaveOccurred())

			_, err = register("asha", "different@example.com")
			Expect(err).To(MatchError(domainerrors.ErrUserAlreadyExists))
		})

		It("rejeita signo inválido", func() {
			_, err := svc.Register(ctx, services.RegisterInput{
				Username: "asha", Email: "asha@example.com", Password: "secret123",
				FirstName: "Asha", LastName: "Rao", ZodiacSign: ptr("ophiuchus"),
			})
			Expect(err).To(MatchError(domainerrors.ErrInvalidZodiacSign))
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			_, err := register("asha", "asha@example.com")
			Expect(err).NotTo(HaveOccurred())
		})

		It("autentica com a senha correta", func() {
			result, err := svc.Login(ctx, "ASHA@example.com", "secret123")
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Token).NotTo(BeEmpty())
		})

		It("usa o mesmo erro para senha errada e email desconhecido", func() {
			_, wrongPassword := svc.Login(ctx, "asha@example.com", "nope")
			_, unknownEmail := svc.Login(ctx, "ghost@example.com", "secret123")

			Expect(wrongPassword).To(MatchError(domainerrors.ErrInvalidCredentials))
			Expect(unknownEmail).To(MatchError(domainerrors.ErrInvalidCredentials))
			Expect(wrongPassword.Error()).To(Equal(unknownEmail.Error()))
		})

		It("rejeita conta inativa", func() {
			user, err := f.users.FindByEmail(ctx, "asha@example.com")
			Expect(err).NotTo(HaveOccurred())
			user.IsActive = false
			Expect(f.users.Update(ctx, user)).To(Succeed())

			_, err = svc.Login(ctx, "asha@example.com", "secret123")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})

	Describe("Authenticate", func() {
		It("resolve o token para o usuário", func() {
			result, err := register("asha", "asha@example.com")
			Expect(err).NotTo(HaveOccurred())

			user, err := svc.Authenticate(ctx, result.Token)
			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(result.User.ID))
		})

		It("rejeita token inválido", func() {
			_, err := svc.Authenticate(ctx, "garbage")
			Expect(err).To(MatchError(domainerrors.ErrUnauthorized))
		})

		It("rejeita usuário desativado depois da emissão", func() {
			result, err := register("asha", "asha@example.com")
			Expect(err).NotTo(HaveOccurred())
			result.User.IsActive = false
			Expect(f.users.Update(ctx, result.User)).To(Succeed())

			_, err = svc.Authenticate(ctx, result.Token)
			Expect(err).To(MatchError(domainerrors.ErrUnauthorized))
		})
	})

	Describe("Promote", func() {
		It("marca o usuário como admin", func() {
			_, err := register("asha", "asha@example.com")
			Expect(err).NotTo(HaveOccurred())

			user, err := svc.Promote(ctx, "asha@example.com")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.IsAdmin).To(BeTrue())

			reloaded, err := f.users.FindByID(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(reloaded.IsAdmin).To(BeTrue())
		})

		It("falha para email desconhecido", func() {
			_, err := svc.Promote(ctx, "ghost@example.com")
			Expect(err).To(MatchError(domainerrors.ErrUserNotFound))
		})
	})
})
