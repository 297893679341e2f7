package http_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/kundlivision-backend/internal/infrastructure/logging"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/mail"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/persistence/postgres"
)

// failingSender simula o SMTP indisponível
type failingSender struct {
	attempts atomic.Int32
}

func (s *failingSender) Send(context.Context, mail.Message) error {
	s.attempts.Add(1)
	return errors.New("smtp: connection refused")
}

var _ = Describe("API", func() {
	var a *api

	BeforeEach(func() {
		a = newAPI()
	})

	Describe("auth", func() {
		It("registra e devolve token sem expor a senha", func() {
			rec := a.do(http.MethodPost, "/api/auth/register", map[string]any{
				"username":   "ravi",
				"email":      "Ravi@Example.com",
				"password":   "secret123",
				"firstName":  "Ravi",
				"lastName":   "Shankar",
				"zodiacSign": "leo",
			}, "")

			Expect(rec.Code).To(Equal(http.StatusCreated))
			Expect(rec.Body.String()).NotTo(ContainSubstring("password"))

			var resp struct {
				Message string `json:"message"`
				Token   string `json:"token"`
				User    struct {
					Email      string `json:"email"`
					ZodiacSign string `json:"zodiacSign"`
					IsAdmin    bool   `json:"isAdmin"`
				} `json:"user"`
			}
			decode(rec, &resp)
			Expect(resp.Message).To(Equal("User registered successfully"))
			Expect(resp.Token).NotTo(BeEmpty())
			Expect(resp.User.Email).To(Equal("ravi@example.com"))
			Expect(resp.User.ZodiacSign).To(Equal("leo"))
			Expect(resp.User.IsAdmin).To(BeFalse())
		})

		It("rejeita email duplicado com 400 sem criar outra linha", func() {
			a.register("ravi")

			rec := a.do(http.MethodPost, "/api/auth/register", map[string]any{
				"username":  "another",
				"email":     "ravi@example.com",
				"password":  "secret123",
				"firstName": "Other",
				"lastName":  "Person",
			}, "")

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(decodeProblem(rec).Detail).To(Equal("User already exists with this email or username"))

			var count int64
			Expect(a.db.Model(&postgres.UserModel{}).Count(&count).Error).To(Succeed())
			Expect(count).To(Equal(int64(1)))
		})

		It("lista todos os campos inválidos", func() {
			rec := a.do(http.MethodPost, "/api/auth/register", map[string]any{
				"username":  "ra",
				"email":     "not-an-email",
				"password":  "123",
				"firstName": "Ravi",
				"lastName":  "Shankar",
			}, "")

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			p := decodeProblem(rec)
			fields := make([]string, 0, len(p.Errors))
			for _, e := range p.Errors {
				fields = append(fields, e.Field)
			}
			Expect(fields).To(ConsistOf("username", "email", "password"))
		})

		DescribeTable("recusa senha que o bcrypt não aceita com 400",
			func(password, tag string) {
				rec := a.do(http.MethodPost, "/api/auth/register", map[string]any{
					"username":  "ravi",
					"email":     "ravi@example.com",
					"password":  password,
					"firstName": "Ravi",
					"lastName":  "Shankar",
				}, "")

				Expect(rec.Code).To(Equal(http.StatusBadRequest))
				p := decodeProblem(rec)
				Expect(p.Errors).To(HaveLen(1))
				Expect(p.Errors[0].Field).To(Equal("password"))
				Expect(p.Errors[0].Tag).To(Equal(tag))

				var count int64
				Expect(a.db.Model(&postgres.UserModel{}).Count(&count).Error).To(Succeed())
				Expect(count).To(BeZero())
			},
			Entry("80 bytes ASCII barrados no binding", strings.Repeat("x", 80), "max"),
			Entry("30 runas de 3 bytes barradas no hash", strings.Repeat("€", 30), ""),
		)

		It("usa a mesma mensagem para senha errada e email desconhecido", func() {
			a.register("ravi")

			wrongPassword := a.do(http.MethodPost, "/api/auth/login", map[string]any{
				"email": "ravi@example.com", "password": "wrong-one",
			}, "")
			unknownEmail := a.do(http.MethodPost, "/api/auth/login", map[string]any{
				"email": "ghost@example.com", "password": "secret123",
			}, "")

			Expect(wrongPassword.Code).To(Equal(http.StatusUnauthorized))
			Expect(unknownEmail.Code).To(Equal(http.StatusUnauthorized))
			Expect(decodeProblem(wrongPassword).Detail).To(Equal(decodeProblem(unknownEmail).Detail))
		})

		It("exige token em /me", func() {
			Expect(a.do(http.MethodGet, "/api/auth/me", nil, "").Code).To(Equal(http.StatusUnauthorized))
			Expect(a.do(http.MethodGet, "/api/auth/me", nil, "garbage").Code).To(Equal(http.StatusUnauthorized))

			token, id := a.register("ravi")
			rec := a.do(http.MethodGet, "/api/auth/me", nil, token)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(id))
		})
	})

	Describe("horoscopes", func() {
		It("barra não-admin com 403", func() {
			token, _ := a.register("ravi")

			rec := a.do(http.MethodPost, "/api/horoscopes", map[string]any{
				"zodiacSign": "leo", "type": "daily", "content": "Bright day", "date": time.Now().Format(time.DateOnly),
			}, token)

			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(decodeProblem(rec).Status).To(Equal(http.StatusForbidden))
		})

		It("aceita duplicados e os devolve em /today", func() {
			admin := a.registerAdmin("boss")
			body := map[string]any{
				"zodiacSign": "Leo", "type": "daily", "content": "Bright day", "date": time.Now().Format(time.DateOnly),
			}

			Expect(a.do(http.MethodPost, "/api/horoscopes", body, admin).Code).To(Equal(http.StatusCreated))
			Expect(a.do(http.MethodPost, "/api/horoscopes", body, admin).Code).To(Equal(http.StatusCreated))

			rec := a.do(http.MethodGet, "/api/horoscopes/today", nil, "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var list []struct {
				ZodiacSign string `json:"zodiacSign"`
				Type       string `json:"type"`
			}
			decode(rec, &list)
			Expect(list).To(HaveLen(2))
			for _, h := range list {
				Expect(h.ZodiacSign).To(Equal("leo"))
				Expect(h.Type).To(Equal("daily"))
			}
		})

		It("devolve 404 ao remover id inexistente", func() {
			admin := a.registerAdmin("boss")
			rec := a.do(http.MethodDelete, "/api/horoscopes/00000000-0000-0000-0000-000000000000", nil, admin)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("blogs", func() {
		content := "The stars align in curious ways this season, and every sign feels it."

		It("esconde rascunhos da listagem pública", func() {
			admin := a.registerAdmin("boss")

			Expect(a.do(http.MethodPost, "/api/blogs", map[string]any{
				"title": "Published post", "slug": "published-post", "content": content, "isPublished": true, "tags": []string{"vedic"},
			}, admin).Code).To(Equal(http.StatusCreated))
			Expect(a.do(http.MethodPost, "/api/blogs", map[string]any{
				"title": "Draft post", "slug": "draft-post", "content": content,
			}, admin).Code).To(Equal(http.StatusCreated))

			rec := a.do(http.MethodGet, "/api/blogs", nil, admin)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var page struct {
				Blogs []struct {
					Slug string `json:"slug"`
				} `json:"blogs"`
				Total int `json:"total"`
			}
			decode(rec, &page)
			Expect(page.Total).To(Equal(1))
			Expect(page.Blogs[0].Slug).To(Equal("published-post"))

			Expect(a.do(http.MethodGet, "/api/blogs/draft-post", nil, "").Code).To(Equal(http.StatusNotFound))
			Expect(a.do(http.MethodGet, "/api/blogs/published-post", nil, "").Code).To(Equal(http.StatusOK))

			var all []map[string]any
			decode(a.do(http.MethodGet, "/api/blogs/admin/all", nil, admin), &all)
			Expect(all).To(HaveLen(2))
		})

		It("rejeita slug repetido", func() {
			admin := a.registerAdmin("boss")
			body := map[string]any{"title": "First post", "slug": "same-slug", "content": content}

			Expect(a.do(http.MethodPost, "/api/blogs", body, admin).Code).To(Equal(http.StatusCreated))
			Expect(a.do(http.MethodPost, "/api/blogs", body, admin).Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("contact", func() {
		It("grava a mensagem como não lida e avisa o admin", func() {
			rec := a.do(http.MethodPost, "/api/contact", map[string]any{
				"name": "Asha", "email": "asha@example.com", "subject": "Reading request", "message": "Could you look at my chart?",
			}, "")

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var resp struct {
				Message string `json:"message"`
				ID      string `json:"id"`
			}
			decode(rec, &resp)
			Expect(resp.Message).To(Equal("Message sent successfully"))

			stored, err := postgres.NewMessageRepository(a.db).FindByID(context.Background(), resp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).NotTo(BeNil())
			Expect(stored.IsRead).To(BeFalse())

			sent := a.notifier.Sent()
			Expect(sent).To(HaveLen(1))
			Expect(sent[0].To).To(Equal(adminEmail))
		})
	})

	Describe("contact com SMTP fora do ar", func() {
		It("responde 201 e grava a mensagem mesmo com o envio falhando", func() {
			sender := &failingSender{}
			renderer, err := mail.NewRenderer()
			Expect(err).NotTo(HaveOccurred())
			dispatcher := mail.NewDispatcher(sender, renderer, logging.NewNopLogger(), mail.DispatcherOptions{Workers: 1})
			DeferCleanup(func() { _ = dispatcher.Close(context.Background()) })

			smtpDown := newAPI(withNotifier(dispatcher))

			rec := smtpDown.do(http.MethodPost, "/api/contact", map[string]any{
				"name": "Asha", "email": "asha@example.com", "subject": "Reading request", "message": "Could you look at my chart?",
			}, "")

			Expect(rec.Code).To(Equal(http.StatusCreated))
			var resp struct {
				ID string `json:"id"`
			}
			decode(rec, &resp)

			stored, err := postgres.NewMessageRepository(smtpDown.db).FindByID(context.Background(), resp.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(stored).NotTo(BeNil())
			Expect(stored.IsRead).To(BeFalse())

			Eventually(sender.attempts.Load).Should(BeNumerically(">=", 1))
		})
	})

	Describe("appointments", func() {
		scheduled := time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339)

		It("ignora preço enviado pelo cliente", func() {
			token, _ := a.register("ravi")

			rec := a.do(http.MethodPost, "/api/appointments", map[string]any{
				"consultationType": "birth-chart",
				"scheduledTime":    scheduled,
				"price":            1,
				"duration":         5,
			}, token)

			Expect(rec.Code).To(Equal(http.StatusCreated), rec.Body.String())
			var resp struct {
				Appointment struct {
					Price           string `json:"price"`
					Duration        int    `json:"duration"`
					Status          string `json:"status"`
					PreferredMethod string `json:"preferredMethod"`
				} `json:"appointment"`
			}
			decode(rec, &resp)
			Expect(resp.Appointment.Price).To(Equal("99.00"))
			Expect(resp.Appointment.Duration).To(Equal(60))
			Expect(resp.Appointment.Status).To(Equal("pending"))
			Expect(resp.Appointment.PreferredMethod).To(Equal("video"))
		})

		It("esconde o agendamento de outro cliente no cancelamento", func() {
			owner, _ := a.register("ravi")
			intruder, _ := a.register("mallory")

			rec := a.do(http.MethodPost, "/api/appointments", map[string]any{
				"consultationType": "career", "scheduledTime": scheduled,
			}, owner)
			Expect(rec.Code).To(Equal(http.StatusCreated))
			var created struct {
				Appointment struct {
					ID string `json:"id"`
				} `json:"appointment"`
			}
			decode(rec, &created)
			path := "/api/appointments/" + created.Appointment.ID

			Expect(a.do(http.MethodDelete, path, nil, intruder).Code).To(Equal(http.StatusNotFound))
			Expect(a.do(http.MethodDelete, path, nil, owner).Code).To(Equal(http.StatusOK))

			var mine []struct {
				Status string `json:"status"`
			}
			decode(a.do(http.MethodGet, "/api/appointments", nil, owner), &mine)
			Expect(mine).To(HaveLen(1))
			Expect(mine[0].Status).To(Equal("cancelled"))
		})

		It("reserva a lista completa ao admin", func() {
			token, _ := a.register("ravi")
			Expect(a.do(http.MethodGet, "/api/appointments/admin", nil, token).Code).To(Equal(http.StatusForbidden))

			admin := a.registerAdmin("boss")
			Expect(a.do(http.MethodGet, "/api/appointments/admin", nil, admin).Code).To(Equal(http.StatusOK))
		})
	})

	Describe("catalog", func() {
		It("calcula compatibilidade pelo catálogo", func() {
			rec := a.do(http.MethodGet, "/api/zodiac/compatibility/aries/leo", nil, "")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp struct {
				Compatibility int `json:"compatibility"`
			}
			decode(rec, &resp)
			Expect(resp.Compatibility).To(Equal(93))
		})

		It("devolve 404 para signo desconhecido", func() {
			Expect(a.do(http.MethodGet, "/api/zodiac/ophiuchus", nil, "").Code).To(Equal(http.StatusNotFound))
		})

		It("rejeita tiragem desconhecida", func() {
			Expect(a.do(http.MethodGet, "/api/tarot/draw?spread=nope", nil, "").Code).To(Equal(http.StatusBadRequest))
			Expect(a.do(http.MethodGet, "/api/tarot/draw", nil, "").Code).To(Equal(http.StatusOK))
		})
	})

	Describe("infra", func() {
		It("responde health com o banco", func() {
			rec := a.do(http.MethodGet, "/api/health", nil, "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"status":"OK"`))
			Expect(rec.Body.String()).To(ContainSubstring(`"database":"ok"`))
		})

		It("responde 404 em formato de problema para rota desconhecida", func() {
			rec := a.do(http.MethodGet, "/api/nowhere", nil, "")
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(decodeProblem(rec).Detail).To(Equal("Route not found"))
		})
	})
})
