package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	httphandlers "github.com/rafabene/kundlivision-backend/internal/handlers/http"
	"github.com/rafabene/kundlivision-backend/internal/handlers/ws"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/auth"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/cache"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/catalogdata"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/i18n"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/mail"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/reporting"
	"github.com/rafabene/kundlivision-backend/internal/services"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := bootstrap()
			if err != nil {
				return err
			}
			defer rt.close()
			return serve(rt)
		},
	}
}

func serve(rt *runtime) error {
	cfg, logger := rt.cfg, rt.logger

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Info("starting kundlivision backend", "env", cfg.Env)

	if err := postgres.Migrate(rt.db); err != nil {
		return err
	}

	// Inicializar i18n; sem o diretório usa as traduções embutidas
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Warn("locales directory unavailable, using embedded translations", "dir", cfg.I18n.LocalesDir, "error", err)
		if i18nService, err = i18n.NewEmbeddedService(cfg.I18n.DefaultLanguage); err != nil {
			return fmt.Errorf("failed to initialize i18n: %w", err)
		}
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	reporter, err := reporting.NewSentryReporter(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Env,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize sentry: %w", err)
	}
	defer reporting.Flush(reporter, 2*time.Second)

	var horoscopeCache ports.HoroscopeCache = cache.NoopHoroscopeCache{}
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisHoroscopeCache(cfg.Redis.URL, logger)
		if err != nil {
			return err
		}
		defer redisCache.Close()
		horoscopeCache = redisCache
	}

	catalog, err := catalogdata.Load()
	if err != nil {
		return err
	}

	ttl, err := cfg.JWT.TTL()
	if err != nil {
		return err
	}
	tokens, err := auth.NewJWTService(cfg.JWT.Secret, ttl)
	if err != nil {
		return err
	}

	// Email
	sender, err := mail.NewSender(cfg.SMTP, logger)
	if err != nil {
		return fmt.Errorf("failed to configure mail: %w", err)
	}
	renderer, err := mail.NewRenderer()
	if err != nil {
		return err
	}
	dispatcher := mail.NewDispatcher(sender, renderer, logger, mail.DispatcherOptions{QueueSize: cfg.SMTP.QueueSize})

	hub := ws.NewHub(cfg.CORS.Origins(), logger)

	// Inicializar repositories
	db := rt.db
	uow := postgres.NewUnitOfWork(db)
	userRepo := postgres.NewUserRepository(db)
	rashiRepo := postgres.NewRashiRepository(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, auth.NewBcryptHasher(bcrypt.DefaultCost), tokens, dispatcher, logger)
	horoscopeService := services.NewHoroscopeService(postgres.NewHoroscopeRepository(db), horoscopeCache, hub, logger, nil)
	blogService := services.NewBlogService(postgres.NewBlogRepository(db), uow, hub, logger, nil)
	contactService := services.NewContactService(postgres.NewMessageRepository(db), dispatcher, cfg.SMTP.User, logger)
	appointmentService := services.NewAppointmentService(postgres.NewAppointmentRepository(db), rashiRepo, catalog, dispatcher, logger)
	rashiService := services.NewRashiService(rashiRepo, uow, logger)
	randomizer := services.DefaultRandomizer()

	// Inicializar handlers
	errorHandler := httphandlers.NewErrorHandler(logger, reporter, cfg.IsDevelopment())
	handlers := httphandlers.Handlers{
		Auth:        httphandlers.NewAuthHandler(authService, errorHandler),
		Horoscope:   httphandlers.NewHoroscopeHandler(horoscopeService, errorHandler),
		Blog:        httphandlers.NewBlogHandler(blogService, errorHandler),
		Contact:     httphandlers.NewContactHandler(contactService, errorHandler),
		Zodiac:      httphandlers.NewZodiacHandler(services.NewZodiacService(catalog), errorHandler),
		Appointment: httphandlers.NewAppointmentHandler(appointmentService, errorHandler),
		Rashi:       httphandlers.NewRashiHandler(rashiService, errorHandler),
		Divination: httphandlers.NewDivinationHandler(
			services.NewLuckyService(catalog, randomizer),
			services.NewTarotService(catalog, randomizer),
			errorHandler,
		),
		Health: httphandlers.NewHealthHandler(func(ctx context.Context) error { return postgres.Ping(ctx, db) }, logger),
		Feed:   hub,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := httphandlers.NewRouter(httphandlers.RouterConfig{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.Origins(),
		StaticDir:      cfg.Server.StaticDir,
		Development:    cfg.IsDevelopment(),
	}, handlers, authService, i18nService, logger, reporter)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		logger.Error("server failed", "error", err)
		hub.Close()
		drainMail(dispatcher, logger, shutdownTimeout)
		return err
	case <-quit:
	}

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	hub.Close()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	drainMail(dispatcher, logger, shutdownTimeout)

	logger.Info("server exited")
	return nil
}

// mailCloser é a parte do dispatcher usada no desligamento
type mailCloser interface {
	Close(ctx context.Context) error
}

// drainMail espera a fila de emails até o timeout e registra o que ficou para trás
func drainMail(d mailCloser, logger ports.Logger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := d.Close(ctx); err != nil {
		logger.Warn("pending emails dropped on shutdown", "error", err)
	}
}
