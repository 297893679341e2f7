package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/kundlivision-backend/docs"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/handlers/dto"
	"github.com/rafabene/kundlivision-backend/internal/handlers/middleware"
	"github.com/rafabene/kundlivision-backend/internal/handlers/ws"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/i18n"
)

// RouterConfig são as opções de borda do servidor HTTP
type RouterConfig struct {
	BaseURL        string
	AllowedOrigins []string
	StaticDir      string
	Development    bool
}

// Handlers reúne os handlers já montados
type Handlers struct {
	Auth        *AuthHandler
	Horoscope   *HoroscopeHandler
	Blog        *BlogHandler
	Contact     *ContactHandler
	Zodiac      *ZodiacHandler
	Appointment *AppointmentHandler
	Rashi       *RashiHandler
	Divination  *DivinationHandler
	Health      *HealthHandler
	Feed        *ws.Hub
}

// NewRouter monta o engine com middlewares globais e todas as rotas em /api
func NewRouter(
	cfg RouterConfig,
	h Handlers,
	authenticator middleware.Authenticator,
	i18nService *i18n.Service,
	logger ports.Logger,
	reporter ports.ErrorReporter,
) (*gin.Engine, error) {
	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()

	router.Use(middleware.BaseURL(cfg.BaseURL))
	router.Use(middleware.NewI18nMiddleware(i18nService).DetectLanguage())
	router.Use(middleware.Recovery(logger, reporter, cfg.Development))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	authenticate := middleware.Authenticate(authenticator)
	admin := []gin.HandlerFunc{authenticate, middleware.RequireAdmin()}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health.Check)
		api.GET("/feed", h.Feed.ServeWS)

		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.GET("/me", authenticate, h.Auth.Me)
		}

		horoscopes := api.Group("/horoscopes")
		{
			horoscopes.GET("", h.Horoscope.List)
			horoscopes.GET("/today", h.Horoscope.Today)
			horoscopes.POST("", append(admin, h.Horoscope.Create)...)
			horoscopes.PUT("/:id", append(admin, h.Horoscope.Update)...)
			horoscopes.DELETE("/:id", append(admin, h.Horoscope.Delete)...)
		}

		blogs := api.Group("/blogs")
		{
			blogs.GET("", h.Blog.List)
			blogs.GET("/admin/all", append(admin, h.Blog.ListAll)...)
			blogs.GET("/:slug", h.Blog.GetBySlug)
			blogs.POST("", append(admin, h.Blog.Create)...)
			blogs.PUT("/:id", append(admin, h.Blog.Update)...)
			blogs.DELETE("/:id", append(admin, h.Blog.Delete)...)
		}

		api.POST("/contact", h.Contact.Submit)

		zodiac := api.Group("/zodiac")
		{
			zodiac.GET("", h.Zodiac.List)
			zodiac.GET("/compatibility/:sign1/:sign2", h.Zodiac.Compatibility)
			zodiac.GET("/:sign", h.Zodiac.Get)
		}

		appointments := api.Group("/appointments", authenticate)
		{
			appointments.GET("", h.Appointment.ListMine)
			appointments.POST("", h.Appointment.Create)
			appointments.GET("/admin", middleware.RequireAdmin(), h.Appointment.ListAll)
			appointments.PUT("/:id/status", middleware.RequireAdmin(), h.Appointment.UpdateStatus)
			appointments.DELETE("/:id", h.Appointment.Cancel)
		}

		rashis := api.Group("/rashis")
		{
			rashis.GET("", h.Rashi.List)
			rashis.GET("/:name", h.Rashi.Get)
			rashis.POST("", append(admin, h.Rashi.Upsert)...)
		}

		api.POST("/lucky-numbers", h.Divination.LuckyNumbers)
		api.GET("/tarot/spreads", h.Divination.TarotSpreads)
		api.GET("/tarot/draw", h.Divination.TarotDraw)
	}

	router.NoRoute(noRoute(cfg.StaticDir))

	return router, nil
}

// noRoute responde 404 em formato de problema para a API e,
// com STATIC_DIR, serve o SPA com fallback para index.html
func noRoute(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		isAPI := path == "/api" || strings.HasPrefix(path, "/api/")

		if staticDir != "" && !isAPI && (c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead) {
			file := filepath.Join(staticDir, filepath.Clean("/"+path))
			if info, err := os.Stat(file); err == nil && !info.IsDir() {
				c.File(file)
				return
			}
			c.File(filepath.Join(staticDir, "index.html"))
			return
		}

		dto.Abort(c, dto.NotFoundErrorResponseI18n(c, "error.route_not_found"))
	}
}
