package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config contém todas as configurações da aplicação
type Config struct {
	Env      string
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Logging  LoggingConfig
	CORS     CORSConfig
	Sentry   SentryConfig
	I18n     I18nConfig
}

type ServerConfig struct {
	Port      string
	Host      string
	BaseURL   string // URL base da API para construir URIs RFC 7807
	StaticDir string // build do SPA servido fora de /api (opcional)
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
}

type RedisConfig struct {
	URL string
}

type JWTConfig struct {
	Secret    string
	ExpiresIn string
}

type SMTPConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	From      string
	QueueSize int
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins string
}

type SentryConfig struct {
	DSN string
}

type I18nConfig struct {
	LocalesDir      string
	DefaultLanguage string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "5000")
	v.SetDefault("API_BASE_URL", "http://localhost:5000")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "kundlivision")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("JWT_EXPIRES_IN", "7d")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("MAIL_QUEUE_SIZE", 100)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")
	v.SetDefault("LOCALES_DIR", "./internal/infrastructure/i18n/locales")
	v.SetDefault("DEFAULT_LANGUAGE", "en")
}

// Load carrega as configurações do ambiente, usando .env quando existir
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	smtpUser := v.GetString("SMTP_USER")
	smtpFrom := v.GetString("SMTP_FROM")
	if smtpFrom == "" {
		smtpFrom = smtpUser
	}

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:      v.GetString("PORT"),
			Host:      v.GetString("HOST"),
			BaseURL:   v.GetString("API_BASE_URL"),
			StaticDir: v.GetString("STATIC_DIR"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		JWT: JWTConfig{
			Secret:    v.GetString("JWT_SECRET"),
			ExpiresIn: v.GetString("JWT_EXPIRES_IN"),
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			User:      smtpUser,
			Password:  v.GetString("SMTP_PASS"),
			From:      smtpFrom,
			QueueSize: v.GetInt("MAIL_QUEUE_SIZE"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetString("CORS_ALLOWED_ORIGINS"),
		},
		Sentry: SentryConfig{
			DSN: v.GetString("SENTRY_DSN"),
		},
		I18n: I18nConfig{
			LocalesDir:      v.GetString("LOCALES_DIR"),
			DefaultLanguage: v.GetString("DEFAULT_LANGUAGE"),
		},
	}

	return config, nil
}

// Validate verifica as configurações obrigatórias para subir a API
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	if _, err := c.JWT.TTL(); err != nil {
		return err
	}
	return nil
}

// IsDevelopment indica se detalhes de erros internos podem ser expostos
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction indica o modo release do Gin
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// TTL interpreta JWT_EXPIRES_IN como duração Go ou "<n>d"
func (j JWTConfig) TTL() (time.Duration, error) {
	raw := strings.TrimSpace(j.ExpiresIn)
	var ttl time.Duration
	if days, ok := strings.CutSuffix(raw, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", raw, err)
		}
		ttl = time.Duration(n) * 24 * time.Hour
	} else {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid JWT_EXPIRES_IN %q: %w", raw, err)
		}
		ttl = d
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("JWT_EXPIRES_IN must be positive, got %q", raw)
	}
	return ttl, nil
}

// Origins retorna a allow-list de CORS já separada
func (c CORSConfig) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// DSN retorna a connection string do PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}
