// Package testutil reúne fixtures compartilhadas pelos testes de integração.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rafabene/kundlivision-backend/internal/domain/entities"
	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/domain/repositories"
	"github.com/rafabene/kundlivision-backend/internal/domain/valueobjects"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/persistence/postgres"
)

// NewDB abre um SQLite em memória, isolado por chamada, com todas as tabelas migradas
func NewDB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := OpenDB()
	if err != nil {
		tb.Fatalf("failed to open test database: %v", err)
	}

	tb.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

// OpenDB é a versão sem testing.TB, usada pelas suítes ginkgo
func OpenDB() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// uma única conexão mantém o banco em memória vivo e serializa as transações
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := postgres.Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CreateUser grava um usuário ativo pronto para uso nos testes
func CreateUser(ctx context.Context, repo repositories.UserRepository, username string, admin bool) (*entities.User, error) {
	user := NewUser(username, admin)
	if err := repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// NewUser monta um usuário válido sem persistir
func NewUser(username string, admin bool) *entities.User {
	email, _ := valueobjects.NewEmail(username + "@example.com")
	return &entities.User{
		Username:     username,
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Test",
		LastName:     "User",
		IsAdmin:      admin,
		IsActive:     true,
	}
}

// RecordingNotifier guarda as notificações em vez de enviá-las
type RecordingNotifier struct {
	mu   sync.Mutex
	sent []ports.Notification
}

func (n *RecordingNotifier) Notify(notification ports.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, notification)
}

// Sent retorna uma cópia das notificações recebidas
func (n *RecordingNotifier) Sent() []ports.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.Notification(nil), n.sent...)
}

// Event é um evento capturado pelo RecordingPublisher
type Event struct {
	Name    string
	Payload any
}

// RecordingPublisher guarda os eventos publicados
type RecordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *RecordingPublisher) Publish(event string, payload any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, Event{Name: event, Payload: payload})
}

// Events retorna uma cópia dos eventos recebidos
func (p *RecordingPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Event(nil), p.events...)
}

// FixedClock devolve sempre o mesmo instante
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
