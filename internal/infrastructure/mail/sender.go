package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
	"github.com/rafabene/kundlivision-backend/internal/infrastructure/config"
)

// Message é um email já renderizado
type Message struct {
	To       string
	Subject  string
	HTMLBody string
}

// Sender entrega um email
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPSender entrega via SMTP com go-mail
type SMTPSender struct {
	client *gomail.Client
	from   string
}

// NewSMTPSender configura o cliente SMTP; a conexão só é aberta no envio
func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if cfg.User != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.User),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &SMTPSender{client: client, from: cfg.From}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("invalid sender %q: %w", s.from, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextHTML, msg.HTMLBody)

	return s.client.DialAndSendWithContext(ctx, m)
}

// LogSender apenas registra o email; usado quando SMTP_HOST não está configurado
type LogSender struct {
	log ports.Logger
}

func NewLogSender(log ports.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.log.Info("smtp not configured, email not delivered",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}

// NewSender escolhe entre SMTP e log conforme a configuração
func NewSender(cfg config.SMTPConfig, log ports.Logger) (Sender, error) {
	if cfg.Host == "" {
		return NewLogSender(log), nil
	}
	return NewSMTPSender(cfg)
}
