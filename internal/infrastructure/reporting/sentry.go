package reporting

import (
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
)

// SentryReporter envia erros inesperados para o Sentry
type SentryReporter struct {
	hub *sentry.Hub
}

var _ ports.ErrorReporter = (*SentryReporter)(nil)

// NewSentryReporter cria um cliente próprio; com DSN vazio devolve um reporter nulo
func NewSentryReporter(opts sentry.ClientOptions) (ports.ErrorReporter, error) {
	if opts.Dsn == "" {
		return NopReporter{}, nil
	}

	client, err := sentry.NewClient(opts)
	if err != nil {
		return nil, err
	}

	return &SentryReporter{hub: sentry.NewHub(client, sentry.NewScope())}, nil
}

func (r *SentryReporter) CaptureError(err error, tags map[string]string) {
	if err == nil {
		return
	}
	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTags(tags)
		r.hub.CaptureException(err)
	})
}

// Flush espera o envio dos eventos pendentes
func (r *SentryReporter) Flush(timeout time.Duration) bool {
	return r.hub.Flush(timeout)
}

// NopReporter descarta os erros
type NopReporter struct{}

func (NopReporter) CaptureError(error, map[string]string) {}

// Flush envia o que estiver pendente, se o reporter suportar
func Flush(reporter ports.ErrorReporter, timeout time.Duration) {
	if f, ok := reporter.(interface{ Flush(time.Duration) bool }); ok {
		f.Flush(timeout)
	}
}
