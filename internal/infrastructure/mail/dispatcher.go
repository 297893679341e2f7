package mail

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rafabene/kundlivision-backend/internal/domain/ports"
)

const (
	defaultQueueSize   = 100
	defaultWorkers     = 2
	defaultSendTimeout = 30 * time.Second
)

// Dispatcher implementa ports.Notifier com uma fila limitada e workers próprios.
// Notify nunca bloqueia: com a fila cheia a notificação é descartada e logada.
type Dispatcher struct {
	sender      Sender
	renderer    *Renderer
	log         ports.Logger
	sendTimeout time.Duration

	queue  chan ports.Notification
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

var _ ports.Notifier = (*Dispatcher)(nil)

// DispatcherOptions ajusta fila, workers e timeout; zeros usam os padrões
type DispatcherOptions struct {
	QueueSize   int
	Workers     int
	SendTimeout time.Duration
}

// NewDispatcher cria o dispatcher e inicia os workers
func NewDispatcher(sender Sender, renderer *Renderer, log ports.Logger, opts DispatcherOptions) *Dispatcher {
	if opts.QueueSize <= 0 {
		opts.QueueSize = defaultQueueSize
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = defaultSendTimeout
	}

	d := &Dispatcher{
		sender:      sender,
		renderer:    renderer,
		log:         log.With("component", "mail"),
		sendTimeout: opts.SendTimeout,
		queue:       make(chan ports.Notification, opts.QueueSize),
	}

	for i := 0; i < opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}

	return d
}

// Notify enfileira a notificação sem esperar pelo envio
func (d *Dispatcher) Notify(n ports.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("mail dispatcher closed, notification dropped", "kind", n.Kind, "to", n.To)
		return
	}

	select {
	case d.queue <- n:
	default:
		d.log.Error("mail queue full, notification dropped", "kind", n.Kind, "to", n.To)
	}
}

// Close para de aceitar notificações e espera a fila esvaziar ou ctx expirar
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Join(errors.New("mail queue not drained"), ctx.Err())
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for n := range d.queue {
		d.deliver(n)
	}
}

func (d *Dispatcher) deliver(n ports.Notification) {
	body, err := d.renderer.Render(n)
	if err != nil {
		d.log.Error("failed to render email", "kind", n.Kind, "to", n.To, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), d.sendTimeout)
	defer cancel()

	if err := d.sender.Send(ctx, Message{To: n.To, Subject: n.Subject, HTMLBody: body}); err != nil {
		d.log.Error("failed to send email", "kind", n.Kind, "to", n.To, "error", err)
		return
	}

	d.log.Debug("email sent", "kind", n.Kind, "to", n.To)
}
