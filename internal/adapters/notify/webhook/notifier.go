// Package webhook entrega notificaciones a un endpoint HTTP externo.
package webhook

import (
	"context"
	"net/http"
	"sync"
	"time"

	"animals-safety/internal/platform/httpclient"
	"animals-safety/internal/platform/logger"
	"animals-safety/internal/ports/notify"
)

type Config struct {
	URL     string
	Timeout time.Duration
}

// Notifier hace POST de cada notificación en su propia goroutine.
// Los errores de entrega se loguean y se descartan.
type Notifier struct {
	url     string
	timeout time.Duration
	client  *httpclient.Client
	log     logger.Logger

	wg sync.WaitGroup
}

func New(cfg Config, l logger.Logger) (*Notifier, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	c, err := httpclient.New(httpclient.Options{Timeout: timeout, UserAgent: "animals-safety-notifier"})
	if err != nil {
		return nil, err
	}
	if l == nil {
		l = logger.Discard()
	}
	return &Notifier{url: cfg.URL, timeout: timeout, client: c, log: l}, nil
}

func (n *Notifier) Notify(ctx context.Context, msg notify.Notification) {
	// El request puede terminar antes que la entrega; no heredamos su cancelación.
	ctx = context.WithoutCancel(ctx)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, n.timeout)
		defer cancel()

		if err := n.client.DoJSON(ctx, http.MethodPost, n.url, msg, nil); err != nil {
			n.log.Warn("notification delivery failed", map[string]any{
				"kind":  msg.Kind,
				"error": err.Error(),
			})
		}
	}()
}

// Wait bloquea hasta que terminen las entregas en curso o ctx expire.
func (n *Notifier) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
