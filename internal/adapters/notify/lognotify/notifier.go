package lognotify

import (
	"context"

	"animals-safety/internal/platform/logger"
	"animals-safety/internal/ports/notify"
)

// Notifier escribe la notificación en el log. Es el default cuando no hay webhook.
type Notifier struct {
	log logger.Logger
}

func New(l logger.Logger) *Notifier {
	if l == nil {
		l = logger.Discard()
	}
	return &Notifier{log: l}
}

func (n *Notifier) Notify(_ context.Context, msg notify.Notification) {
	n.log.Info("notification", map[string]any{
		"kind":    msg.Kind,
		"message": msg.Message,
	})
}
