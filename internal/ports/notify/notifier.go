package notify

import (
	"context"
	"time"
)

// Notification es un mensaje corto y transitorio para el usuario.
type Notification struct {
	Kind    string    `json:"kind"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier entrega notificaciones sin bloquear al caller.
// El resultado de la operación nunca depende de la entrega.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Nop descarta todo (útil en tests).
type Nop struct{}

func (Nop) Notify(context.Context, Notification) {}
