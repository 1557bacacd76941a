package animals

import (
	"errors"

	"animals-safety/internal/messages"
)

// FailureKind identifica el motivo de rechazo de un formulario.
type FailureKind string

const (
	KindEmptyName     FailureKind = "empty_name"
	KindInvalidAge    FailureKind = "invalid_age"
	KindInvalidWeight FailureKind = "invalid_weight"
	KindInvalidHeight FailureKind = "invalid_height"
)

// ValidationError es un fallo esperado de input; no es un error de sistema.
type ValidationError struct {
	Kind       FailureKind
	MessageKey messages.Key
	text       string
}

func (e *ValidationError) Error() string { return e.text }

var (
	ErrEmptyName     = &ValidationError{Kind: KindEmptyName, MessageKey: messages.IssueNameEmpty, text: "name must not be blank"}
	ErrInvalidAge    = &ValidationError{Kind: KindInvalidAge, MessageKey: messages.IssueInvalidAge, text: "age must be an integer"}
	ErrInvalidWeight = &ValidationError{Kind: KindInvalidWeight, MessageKey: messages.IssueInvalidWeight, text: "weight must be a number"}
	ErrInvalidHeight = &ValidationError{Kind: KindInvalidHeight, MessageKey: messages.IssueInvalidHeight, text: "height must be a number"}

	// ErrUnknownBreed solo lo ven callers programáticos: el formulario elige de una lista fija.
	ErrUnknownBreed = errors.New("unknown breed")
)

// IsValidationError reporta si err es uno de los cuatro rechazos de formulario.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// KindOf devuelve el FailureKind de err, o "" si no es de validación.
func KindOf(err error) FailureKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return ""
}
