package animals

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"

	"animals-safety/internal/messages"
	"animals-safety/internal/platform/logger"
	"animals-safety/internal/ports/notify"

	"github.com/google/uuid"
)

// Observer recibe el resultado de cada intento de creación (métricas).
type Observer interface {
	AnimalCreated(total int)
	AnimalRejected(kind FailureKind)
}

type nopObserver struct{}

func (nopObserver) AnimalCreated(int)          {}
func (nopObserver) AnimalRejected(FailureKind) {}

type Service struct {
	repo     Repository
	notifier notify.Notifier
	observer Observer
	log      logger.Logger
	locale   string

	newID func() string
	now   func() time.Time
}

type Option func(*Service)

func WithNotifier(n notify.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDefaultLocale fija el locale de los mensajes cuando el request no trae uno.
func WithDefaultLocale(locale string) Option {
	return func(s *Service) {
		if strings.TrimSpace(locale) != "" {
			s.locale = locale
		}
	}
}

func NewService(repo Repository, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		notifier: notify.Nop{},
		observer: nopObserver{},
		log:      logger.Discard(),
		locale:   messages.DefaultLocale,
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateInput es el formulario crudo: los numéricos llegan como texto.
type CreateInput struct {
	Name   string
	Breed  Breed
	Age    string
	Weight string
	Height string
}

// TryCreate valida el formulario y, si es válido, agrega un registro nuevo al store.
//
// El orden de los chequeos es fijo y corta en el primero que falla:
// nombre vacío, edad, peso, altura. Ante cualquier fallo el store no se toca.
func (s *Service) TryCreate(ctx context.Context, in CreateInput) (Animal, error) {
	breed := in.Breed
	if breed == "" {
		breed = DefaultBreed()
	}
	if !breed.Valid() {
		return Animal{}, ErrUnknownBreed
	}

	a, err := s.validate(in.Name, breed, in.Age, in.Weight, in.Height)
	if err != nil {
		s.reject(ctx, err)
		return Animal{}, err
	}

	a.ID = s.newID()
	if err := s.repo.Append(ctx, a); err != nil {
		return Animal{}, err
	}

	total, err := s.repo.Len(ctx)
	if err == nil {
		s.observer.AnimalCreated(total)
	}
	s.log.Info("animal created", map[string]any{
		"animal_id": a.ID,
		"breed":     string(a.Breed),
	})
	return a, nil
}

func (s *Service) validate(name string, breed Breed, ageText, weightText, heightText string) (Animal, error) {
	if strings.TrimSpace(name) == "" {
		return Animal{}, ErrEmptyName
	}
	age, ok := parseAge(ageText)
	if !ok {
		return Animal{}, ErrInvalidAge
	}
	weight, ok := parseMeasure(weightText)
	if !ok {
		return Animal{}, ErrInvalidWeight
	}
	height, ok := parseMeasure(heightText)
	if !ok {
		return Animal{}, ErrInvalidHeight
	}

	return Animal{
		Name:   name,
		Breed:  breed,
		Age:    age,
		Weight: weight,
		Height: height,
	}, nil
}

// reject publica el mensaje del fallo. Notify no bloquea y no afecta el resultado.
func (s *Service) reject(ctx context.Context, err error) {
	kind := KindOf(err)
	s.observer.AnimalRejected(kind)
	s.log.Info("animal rejected", map[string]any{"kind": string(kind)})

	s.notifier.Notify(ctx, notify.Notification{
		Kind:    string(kind),
		Message: s.Message(ctx, err),
		At:      s.now(),
	})
}

// Message devuelve el texto visible de un error de validación en el locale del request.
func (s *Service) Message(ctx context.Context, err error) string {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return err.Error()
	}
	return s.Catalog(ctx).Lookup(ve.MessageKey)
}

// Catalog resuelve el catálogo del request; sin locale soportado usa el del servicio.
func (s *Service) Catalog(ctx context.Context) messages.Catalog {
	locale := messages.LocaleFrom(ctx)
	if !messages.Supported(locale) {
		locale = s.locale
	}
	return messages.ForLocale(locale)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.All(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

// parseAge acepta enteros base 10 de 32 bits con signo opcional, sin espacios.
func parseAge(s string) (int, bool) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// parseMeasure acepta floats de 32 bits, con sufijo f/d opcional ("1.5f").
// NaN/Inf no son representables en JSON.
func parseMeasure(s string) (float32, bool) {
	s = strings.TrimSpace(s)
	if n := len(s); n > 1 && strings.ContainsRune("fFdD", rune(s[n-1])) && isDigitOrDot(s[n-2]) {
		s = s[:n-1]
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return float32(v), true
}

func isDigitOrDot(c byte) bool {
	return c == '.' || ('0' <= c && c <= '9')
}
