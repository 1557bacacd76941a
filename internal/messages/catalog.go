// Package messages resuelve textos visibles para el usuario a partir de una clave.
// Es un lookup opaco: no hay plurales ni formateo.
package messages

import (
	"context"
	"strings"
)

type Key string

const (
	IssueNameEmpty     Key = "issue_name_empty"
	IssueInvalidAge    Key = "issue_invalid_age"
	IssueInvalidWeight Key = "issue_invalid_weight"
	IssueInvalidHeight Key = "issue_invalid_height"
)

const DefaultLocale = "en"

// Catalog mapea claves a texto para un locale.
type Catalog map[Key]string

// Lookup devuelve el texto o la clave misma si no existe.
func (c Catalog) Lookup(k Key) string {
	if v, ok := c[k]; ok {
		return v
	}
	return string(k)
}

var catalogs = map[string]Catalog{
	"en": {
		IssueNameEmpty:     "The name must not be empty",
		IssueInvalidAge:    "The age must be a whole number",
		IssueInvalidWeight: "The weight must be a number",
		IssueInvalidHeight: "The height must be a number",

		"breed_dog":     "Dog",
		"breed_cat":     "Cat",
		"breed_rabbit":  "Rabbit",
		"breed_hamster": "Hamster",
		"breed_parrot":  "Parrot",
	},
	"fr": {
		IssueNameEmpty:     "Le nom ne doit pas être vide",
		IssueInvalidAge:    "L'âge doit être un nombre entier",
		IssueInvalidWeight: "Le poids doit être un nombre",
		IssueInvalidHeight: "La taille doit être un nombre",

		"breed_dog":     "Chien",
		"breed_cat":     "Chat",
		"breed_rabbit":  "Lapin",
		"breed_hamster": "Hamster",
		"breed_parrot":  "Perroquet",
	},
}

// Supported indica si hay catálogo para el locale (ej. "fr", "fr-FR").
func Supported(locale string) bool {
	_, ok := catalogs[normalize(locale)]
	return ok
}

// ForLocale devuelve el catálogo del locale; cae a inglés si no existe.
func ForLocale(locale string) Catalog {
	if c, ok := catalogs[normalize(locale)]; ok {
		return c
	}
	return catalogs[DefaultLocale]
}

func normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return locale
}

type ctxKey struct{}

// WithLocale guarda el locale preferido del request.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, normalize(locale))
}

// LocaleFrom devuelve el locale del contexto o "" si no hay.
func LocaleFrom(ctx context.Context) string {
	v, _ := ctx.Value(ctxKey{}).(string)
	return v
}
