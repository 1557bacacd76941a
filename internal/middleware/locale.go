package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"animals-safety/internal/messages"
)

// Locale toma el primer idioma soportado de Accept-Language y lo deja en el contexto.
// Sin match, no setea nada y el servicio usa su locale por defecto.
func Locale(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if loc := preferredLocale(r.Header.Get("Accept-Language")); loc != "" {
			r = r.WithContext(messages.WithLocale(r.Context(), loc))
		}
		next.ServeHTTP(w, r)
	})
}

// preferredLocale respeta el orden del header. Los tags con q=0 no son aceptables y se saltean.
func preferredLocale(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag, params, _ := strings.Cut(part, ";")
		tag = strings.TrimSpace(tag)
		if tag == "" || tag == "*" || zeroQuality(params) {
			continue
		}
		if messages.Supported(tag) {
			return tag
		}
	}
	return ""
}

func zeroQuality(params string) bool {
	for _, p := range strings.Split(params, ";") {
		k, v, ok := strings.Cut(strings.TrimSpace(p), "=")
		if !ok || !strings.EqualFold(strings.TrimSpace(k), "q") {
			continue
		}
		q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return err == nil && q <= 0
	}
	return false
}
