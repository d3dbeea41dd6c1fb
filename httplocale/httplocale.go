// Package httplocale detects the locale of incoming HTTP requests and makes
// it available to downstream handlers through the request context.
//
// Detection checks, in order: an explicit query parameter, a persisted
// cookie, and Accept-Language negotiation against the supported locales. The
// first supported locale is the fallback when nothing matches. Handlers read
// the result with FromContext and resolve messages at that locale:
//
//	manager := langman.New()
//	detect := httplocale.Detect(httplocale.Config{
//		Supported:  manager.Registry().Locales(),
//		CookieName: "lang",
//	})
//	handler := detect(mux)
//
//	// inside a handler:
//	code, _ := httplocale.FromContext(r.Context())
//	template := manager.Resolver().Resolve("NotNullValidator", code)
package httplocale

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/c3p0-box/localize/locale"
)

// Middleware represents an HTTP middleware function that takes an
// http.Handler and returns a new http.Handler wrapping the original with
// additional functionality.
type Middleware func(next http.Handler) http.Handler

// Config controls how Detect picks a locale for each request.
type Config struct {
	// Supported lists the locales offered to callers, in preference order.
	// Accept-Language headers are negotiated against this list and the
	// first entry is the fallback when no detection source matches.
	//
	// Required.
	Supported []locale.Code

	// QueryParam names the query parameter carrying an explicit locale
	// choice, as in "?lang=fr-FR".
	//
	// Optional. Default value "lang".
	QueryParam string

	// CookieName names the cookie that persists an explicit query
	// parameter choice between requests. Leave empty to skip cookie
	// reading and writing entirely.
	//
	// Optional. Default value "" (cookies disabled).
	CookieName string
}

// cookieMaxAge keeps a persisted choice for a year.
const cookieMaxAge = int(365 * 24 * time.Hour / time.Second)

type contextKey struct{}

// Detect returns a middleware that resolves the request locale and stores it
// in the request context for FromContext. An explicit query parameter is
// honored as parsed even when it is not listed in Supported; downstream
// resolution walks the locale's parent chain as usual, so an unserved choice
// degrades to the default-locale messages instead of failing.
//
// Panics when config.Supported is empty.
func Detect(config Config) Middleware {
	if len(config.Supported) == 0 {
		panic("httplocale: config requires at least one supported locale")
	}
	if config.QueryParam == "" {
		config.QueryParam = "lang"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code, explicit := resolve(r, config)
			if explicit && config.CookieName != "" {
				http.SetCookie(w, &http.Cookie{
					Name:     config.CookieName,
					Value:    code.String(),
					Path:     "/",
					MaxAge:   cookieMaxAge,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), code)))
		})
	}
}

// resolve picks the locale for a single request. The bool reports whether an
// explicit query parameter made the choice, which is what gets persisted.
func resolve(r *http.Request, config Config) (locale.Code, bool) {
	if value := strings.TrimSpace(r.URL.Query().Get(config.QueryParam)); value != "" {
		if code, err := locale.Parse(value); err == nil {
			return code, true
		}
	}

	if config.CookieName != "" {
		if cookie, err := r.Cookie(config.CookieName); err == nil {
			if code, err := locale.Parse(cookie.Value); err == nil {
				return code, false
			}
		}
	}

	if header := strings.TrimSpace(r.Header.Get("Accept-Language")); header != "" {
		if code := locale.Negotiate(header, config.Supported); code != "" {
			return code, false
		}
	}

	return config.Supported[0], false
}

// NewContext returns a context carrying the given locale code.
func NewContext(ctx context.Context, code locale.Code) context.Context {
	return context.WithValue(ctx, contextKey{}, code)
}

// FromContext returns the locale code stored by Detect and whether one is
// present.
func FromContext(ctx context.Context) (locale.Code, bool) {
	code, ok := ctx.Value(contextKey{}).(locale.Code)
	return code, ok
}
