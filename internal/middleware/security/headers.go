// Package security provides response hardening middleware for the JSON API.
package security

import "net/http"

// HeadersConfig holds the headers applied to every response.
type HeadersConfig struct {
	// CORS settings. The API is consumed by browser frontends on other
	// origins, so the default allows all of them.
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string

	// Additional security headers
	XFrameOptions       string
	XContentTypeOptions string
	ReferrerPolicy      string
}

// DefaultHeadersConfig returns secure defaults for a public JSON API.
func DefaultHeadersConfig() HeadersConfig {
	return HeadersConfig{
		AllowOrigin:         "*",
		AllowMethods:        "GET, POST, OPTIONS",
		AllowHeaders:        "Content-Type",
		XFrameOptions:       "DENY",
		XContentTypeOptions: "nosniff",
		ReferrerPolicy:      "no-referrer",
	}
}

// Headers applies config to every response and answers CORS preflight
// requests without forwarding them to the handler.
func Headers(config HeadersConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			setIfPresent(h, "Access-Control-Allow-Origin", config.AllowOrigin)
			setIfPresent(h, "Access-Control-Allow-Methods", config.AllowMethods)
			setIfPresent(h, "Access-Control-Allow-Headers", config.AllowHeaders)
			setIfPresent(h, "X-Frame-Options", config.XFrameOptions)
			setIfPresent(h, "X-Content-Type-Options", config.XContentTypeOptions)
			setIfPresent(h, "Referrer-Policy", config.ReferrerPolicy)

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func setIfPresent(h http.Header, key, value string) {
	if value != "" {
		h.Set(key, value)
	}
}
