package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/go-kyugo/usersvc/config"
)

var defaultMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}

// CORS returns a go-chi/cors middleware built from the server cors config.
// Empty lists fall back to any origin and read-only methods.
func CORS(c config.CorsConfig) func(http.Handler) http.Handler {
	origins := c.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	methods := c.AllowedMethods
	if len(methods) == 0 {
		methods = defaultMethods
	}
	headers := c.AllowedHeaders
	if len(headers) == 0 {
		headers = []string{"Accept", "Content-Type", "X-Request-Id"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: methods,
		AllowedHeaders: headers,
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         c.MaxAgeSeconds,
	})
}
