package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-kyugo/usersvc/logger"
	"github.com/go-kyugo/usersvc/response"
)

// Recover turns a panic in a downstream handler into the internal error
// envelope. http.ErrAbortHandler is re-panicked so net/http can drop the
// connection as it expects.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.Error("HTTP.Panic", logger.Fields{
				"method": r.Method,
				"path":   r.URL.Path,
				"panic":  fmt.Sprint(rec),
				"stack":  string(debug.Stack()),
			})
			response.WriteError(w, response.Internal())
		}()
		next.ServeHTTP(w, r)
	})
}
