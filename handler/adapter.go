package handler

import (
	"net/http"

	"github.com/go-kyugo/usersvc/logger"
	"github.com/go-kyugo/usersvc/request"
	"github.com/go-kyugo/usersvc/response"
)

// Func is the shape every controller action has: it returns the success
// payload or an error for the error mapper.
type Func func(*request.Request) (interface{}, error)

// Adapt converts a Func into a standard http.HandlerFunc. A nil error writes
// the payload with 200; any error is projected through response.WriteError.
func Adapt(h Func) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := request.New(r)
		v, err := h(req)
		if err != nil {
			apiErr := response.WriteError(w, err)
			f := logger.Fields{
				"method": req.Method(),
				"path":   req.Path(),
				"kind":   apiErr.Kind().String(),
				"status": apiErr.Status(),
			}
			if id := req.ID(); id != "" {
				f["request_id"] = id
			}
			if apiErr.Kind() == response.KindInternal {
				f["error"] = err.Error()
				logger.Error("Handler.Failed", f)
			} else {
				logger.Debug("Handler.Rejected", f)
			}
			return
		}
		response.Success(w, v)
	}
}
