package response

import (
	"net/http"

	json "github.com/goccy/go-json"
)

// JSON writes v with the given status as an application/json body.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Success writes v with 200 OK.
func Success(w http.ResponseWriter, v interface{}) {
	JSON(w, http.StatusOK, v)
}
