package util

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

// WriteMessage writes the {"message": ...} body every error and
// acknowledgement uses.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

// WriteError logs err and answers with message. When detail is set the
// error text is included under "error".
func WriteError(w http.ResponseWriter, r *http.Request, status int, message string, err error, detail bool) {
	zap.L().Error(message,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	body := map[string]string{"message": message}
	if detail && err != nil {
		body["error"] = err.Error()
	}
	WriteJSON(w, status, body)
}
