package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError writes the API error envelope with the correct Content-Type.
// Auth gate failures always carry the "unauthorized" code.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   msg,
		"code":    "unauthorized",
	})
}
