package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mcoot/leaguebot-go/internal/api/apierr"
)

// WriteJSON writes v as a JSON body with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response body", slog.Any("error", err))
	}
}

// WriteNoContent writes an empty 204 response.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteError maps err onto an HTTP error response.
func WriteError(w http.ResponseWriter, err error) {
	httpErr := apierr.ToHTTPError(err)
	WriteJSON(w, httpErr.StatusCode, ErrorResponse{
		Code:    httpErr.Code,
		Message: httpErr.Message,
	})
}
