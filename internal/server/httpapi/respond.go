package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/reddsec/scoreboard/internal/common"
)

// writeJSON serializes v with the given status. Encoding failures are
// ignored; the status line is already on the wire.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps a service error to an HTTP status and a JSON error body.
// Validation errors carry their own message; sentinel errors get a fixed
// client-facing message so internals never leak.
func writeError(w http.ResponseWriter, err error) {
	var ve *common.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: ve.Msg})
		return
	}

	switch {
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Not Found"})
	case errors.Is(err, common.ErrorUnauthorized):
		writeJSON(w, http.StatusUnauthorized, errorBody{Error: "incorrect email or password"})
	case errors.Is(err, common.ErrorForbidden):
		writeJSON(w, http.StatusForbidden, errorBody{Error: "authentication failed"})
	case errors.Is(err, common.ErrorEmailTaken):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "this email address is already registered"})
	case errors.Is(err, common.ErrorCodeInvalid):
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "verification code is incorrect or expired"})
	case errors.Is(err, common.ErrorMailDelivery):
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "failed to send the verification email, please try again later"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "server error"})
	}
}
