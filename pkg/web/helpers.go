package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"google.golang.org/grpc/codes"
)

// XAdminId carries the identifier of the administrator performing a write.
const XAdminId = "X-Admin-Id"

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, map[string]string{"error": message})
}

// RespondCodeError writes an error body carrying both the message and the code name.
func RespondCodeError(w http.ResponseWriter, logger *slog.Logger, code codes.Code, message string) {
	RespondJSON(w, logger, HTTPStatus(code), map[string]string{"error": message, "code": code.String()})
}

// AdminID returns the administrator identifier sent with the request. Validation is left to the caller.
func AdminID(r *http.Request) string {
	return r.Header.Get(XAdminId)
}

// HTTPStatus maps a gRPC code to the HTTP status that represents it.
func HTTPStatus(code codes.Code) int {
	switch code {
	case codes.OK:
		return http.StatusOK
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound:
		return http.StatusNotFound
	case codes.AlreadyExists, codes.FailedPrecondition:
		return http.StatusConflict
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
