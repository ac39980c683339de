package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/tuanvumaihuynh/catalog-service/internal/http/apierr"
)

// responder writes JSON responses and maps errors to the wire contract.
// It is shared by all handlers so error logging stays in one place.
type responder struct {
	logger *slog.Logger
}

func (rd responder) JSON(w http.ResponseWriter, r *http.Request, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		rd.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

func (rd responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	rd.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	rd.JSON(w, r, res.StatusCode, res)
}

// successResponse is the body of delete operations.
type successResponse struct {
	Success bool `json:"success"`
}
