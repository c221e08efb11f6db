package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/sergiorueda9090/camilo/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr

	// For unexpected errors, log and return generic internal error
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		r.WriteJSON(w, map[string]any{
			"error":  "internal server error",
			"status": "error",
		})
		return
	}

	response := map[string]any{
		"error":  apiErr.Error(),
		"status": "error",
	}

	if apiErr.Field != "" {
		response["field"] = apiErr.Field
	}
	if apiErr.Details != "" {
		response["details"] = apiErr.Details
	}
	if apiErr.Cause != nil {
		r.logger.Error().Str("cause", apiErr.GetFullError()).Msg("request failed")
	}

	w.WriteHeader(apiErr.StatusCode)
	r.WriteJSON(w, response)
}
