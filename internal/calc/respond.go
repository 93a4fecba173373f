package calc

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"physiquist/internal/formula"
)

// ErrorBody is the JSON body of every failed API call.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("write response")
	}
}

// WriteError maps calculation errors to a status code and writes them as JSON.
func WriteError(w http.ResponseWriter, err error) {
	WriteJSON(w, StatusOf(err), ErrorBody{Error: err.Error(), Kind: formula.KindName(err)})
}

// Request body limits. Larger bodies are answered with 413.
const (
	MaxBodyBytes   = 1 << 20
	MaxUploadBytes = 10 << 20
)

// ReadJSON decodes the request body into v, reading at most MaxBodyBytes. On failure
// it writes the error response and returns false.
func ReadJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		BodyError(w, err, "Invalid request payload")
		return false
	}
	return true
}

// BodyError answers 413 when err comes from an oversized body and 400 with msg
// otherwise.
func BodyError(w http.ResponseWriter, err error, msg string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		WriteJSON(w, http.StatusRequestEntityTooLarge, ErrorBody{Error: "Request body too large"})
		return
	}
	BadRequest(w, msg)
}

// BadRequest writes a plain client error such as an undecodable payload.
func BadRequest(w http.ResponseWriter, msg string) {
	WriteJSON(w, http.StatusBadRequest, ErrorBody{Error: msg})
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, formula.ErrUnknownFormula):
		return http.StatusNotFound
	case errors.Is(err, formula.ErrDivisionUndefined), errors.Is(err, formula.ErrOutOfDomain):
		return http.StatusUnprocessableEntity
	case formula.KindName(err) != "":
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
