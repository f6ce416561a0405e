package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shrimpsizemoose/trekker/logger"
)

const msgInvalidBody = "Invalid request body."

var validate = validator.New()

type dataEnvelope struct {
	Data any `json:"data"`
}

type messageEnvelope struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error.Printf("Failed to encode response: %v", err)
	}
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, dataEnvelope{Data: data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageEnvelope{Message: message})
}

// decodeBody reads a JSON body into dst and runs struct validation on it.
func decodeBody(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	logger.Debug.Printf("Received request body: %s", string(body))

	if err := json.Unmarshal(body, dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}

type validatable interface {
	Validate() error
}

// decodeModel decodes a models type and runs its own Validate.
func decodeModel(r *http.Request, dst validatable) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	logger.Debug.Printf("Received request body: %s", string(body))

	if err := json.Unmarshal(body, dst); err != nil {
		return err
	}
	return dst.Validate()
}

var errBadID = errors.New("path id is not an integer")

func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.PathValue(name))
	if err != nil {
		return 0, errBadID
	}
	return id, nil
}
