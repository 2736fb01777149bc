package utils

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Envelope mirrors the marketplace API response contract so the page shell
// can unwrap gateway responses and upstream passthroughs the same way.
type Envelope struct {
	Timestamp time.Time   `json:"timestamp"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Errors    []string    `json:"errors"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func WriteSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	WriteJSON(w, status, Envelope{
		Timestamp: time.Now(),
		Success:   true,
		Message:   message,
		Data:      data,
		Errors:    []string{},
	})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{
		Timestamp: time.Now(),
		Success:   false,
		Message:   message,
		Errors:    []string{},
	})
}
