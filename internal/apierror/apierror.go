// Package apierror holds the JSON error envelope of the API endpoints.
// Internal details (driver errors, stack traces) never reach it.
package apierror

// APIError is the body of every 4xx/5xx JSON response.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError adds per-field messages.
type ValidationError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(msg string, fields map[string]string) *ValidationError {
	if msg == "" {
		msg = "Error de validación"
	}
	return &ValidationError{Error: msg, Fields: fields}
}
