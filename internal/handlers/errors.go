package handlers

import "github.com/danielgtaylor/huma/v2"

// ErrorModel is the error response body: {"error": "..."}. Duplicate-target
// conflicts additionally carry the pre-existing short code so clients can
// reuse it.
type ErrorModel struct {
	status int

	Message      string `doc:"Human-readable error message" json:"error"`
	GeneratedURI string `doc:"Existing short code for an already-shortened URL" json:"generated_uri,omitempty"`
}

func (e *ErrorModel) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *ErrorModel) GetStatus() int {
	return e.status
}

// ContentType implements huma.ContentTypeFilter; errors are plain JSON
// rather than problem+json.
func (e *ErrorModel) ContentType(string) string {
	return "application/json"
}

// NewError builds the service-wide error model. It is installed as
// huma.NewError so framework-generated errors share the same shape.
func NewError(status int, message string, _ ...error) huma.StatusError {
	return &ErrorModel{status: status, Message: message}
}
