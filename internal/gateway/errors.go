package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError is a server-rejected request: the server's status code plus
// whatever message it sent. Transport failures are returned as plain
// wrapped errors, not APIErrors.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// IsAuthRejection reports whether the server refused the credentials.
func (e *APIError) IsAuthRejection() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// errorBody covers the two error shapes the backend emits: a flat
// {"message": ...} and an enveloped {"error": {"code", "message"}}.
type errorBody struct {
	Message string `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// newAPIError builds an APIError from a non-2xx response body.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
	}
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != nil && parsed.Error.Message != "" {
			apiErr.Code = parsed.Error.Code
			apiErr.Message = parsed.Error.Message
		} else if parsed.Message != "" {
			apiErr.Message = parsed.Message
		}
	}
	return apiErr
}
