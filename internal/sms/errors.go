package sms

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx answer from the OTP provider. Body keeps the raw
// provider payload so handlers can pass it through unmodified.
type APIError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("otp provider error: status %d: %s", e.StatusCode, string(e.Body))
}
