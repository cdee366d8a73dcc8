package sdk

import "fmt"

// APIError is a request the server processed but refused, carrying the
// server-supplied message (for example "username already exists").
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return e.Message
}

// StatusError is a non-2xx HTTP response without a usable success envelope.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}
