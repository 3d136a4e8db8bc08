package deepl

import "fmt"

// apiErrorMessages maps the endpoint's JSONRPC error codes to readable
// text.
var apiErrorMessages = map[int]string{
	-32600:  "invalid request",
	1042911: "too many requests",
	1042912: "too many requests",
	1156049: "invalid request",
}

// APIError is a JSONRPC-level error returned by the endpoint.
type APIError struct {
	Code int
}

func (e *APIError) Error() string {
	if msg, ok := apiErrorMessages[e.Code]; ok {
		return fmt.Sprintf("deepl: %s (code %d)", msg, e.Code)
	}
	return fmt.Sprintf("deepl: error code %d", e.Code)
}
