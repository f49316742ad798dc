package api

// APIError is a server-reported failure: the request completed but the
// status was outside the 2xx range. Message holds the most specific
// explanation the response offered (JSON message field, raw text body, or
// the HTTP status text, in that order of preference).
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}
