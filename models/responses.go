package models

// ErrorResponse is the JSON body of every failed REST call.
type ErrorResponse struct {
	// Error is a human-readable description of the failure. Not-found
	// errors name the offending id.
	Error string `json:"error"`
}
