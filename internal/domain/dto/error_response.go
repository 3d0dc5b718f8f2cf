package dto

import "time"

// ErrorResponse is the JSON body of every non-2xx response.
//
// The "error" key carries the client-facing message; details holds the
// underlying error text when there is one.
type ErrorResponse struct {
	Message      string    `json:"error" example:"No data found for the given parameters"`
	ErrorDetails string    `json:"details,omitempty" example:"month 13 out of range"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}
