package projection

import (
	"net/http"
)

const (
	msgMissingChartData = "Missing chartData"
	msgProjectionFailed = "Failed to project transactions"
)

// ErrorResponse is the {"error": "..."} body returned by the projection
// endpoints. It implements huma.StatusError so huma writes it as-is.
type ErrorResponse struct {
	Message string `json:"error" doc:"Error message"`
	status  int
}

func (e *ErrorResponse) Error() string {
	return e.Message
}

func (e *ErrorResponse) GetStatus() int {
	return e.status
}

func newErrorResponse(status int, message string) *ErrorResponse {
	return &ErrorResponse{Message: message, status: status}
}

func badRequest(message string) *ErrorResponse {
	return newErrorResponse(http.StatusBadRequest, message)
}

func internalError() *ErrorResponse {
	return newErrorResponse(http.StatusInternalServerError, msgProjectionFailed)
}
