package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the error body returned by the search endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ClickResponse is the body returned by the click endpoint. The click
// endpoint always answers 200; the outcome is carried in Status.
type ClickResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the body returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// OK sends a 200 response with the given body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorResponse{Error: message})
}

// BadRequest sends a 400 error response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// BadGateway sends a 502 error response for upstream dependency failures.
func BadGateway(c *gin.Context, message string) {
	Error(c, http.StatusBadGateway, message)
}

// ClickSuccess sends the click-recorded acknowledgement.
func ClickSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, ClickResponse{Status: "success", Message: message})
}

// ClickError sends a click failure. The status code stays 200; clients
// inspect the status field.
func ClickError(c *gin.Context, message string) {
	c.JSON(http.StatusOK, ClickResponse{Status: "error", Message: message})
}

// Healthy sends the health check body.
func Healthy(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}
