package errors

import (
	"fmt"
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
)

// Error carries a client-facing message together with the HTTP status
// that should accompany it. Handlers forward it untouched to the
// response package; nothing else ever reaches a client.
type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

var (
	ErrNotFound            = New("resource not found", http.StatusNotFound)
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrUnauthorized        = New("unauthorized", http.StatusUnauthorized)
	ErrForbidden           = New("forbidden", http.StatusForbidden)
	ErrInvalidPassword     = New("Invalid email or password.", http.StatusUnprocessableEntity)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
)

func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

// ErrorHandler is handed to the rate-limit middleware for requests that
// exceed the configured rate.
func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"message": fmt.Sprintf("Too many requests. Try again in %s", time.Until(info.ResetTime).Round(time.Second)),
	})
}
