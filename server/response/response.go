package response

import (
	goerrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	errs "github.com/priyanshusingh1234/spell/errors"
)

// JSON is the single responder every handler funnels through. Errors
// always surface as a message string; no stack traces reach clients.
func JSON(c *gin.Context, message string, status int, data interface{}, err error) {
	errMessage := ""
	if err != nil {
		var e *errs.Error
		if goerrors.As(err, &e) {
			errMessage = e.Message
		} else {
			errMessage = err.Error()
		}
	}
	if message == "" {
		errMessage, message = "", errMessage
	}

	responsedata := gin.H{
		"message": message,
		"data":    data,
		"errors":  errMessage,
		"status":  http.StatusText(status),
	}

	c.JSON(status, responsedata)
}
