package util

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

func BuildDbHTTPErr(err error) *HTTPError {
	logrus.WithError(err).Error("database error occurred")
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "database error",
	}
}

func BuildJSONBindHTTPErr(err error) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: err.Error(),
	}
}

// HandleMidStreamError deals with a failure after response headers may have
// already been written (streamed CSV exports). If nothing went out yet it
// still sends a proper error envelope.
func HandleMidStreamError(c *gin.Context) {
	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "export failed",
		})
		return
	}
	c.Abort()
}

type Handler func(c *gin.Context) (interface{}, *HTTPError)

type HandlerOpts struct{}

// HandlerWrapper adapts a data-or-error handler into a gin handler emitting
// the standard response envelope.
func HandlerWrapper(handler Handler, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, httpErr := handler(c)
		if httpErr != nil {
			c.JSON(httpErr.Status, gin.H{
				"success": false,
				"message": httpErr.Message,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    data,
		})
	}
}
