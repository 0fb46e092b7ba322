package httperr

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Response is the error payload shape reservation clients consume.
type Response struct {
	HTTPStatus int       `json:"httpStatus"`
	Message    string    `json:"message"`
	ErrorCode  string    `json:"errorCode"`
	Timestamp  time.Time `json:"timestamp"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, code, msg string) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		HTTPStatus: status,
		Message:    msg,
		ErrorCode:  code,
		Timestamp:  time.Now().UTC(),
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
