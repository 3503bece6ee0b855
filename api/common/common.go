package common

import (
	"errors"
	"net/http"

	"github.com/anoixa/label-bed/internal/apperrors"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status string      `json:"status"`
	Msg    string      `json:"msg"`
	Data   interface{} `json:"data,omitempty"`
}

func Respond(c *gin.Context, httpStatus int, status string, message string, data interface{}) {
	c.JSON(httpStatus, Response{
		Status: status,
		Msg:    message,
		Data:   data,
	})
}

// RespondSuccess sends a success response with data.
func RespondSuccess(c *gin.Context, data interface{}) {
	Respond(c, http.StatusOK, "success", "", data)
}

// RespondSuccessMessage sends a success response with message and data.
func RespondSuccessMessage(c *gin.Context, message string, data interface{}) {
	Respond(c, http.StatusOK, "success", message, data)
}

// RespondError sends an error response with message.
func RespondError(c *gin.Context, httpStatus int, message string) {
	Respond(c, httpStatus, "error", message, nil)
}

// RespondErrorAbort sends an error response and aborts the request chain.
func RespondErrorAbort(c *gin.Context, httpStatus int, message string) {
	RespondError(c, httpStatus, message)
	c.Abort()
}

// RespondAppError 将错误分类映射为 HTTP 状态码
// 400 validation / 401 auth / 404 not-found / 409 conflict / 500 其他
func RespondAppError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		RespondError(c, http.StatusConflict, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "internal server error")
	}
}
