package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookstore-api/pkg/errors"
)

// Response 错误响应结构
// 设计说明：
// 1. 成功时直接返回业务数据（数组或对象），与既有客户端的数据形状保持一致
// 2. 失败时返回 {code, message}，Code是业务错误码
// 3. HTTP状态码由AppError.HTTPStatus()决定
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MessageBody 只包含message字段的响应
type MessageBody struct {
	Message string `json:"message"`
}

// Success 成功响应，直接输出数据
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 成功响应，输出 {"message": msg}
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageBody{Message: msg})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	result, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 内部原因只进日志
	if appErr.Err != nil || status >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Int("code", appErr.Code),
			zap.Error(appErr),
		)
	}

	c.JSON(status, Response{
		Code:    appErr.Code,
		Message: appErr.Message,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

// BindError 参数绑定/校验失败
func BindError(c *gin.Context, err error) {
	ErrorWithCode(c, apperrors.ErrCodeBindError, "Invalid request: "+err.Error())
}
