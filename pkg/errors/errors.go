package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，前三位即HTTP状态码（40401 → 404）
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，只记录日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error 实现error接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus 由业务错误码推导HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch e.Code / 100 {
	case http.StatusBadRequest:
		return http.StatusBadRequest
	case http.StatusUnauthorized:
		return http.StatusUnauthorized
	case http.StatusNotFound:
		return http.StatusNotFound
	case http.StatusConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误（数据库、Redis、MQ等），统一归为内部错误
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// WithCause 复制一个预定义错误并附带底层原因
// 预定义错误是全局变量，不能直接修改其Err字段
func WithCause(base *AppError, cause error) *AppError {
	return &AppError{
		Code:    base.Code,
		Message: base.Message,
		Err:     cause,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：前三位对应HTTP状态码
// - 400xx: 参数错误、业务规则校验失败
// - 401xx: 认证失败
// - 404xx: 资源不存在
// - 409xx: 唯一性冲突
// - 500xx: 服务端错误

const (
	// 系统级错误码
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误
	ErrCodeEventError    = 50003 // 事件发布失败

	// 参数与业务规则错误
	ErrCodeInvalidParams = 40000 // 参数错误(通用)
	ErrCodeBindError     = 40001 // 参数绑定失败
	ErrCodeInvalidRating = 40002 // 评分不合法
	ErrCodeInvalidCount  = 40003 // 记录数不合法
	ErrCodeSoldCopies    = 40004 // 销量不允许减少
	ErrCodeInvalidPrice  = 40005 // 价格不合法
	ErrCodePriceTooLarge = 40006 // 价格超出上限
	ErrCodePasswordLong  = 40007 // 密码超过72字节

	// 认证错误
	ErrCodeUnauthorized       = 40100 // 未登录
	ErrCodeInvalidToken       = 40101 // Token无效
	ErrCodeTokenExpired       = 40102 // Token过期
	ErrCodeInvalidCredentials = 40103 // 用户名或密码错误

	// 资源不存在
	ErrCodeNotFound       = 40400 // 资源不存在(通用)
	ErrCodeUserNotFound   = 40401 // 用户不存在
	ErrCodeBookNotFound   = 40402 // 图书不存在
	ErrCodeAuthorNotFound = 40403 // 作者不存在
	ErrCodeAdminNotFound  = 40404 // 管理员不存在
	ErrCodeShelfEntry     = 40405 // 书架(心愿单/购物车)中没有该书

	// 唯一性冲突
	ErrCodeConflict          = 40900 // 冲突(通用)
	ErrCodeUsernameDuplicate = 40901 // 用户名已存在
	ErrCodeISBNDuplicate     = 40902 // ISBN已存在
	ErrCodeAuthorDuplicate   = 40903 // 作者已存在
	ErrCodeShelfDuplicate    = 40904 // 书架中已有该书
)

// =========================================
// 预定义错误
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "Internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error")
	ErrRedisError    = New(ErrCodeRedisError, "Session store error")

	// 认证
	ErrUnauthorized       = New(ErrCodeUnauthorized, "Please log in first")
	ErrInvalidToken       = New(ErrCodeInvalidToken, "Invalid token")
	ErrTokenExpired       = New(ErrCodeTokenExpired, "Token expired")
	ErrInvalidCredentials = New(ErrCodeInvalidCredentials, "Incorrect username or password")

	// 参数
	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid parameters")
	ErrBindError     = New(ErrCodeBindError, "Malformed request body")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal server error")
}

// HasCode 判断错误链上是否存在指定业务码的AppError
func HasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
