package apierrors

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

// Code 表示 SDK 统一错误类型。
type Code string

const (
	CodeInvalidPrivateKey      Code = "INVALID_PRIVATE_KEY"
	CodeInvalidPermissionValue Code = "INVALID_PERMISSION_VALUE"
	CodeInvalidRequestParams   Code = "INVALID_REQUEST_PARAMS"
	CodeUnauthorizedRequest    Code = "UNAUTHORIZED_REQUEST"
	CodeAccessForbidden        Code = "ACCESS_FORBIDDEN"
	CodeNotFound               Code = "NOT_FOUND"
	CodeTooManyRequests        Code = "TOO_MANY_REQUESTS"
	CodeUndefinedAPIError      Code = "UNDEFINED_API_ERROR"
)

// statusCodeMap 是唯一的 HTTP 状态 → 错误类型映射表。
var statusCodeMap = map[int]Code{
	http.StatusBadRequest:      CodeInvalidRequestParams,
	http.StatusUnauthorized:    CodeUnauthorizedRequest,
	http.StatusForbidden:       CodeAccessForbidden,
	http.StatusNotFound:        CodeNotFound,
	http.StatusTooManyRequests: CodeTooManyRequests,
}

// Error 表示带统一错误类型的 SDK 错误。
type Error struct {
	Code    Code
	Message string
	// Status 为远端返回的 HTTP 状态码，本地校验错误为 0。
	Status int

	cause      error
	retryAfter time.Duration
}

// New 创建一个新的错误，message 为空时使用该类型的默认描述。
func New(code Code, message string) *Error {
	if message == "" {
		message = DefaultMessage(code)
	}
	return &Error{Code: code, Message: message}
}

// Wrap 创建携带底层原因的错误。
func Wrap(code Code, message string, cause error) *Error {
	e := New(code, message)
	e.cause = cause
	return e
}

// WithRetryAfter 设置 Retry-After 提示，返回自身方便链式调用。
func (e *Error) WithRetryAfter(d time.Duration) *Error {
	e.retryAfter = d
	return e
}

// RetryAfter 返回远端建议的等待时长，未提供时为 0。
func (e *Error) RetryAfter() time.Duration {
	if e == nil {
		return 0
	}
	return e.retryAfter
}

// RetryAfterHint 以秒为单位返回 Retry-After 提示文本。
func (e *Error) RetryAfterHint() string {
	if e == nil || e.retryAfter <= 0 {
		return ""
	}
	seconds := int((e.retryAfter + time.Second - 1) / time.Second)
	if seconds <= 0 {
		seconds = 1
	}
	return strconv.Itoa(seconds)
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Code)
}

// Unwrap 暴露底层原因，便于 errors.Is / errors.As。
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// FromError 尝试从通用 error 中解析 SDK 错误。
func FromError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Is 判断 err 链上是否存在指定类型的 SDK 错误。
func Is(err error, code Code) bool {
	apiErr, ok := FromError(err)
	return ok && apiErr.Code == code
}

// FromStatus 将 HTTP 状态码映射为错误类型，未登记的状态统一视为 UNDEFINED_API_ERROR。
func FromStatus(status int) Code {
	if code, ok := statusCodeMap[status]; ok {
		return code
	}
	return CodeUndefinedAPIError
}

// FromResponse 根据非 2xx 响应构造错误，description 为空时回落到默认描述。
func FromResponse(status int, description string, retryAfter time.Duration) *Error {
	e := New(FromStatus(status), description)
	e.Status = status
	if e.Code == CodeTooManyRequests && retryAfter > 0 {
		e.retryAfter = retryAfter
	}
	return e
}

// FromTransport 将非 HTTP 的传输失败（超时、连接失败、取消）包装为 UNDEFINED_API_ERROR。
func FromTransport(err error) *Error {
	return Wrap(CodeUndefinedAPIError, transportMessage, err)
}

const transportMessage = "Something went wrong"

// DefaultMessage 返回每种错误类型的通用描述。
func DefaultMessage(code Code) string {
	switch code {
	case CodeInvalidPrivateKey:
		return "Invalid private key"
	case CodeInvalidPermissionValue:
		return "Invalid permission value"
	case CodeInvalidRequestParams:
		return "Invalid request"
	case CodeUnauthorizedRequest:
		return "Unauthorized request"
	case CodeAccessForbidden:
		return "Access forbidden"
	case CodeNotFound:
		return "Not found"
	case CodeTooManyRequests:
		return "Too many requests"
	case CodeUndefinedAPIError:
		return "Unclassified API error"
	default:
		return string(code)
	}
}

