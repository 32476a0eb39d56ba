package errorx

import "errors"

// 定义业务错误
var (
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCustomer = errors.New("customer name cannot be empty")
	ErrCacheMiss     = errors.New("cache entry not found")
	ErrStaleSync     = errors.New("sync skipped: last sync is recent enough")
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}
