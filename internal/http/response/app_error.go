package response

import "fmt"

// AppError 携带业务码的错误，展示消息与底层原因分离
type AppError struct {
	Code    int
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.cause)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// WrapError 包装错误
func WrapError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, cause: err}
}
