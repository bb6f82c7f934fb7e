package loyalty

import (
	"github.com/pitstop-dev/loyalty-gateway/internal/constants"
	"github.com/pitstop-dev/loyalty-gateway/internal/graphql"
)

// RemoteError 上游错误信息
type RemoteError struct {
	Message string                 `json:"message"`
	Code    string                 `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Result 统一请求结果信封
// 所有远端调用（包括传输失败、超时、GraphQL 错误、载荷缺失）都归一化到
// 这一种形状，调用方不需要区分传输错误与业务错误。
// Success 为 false 时 Data 视为不存在，Error 保证非空。
type Result[T any] struct {
	Success       bool            `json:"success"`
	Data          *T              `json:"data,omitempty"`
	Message       string          `json:"message,omitempty"`
	Error         *RemoteError    `json:"error,omitempty"`
	GraphQLErrors []graphql.Error `json:"graphQLErrors,omitempty"`
}

// Ok 构造成功结果
func Ok[T any](data *T) *Result[T] {
	return &Result[T]{
		Success: true,
		Data:    data,
	}
}

// Fail 构造失败结果
// message 为空时使用 code 兜底，保证失败结果总带有可展示的错误信息。
func Fail[T any](code, message string, gqlErrors []graphql.Error) *Result[T] {
	if message == "" {
		if len(gqlErrors) > 0 && gqlErrors[0].Message != "" {
			message = gqlErrors[0].Message
		} else {
			message = code
		}
	}
	if code == "" {
		code = constants.RemoteCodeGraphQLError
	}
	return &Result[T]{
		Success: false,
		Error: &RemoteError{
			Message: message,
			Code:    code,
		},
		GraphQLErrors: gqlErrors,
	}
}

// ErrorMessage 取可展示的错误信息
func (r *Result[T]) ErrorMessage() string {
	if r == nil {
		return ""
	}
	if r.Error != nil && r.Error.Message != "" {
		return r.Error.Message
	}
	if len(r.GraphQLErrors) > 0 {
		return r.GraphQLErrors[0].Message
	}
	return ""
}

// ErrorCode 取错误码，无错误时返回空串
func (r *Result[T]) ErrorCode() string {
	if r == nil || r.Error == nil {
		return ""
	}
	return r.Error.Code
}
