package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

var (
	ErrEndpointMissing = errors.New("graphql endpoint missing")
	ErrRequestFailed   = errors.New("graphql request failed")
	ErrResponseInvalid = errors.New("graphql response invalid")
)

const defaultTimeout = 8 * time.Second

// Request GraphQL 请求体
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// Error GraphQL 错误项
type Error struct {
	Message    string `json:"message"`
	Path       []any  `json:"path,omitempty"`
	Extensions struct {
		Code string `json:"code"`
	} `json:"extensions"`
}

// Response GraphQL 响应体
// Data 保留原始 JSON，由上层按操作做强类型解码。
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

// Client GraphQL HTTP 客户端
// 只负责传输与响应解包，不包含重试、缓存或业务逻辑。
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient 创建 GraphQL 客户端
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Execute 执行一次查询或变更
// token 为空时以匿名身份请求（例如配置查询、链接预览）。
func (c *Client) Execute(ctx context.Context, token string, request Request) (*Response, error) {
	if c == nil || strings.TrimSpace(c.endpoint) == "" {
		return nil, ErrEndpointMissing
	}
	if strings.TrimSpace(request.Query) == "" {
		return nil, fmt.Errorf("%w: empty query", ErrRequestFailed)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBytes, err := io.ReadAll(io.LimitReader(httpResp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrRequestFailed, err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRequestFailed, httpResp.StatusCode)
	}

	var response Response
	if err := json.Unmarshal(respBytes, &response); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResponseInvalid, err)
	}
	return &response, nil
}

// IsTimeout 判断错误是否为超时/中止
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

// DecodeData 将响应 Data 强类型解码到目标结构
// 上游缺字段或形状不符时返回错误，保证服务层只处理合法载荷。
func DecodeData(response *Response, dest interface{}) error {
	if response == nil || len(response.Data) == 0 || string(response.Data) == "null" {
		return fmt.Errorf("%w: missing data", ErrResponseInvalid)
	}
	decoder := json.NewDecoder(bytes.NewReader(response.Data))
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("%w: decode data: %v", ErrResponseInvalid, err)
	}
	return nil
}
