package mobygames

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork 传输失败或非 2xx 响应
	ErrNetwork = errors.New("network error")
	// ErrDecode 响应体不是合法 JSON 或缺少预期字段
	ErrDecode = errors.New("decode error")
)

// StatusError MobyGames 返回非 2xx 状态码
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API error: status %d, body: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return ErrNetwork
}
