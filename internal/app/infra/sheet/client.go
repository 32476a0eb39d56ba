package sheet

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Row 表格原始行：键为两种语言/带引号变体混杂的松散字段名
type Row map[string]interface{}

// Client 表格 API 客户端（Apps Script exec 端点）
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient 创建客户端实例
func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchRows 拉取全部订单行
// 带 t=当前毫秒时间戳 参数绕过中间层缓存
func (c *Client) FetchRows(ctx context.Context) ([]Row, error) {
	u := fmt.Sprintf("%s?t=%s", c.endpoint, strconv.FormatInt(time.Now().UnixMilli(), 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status: %d, body: %s", resp.StatusCode, string(body))
	}

	var rows []Row
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}

	return rows, nil
}

// Push 以查询串形式提交变更请求（表格侧脚本按 action 参数分发）
// 响应体不向调用方暴露，只校验请求是否送达
func (c *Client) Push(ctx context.Context, params url.Values) error {
	u := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	// 丢弃响应内容，保持连接可复用
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
