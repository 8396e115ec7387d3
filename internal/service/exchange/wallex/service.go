package wallex

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "https://api.wallex.ir/v1/"
	DefaultTimeout = 10 * time.Second
)

// Client 是 Wallex 公共 REST 接口的最小封装
type Client struct {
	baseURL string
	httpCli *http.Client
	timeout time.Duration
}

type Option func(c *Client)

func WithHTTPClient(cli *http.Client) Option {
	return func(c *Client) {
		c.httpCli = cli
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		httpCli: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	// 复制一份, 不改动调用方传入的 client
	httpCli := http.Client{}
	if c.httpCli != nil {
		httpCli = *c.httpCli
	}
	switch {
	case c.timeout > 0:
		httpCli.Timeout = c.timeout
	case httpCli.Timeout == 0:
		httpCli.Timeout = DefaultTimeout
	}
	c.httpCli = &httpCli
	return c
}

// apiResponse is the envelope every Wallex v1 endpoint uses.
type apiResponse[T any] struct {
	Result  T      `json:"result"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, result any) error {
	u, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpCli.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("request %s: unexpected status %d: %s", path, resp.StatusCode, body)
	}

	dec := json.NewDecoder(resp.Body)
	// 保留数字精度, 交给 decimalx 解析
	dec.UseNumber()
	if err := dec.Decode(result); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
