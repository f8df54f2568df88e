// Package transport 执行单次 HTTP 调用，并把所有失败统一为 apierrors.Error。
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/aegis-sign/monobank/pkg/apierrors"
)

// maxBodySize 限制单个响应体读取量。
const maxBodySize = 10 << 20

const codeTransportError = "transport_error"

// Config 控制 Client 行为。
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Header 为每个请求都携带的静态头（X-Token / X-Key-Id）。
	Header     http.Header
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Metrics    *Metrics
	Logger     *slog.Logger
}

// Request 描述一次 API 调用。
type Request struct {
	Method string
	// Path 为已解析的资源路径，例如 /personal/statement/0/1/2。
	Path string
	// Endpoint 为路径模板，仅用于指标与日志标签。
	Endpoint string
	Header   http.Header
	Body     any
}

// Response 为 2xx 响应。
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Client 是无状态的 HTTP 执行器，可并发使用。
type Client struct {
	baseURL string
	header  http.Header
	http    *http.Client
	limiter *rate.Limiter
	metrics *Metrics
	logger  *slog.Logger
}

// New 构造 Client。
func New(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", cfg.BaseURL)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		header:  cfg.Header.Clone(),
		http:    httpClient,
		limiter: cfg.Limiter,
		metrics: cfg.Metrics,
		logger:  logger,
	}, nil
}

// Do 执行请求。非 2xx 响应与传输失败都会转换为唯一的 *apierrors.Error。
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	endpoint := req.Endpoint
	if endpoint == "" {
		endpoint = req.Path
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, apierrors.FromTransport(err)
		}
	}
	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return nil, apierrors.FromTransport(err)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.observe(endpoint, req.Method, codeTransportError, time.Since(start))
		c.logger.Warn("monobank request failed",
			slog.String("method", req.Method),
			slog.String("endpoint", endpoint),
			slog.Any("err", err))
		return nil, apierrors.FromTransport(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	duration := time.Since(start)
	c.metrics.observe(endpoint, req.Method, strconv.Itoa(resp.StatusCode), duration)
	if err != nil {
		return nil, apierrors.FromTransport(fmt.Errorf("read response body: %w", err))
	}
	c.logger.Debug("monobank request",
		slog.String("method", req.Method),
		slog.String("endpoint", endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", duration))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := apierrors.FromResponse(resp.StatusCode, errorDescription(body), parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()))
		c.logger.Warn("monobank api error",
			slog.String("endpoint", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("code", string(apiErr.Code)),
			slog.String("description", apiErr.Message))
		return nil, apiErr
	}
	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: body}, nil
}

// DoJSON 执行请求并把响应体解码到 out；空响应体或 null 保持 out 不变。
func (c *Client) DoJSON(ctx context.Context, req Request, out any) (*Response, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return resp, nil
	}
	trimmed := bytes.TrimSpace(resp.Body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return resp, nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return nil, apierrors.Wrap(apierrors.CodeUndefinedAPIError, "malformed response body", err)
	}
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, body)
	if err != nil {
		return nil, err
	}
	for key, values := range c.header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	for key, values := range req.Header {
		httpReq.Header.Del(key)
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	return httpReq, nil
}

type errorBody struct {
	ErrorDescription string `json:"errorDescription"`
}

// errorDescription 从错误响应体中提取 errorDescription，解析失败返回空串。
func errorDescription(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return strings.TrimSpace(eb.ErrorDescription)
}

// parseRetryAfter 支持秒数与 HTTP-date 两种格式。
func parseRetryAfter(value string, now time.Time) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds <= 0 {
			return 0
		}
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
