package monobank

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/aegis-sign/monobank/pkg/signer"
)

// Option 配置客户端。
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
	registerer prometheus.Registerer
	clock      Clock
	limiter    *rate.Limiter
	signer     *signer.Signer
}

// WithHTTPClient 使用自定义 http.Client，此时 Config.Timeout 由调用方自行设置。
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) { o.httpClient = c }
}

// WithLogger 指定日志输出。
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegisterer 启用 Prometheus 指标并注册到 reg。
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// WithClock 替换时间来源。
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithRateLimiter 在每次请求前等待 limiter，优先于 Config.RateLimit。
func WithRateLimiter(l *rate.Limiter) Option {
	return func(o *options) { o.limiter = l }
}

// WithSigner 为 corporate 客户端注入已加载的 Signer，此时忽略 Config.PrivateKey。
func WithSigner(s *signer.Signer) Option {
	return func(o *options) { o.signer = s }
}

func buildOptions(cfg Config, opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.clock == nil {
		o.clock = realClock{}
	}
	if o.limiter == nil && cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		o.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}
	return o
}
