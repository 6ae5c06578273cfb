// Package talentx is a client of the remote TalentX job board REST service.
package talentx

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/spigell/talentx/internal/metrics"
)

const (
	userAgent      = "spigell/talentx"
	defaultTimeout = 10 * time.Second
)

type Config struct {
	BaseURL        string               `mapstructure:"base-url"`
	TokenFile      string               `mapstructure:"token-file"`
	UserAgent      string               `mapstructure:"user-agent"`
	Timeout        time.Duration        `mapstructure:"timeout"`
	RateLimit      RateLimitConfig      `mapstructure:"rate-limit"`
	CircuitBreaker CircuitBreakerConfig `mapstructure:"circuit-breaker"`
}

// RateLimitConfig limits outgoing requests. RPS <= 0 disables the limiter.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type CircuitBreakerConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	MaxRequests  uint32        `mapstructure:"max-requests"`
	Interval     time.Duration `mapstructure:"interval"`
	Timeout      time.Duration `mapstructure:"timeout"`
	MinRequests  uint32        `mapstructure:"min-requests"`
	FailureRatio float64       `mapstructure:"failure-ratio"`
}

type Client struct {
	baseURL   string
	userAgent string
	tokens    TokenSource
	logger    *zap.Logger
	recorder  metrics.Recorder
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[any]

	HTTPClient *http.Client
}

type Option func(*Client)

func WithRecorder(r metrics.Recorder) Option {
	return func(c *Client) {
		if r != nil {
			c.recorder = r
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// New builds a client. tokens may be nil for anonymous access.
func New(cfg Config, tokens TokenSource, logger *zap.Logger, opts ...Option) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if base == "" {
		return nil, fmt.Errorf("remote base url is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = userAgent
	}

	c := &Client{
		baseURL:   base,
		userAgent: ua,
		tokens:    tokens,
		logger:    logger,
		recorder:  metrics.Nop{},
		limiter:   newLimiter(cfg.RateLimit),
		breaker:   newBreaker(cfg.CircuitBreaker, logger),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func newLimiter(cfg RateLimitConfig) *rate.Limiter {
	if cfg.RPS <= 0 {
		return nil
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(cfg.RPS), burst)
}

// newBreaker returns nil when the breaker is disabled. Client errors (4xx) count as
// successes: the service answered, the request was wrong.
func newBreaker(cfg CircuitBreakerConfig, logger *zap.Logger) *gobreaker.CircuitBreaker[any] {
	if !cfg.Enabled {
		return nil
	}

	minRequests := cfg.MinRequests
	if minRequests == 0 {
		minRequests = 5
	}
	ratio := cfg.FailureRatio
	if ratio <= 0 {
		ratio = 0.6
	}

	settings := gobreaker.Settings{
		Name:        "talentx-remote",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= minRequests && failureRatio >= ratio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return apiErr.Status < http.StatusInternalServerError
			}
			return false
		},
	}

	return gobreaker.NewCircuitBreaker[any](settings)
}
