// Package llm wraps the OpenRouter chat-completions endpoint behind a small
// client with timeouts, bounded retries and a circuit breaker, so advisor
// features degrade instead of hanging when the upstream misbehaves.
package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/noah-isme/engineering-compass-api/pkg/config"
)

// ErrBreakerOpen is returned without touching the network once too many
// consecutive upstream failures have accumulated.
var ErrBreakerOpen = errors.New("text generation circuit breaker open")

// ErrEmptyCompletion is returned when the upstream answers 200 with no
// usable choice content.
var ErrEmptyCompletion = errors.New("empty completion from upstream")

// Message is one chat turn sent to the model.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client calls the chat-completions API. Safe for concurrent use.
type Client struct {
	http       *resty.Client
	logger     *zap.Logger
	model      string
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration

	mu        sync.Mutex
	failures  int
	threshold int
	cooldown  time.Duration
	openedAt  time.Time
	now       func() time.Time
}

// Params configures a Client.
type Params struct {
	Config config.AdvisorConfig
	Logger *zap.Logger
}

// NewClient constructs a chat-completions client from advisor settings.
func NewClient(p Params) *Client {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetBaseURL(p.Config.BaseURL).
		SetTimeout(p.Config.RequestTimeout).
		SetAuthToken(p.Config.APIKey).
		SetHeader("Content-Type", "application/json")
	if p.Config.Referer != "" {
		httpClient.SetHeader("HTTP-Referer", p.Config.Referer)
	}
	if p.Config.Title != "" {
		httpClient.SetHeader("X-Title", p.Config.Title)
	}

	cooldown := p.Config.BreakerCooldown
	if cooldown <= 0 {
		cooldown = 30 * time.Second
	}

	return &Client{
		http:       httpClient,
		logger:     logger,
		model:      p.Config.Model,
		maxRetries: p.Config.MaxRetries,
		baseDelay:  time.Second,
		maxDelay:   30 * time.Second,
		threshold:  p.Config.BreakerThreshold,
		cooldown:   cooldown,
		now:        time.Now,
	}
}

// Complete sends the messages to the model and returns the raw completion
// text. Transient upstream failures are retried with jittered exponential
// backoff; repeated failures open the breaker.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	if c.breakerOpen() {
		return "", ErrBreakerOpen
	}

	body := map[string]interface{}{
		"model":    c.model,
		"messages": messages,
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(c.backoff(attempt)):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(body).
			Post("/chat/completions")
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				c.recordFailure()
				return "", ctx.Err()
			}
			c.logger.Warn("completion request failed",
				zap.Int("attempt", attempt+1), zap.Error(err))
			continue
		}

		if retryable(resp.StatusCode()) {
			lastErr = fmt.Errorf("upstream status %d", resp.StatusCode())
			c.logger.Warn("completion retryable status",
				zap.Int("attempt", attempt+1), zap.Int("status", resp.StatusCode()))
			continue
		}
		if resp.IsError() {
			c.recordFailure()
			return "", fmt.Errorf("upstream status %d: %s", resp.StatusCode(), resp.String())
		}

		content := gjson.Get(resp.String(), "choices.0.message.content").String()
		if content == "" {
			c.recordFailure()
			return "", ErrEmptyCompletion
		}
		c.recordSuccess()
		return content, nil
	}

	c.recordFailure()
	return "", fmt.Errorf("completion retries exhausted: %w", lastErr)
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

func (c *Client) backoff(attempt int) time.Duration {
	delay := c.baseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > c.maxDelay {
		delay = c.maxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(delay)/4 + 1))
	return delay - jitter/2 + jitter
}

func (c *Client) breakerOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.threshold <= 0 || c.failures < c.threshold {
		return false
	}
	// Half-open: once the cooldown elapses a single trial request goes
	// through; re-stamping openedAt keeps concurrent callers shut out.
	if c.now().Sub(c.openedAt) >= c.cooldown {
		c.openedAt = c.now()
		return false
	}
	return true
}

func (c *Client) recordFailure() {
	c.mu.Lock()
	c.failures++
	if c.threshold > 0 && c.failures >= c.threshold {
		c.openedAt = c.now()
	}
	c.mu.Unlock()
}

func (c *Client) recordSuccess() {
	c.mu.Lock()
	c.failures = 0
	c.mu.Unlock()
}

// StripFences removes markdown code fences that models wrap around JSON
// answers despite instructions not to.
func StripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
