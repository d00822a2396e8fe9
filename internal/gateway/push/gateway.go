package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	retrierconfig "orderflow/pkg/retrier"
	"orderflow/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "push-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type notification struct {
	To    string `json:"to"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// httpStatusError сохраняет код ответа для решения о ретрае.
type httpStatusError struct {
	Code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("push endpoint returned status %d", e.Code)
}

type PushGateway struct {
	client   httpClient
	retrier  retrier
	endpoint string
	apiKey   string
}

func New(client httpClient, endpoint string, apiKey string) *PushGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &PushGateway{
		client:   client,
		retrier:  backoff_adapter.New(retryConfig),
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

func (p *PushGateway) Send(ctx context.Context, token string, title string, body string) error {
	payload, err := json.Marshal(notification{
		To:    token,
		Title: title,
		Body:  body,
	})
	if err != nil {
		return fmt.Errorf("gateway push, marshal notification: %w", err)
	}

	err = p.executeWithMetrics(ctx, "Send", func(ctx context.Context) error {
		return p.post(ctx, payload)
	})
	if err != nil {
		return fmt.Errorf("gateway push, send notification: %w", err)
	}

	return nil
}

func (p *PushGateway) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &httpStatusError{Code: resp.StatusCode}
	}
	return nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		// 429 и 5xx временные, клиентские 4xx ретраить бессмысленно
		return statusErr.Code == http.StatusTooManyRequests ||
			statusErr.Code >= http.StatusInternalServerError
	}

	// Сетевые ошибки считаем временными
	return true
}

func (p *PushGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	httpCode := getHTTPCode(err)
	// Метрики Prometheus
	PushRequestDuration.WithLabelValues(serviceName, method, httpCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		// Метрики Prometheus
		PushRetriesTotal.WithLabelValues(serviceName, method, httpCode).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.Code)
	}
	return "unknown"
}
