package vision

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

const retryBaseDelay = 300 * time.Millisecond

type retryingClient struct {
	base      Client
	requestID string
}

// WithRetry wraps a client with a single retry on transient failures.
func WithRetry(base Client, requestID string) Client {
	if base == nil {
		return nil
	}
	return retryingClient{base: base, requestID: requestID}
}

func (r retryingClient) ExtractProfile(ctx context.Context, input ExtractInput) (json.RawMessage, error) {
	resp, err := r.base.ExtractProfile(ctx, input)
	if err == nil || !shouldRetry(err) {
		return resp, err
	}

	log.Printf("extraction retry attempt=1 request_id=%s error=%s", r.requestID, strings.ReplaceAll(err.Error(), "\n", " "))
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return r.base.ExtractProfile(ctx, input)
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNotConfigured) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}
	return false
}
