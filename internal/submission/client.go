package submission

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"claim-engine/internal/model"
)

// ErrSubmissionFailed covers transport failures and non-2xx responses.
// The caller keeps the form and the current step untouched so the user
// can retry; nothing retries automatically.
var ErrSubmissionFailed = errors.New("claim submission failed")

// Sink accepts a finished claim document.
type Sink interface {
	Submit(ctx context.Context, payload model.SubmissionPayload) error
}

// Client posts claim payloads to the configured sink endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	log      *slog.Logger
}

func NewClient(endpoint string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: log,
	}
}

// Submit sends the payload as a single JSON document. Any 2xx status is
// success; anything else, including transport failure, is
// ErrSubmissionFailed. No error body is parsed: the sink guarantees none.
func (c *Client) Submit(ctx context.Context, payload model.SubmissionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrSubmissionFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("claim submission failed", "error", err)
		return fmt.Errorf("%w: %v", ErrSubmissionFailed, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("claim submission rejected", "status", resp.StatusCode)
		return fmt.Errorf("%w: status %d", ErrSubmissionFailed, resp.StatusCode)
	}
	return nil
}
