package address

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"claim-engine/internal/model"
)

// Lookup resolves a postcode to at most one candidate. A nil candidate with
// a nil error means the service positively knows there is no match.
type Lookup interface {
	Find(ctx context.Context, postcode string) (*model.AddressCandidate, error)
}

// Client queries a postcodes.io-shaped lookup service. Resolved postcodes
// are cached for the life of the process; postcode data does not change
// between searches in a session.
type Client struct {
	baseURL string
	http    *http.Client
	cache   sync.Map // postcode -> model.AddressCandidate
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: 2 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type lookupResponse struct {
	Result *model.AddressCandidate `json:"result"`
}

// Find returns the candidate for postcode, (nil, nil) when the service
// reports no match, or an error on transport or service failure.
func (c *Client) Find(ctx context.Context, postcode string) (*model.AddressCandidate, error) {
	if cached, ok := c.cache.Load(postcode); ok {
		cand := cached.(model.AddressCandidate)
		return &cand, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/postcodes/"+url.PathEscape(postcode), nil)
	if err != nil {
		return nil, fmt.Errorf("postcode lookup: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("postcode lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		io.Copy(io.Discard, resp.Body)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("postcode lookup: unexpected status %d", resp.StatusCode)
	}

	var lr lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return nil, fmt.Errorf("postcode lookup: decode: %w", err)
	}
	if lr.Result == nil {
		return nil, nil
	}

	c.cache.Store(postcode, *lr.Result)
	return lr.Result, nil
}
