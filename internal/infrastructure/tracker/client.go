// Package tracker polls an order store for status changes of a
// customer's active orders and emits a notification on every
// transition. It is the server-side counterpart of the order list a
// customer keeps open while waiting for delivery.
package tracker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fooddelivery/backend/internal/domain/order"
)

// OrderSource yields the current orders of one customer
type OrderSource interface {
	OrdersByPhone(ctx context.Context, phone string) ([]*order.WithItems, error)
}

// HTTPOrderSource fetches orders from a remote order store over HTTP
type HTTPOrderSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPOrderSource creates an order source against the given base URL.
// A nil client gets a default with a 5 second timeout.
func NewHTTPOrderSource(baseURL string, client *http.Client) *HTTPOrderSource {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &HTTPOrderSource{
		baseURL: baseURL,
		client:  client,
	}
}

// OrdersByPhone fetches every order of one phone number
func (s *HTTPOrderSource) OrdersByPhone(ctx context.Context, phone string) ([]*order.WithItems, error) {
	endpoint := fmt.Sprintf("%s/api/orders/by-phone?phoneNumber=%s", s.baseURL, url.QueryEscape(phone))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build orders request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch orders: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read orders response: %w", err)
	}

	var orders []*order.WithItems
	if err := json.Unmarshal(body, &orders); err != nil {
		return nil, fmt.Errorf("decode orders response: %w", err)
	}

	return orders, nil
}
