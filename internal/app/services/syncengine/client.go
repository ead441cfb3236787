package syncengine

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"trimline-service/internal/pkg/constvars"
	"trimline-service/internal/pkg/dto/requests"
	"trimline-service/internal/pkg/slots"

	"github.com/goccy/go-json"
)

// Client speaks the appointments wire protocol: a raw day->time->name mapping
// on reads, bare mutation payloads on writes.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{BaseURL: baseURL, HTTPClient: httpClient}
}

func (c *Client) FetchStore(ctx context.Context) (slots.Store, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/appointments", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, fmt.Errorf("fetch store: unexpected status %d", resp.StatusCode)
	}

	var store slots.Store
	if err := json.NewDecoder(resp.Body).Decode(&store); err != nil {
		return nil, err
	}
	if store == nil {
		store = make(slots.Store)
	}
	return store, nil
}

func (c *Client) PushSlot(ctx context.Context, op, day, timeLabel, name string) error {
	payload := requests.SlotMutation{Op: op, Day: day, Time: timeLabel, Name: name}
	return c.push(ctx, http.MethodPatch, payload)
}

func (c *Client) PushSnapshot(ctx context.Context, store slots.Store) error {
	payload := requests.BulkOverwrite{ConfirmFlag: true, Store: store}
	return c.push(ctx, http.MethodPost, payload)
}

func (c *Client) push(ctx context.Context, method string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+"/appointments", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return fmt.Errorf("push mutation: unexpected status %d", resp.StatusCode)
	}
	return nil
}
