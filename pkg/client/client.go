// Package client is a thin typed wrapper over the console's JSON API: one
// resource handle per entity kind plus the dashboard snapshot. Every call is
// a single round-trip with no retries, no caching, and no local state.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Record is one flat entity row as it travels over the wire.
type Record map[string]any

// DashboardSnapshot mirrors the aggregate object served at /api/dashboard.
type DashboardSnapshot struct {
	Employees      int64    `json:"employees"`
	Departments    int64    `json:"departments"`
	Products       int64    `json:"products"`
	Orders         int64    `json:"orders"`
	Revenue        float64  `json:"revenue"`
	Invoices       int64    `json:"invoices"`
	UnpaidInvoices int64    `json:"unpaidInvoices"`
	RecentOrders   []Record `json:"recentOrders"`
}

// DeleteResult is the confirmation payload of a delete.
type DeleteResult struct {
	Message string `json:"message"`
	Deleted Record `json:"deleted"`
}

// APIError carries the server's error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// Client talks to one console instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New builds a client for the given base URL (scheme and host, no path).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Departments returns the departments resource handle.
func (c *Client) Departments() *Resource { return c.resource("departments") }

// Employees returns the employees resource handle.
func (c *Client) Employees() *Resource { return c.resource("employees") }

// Products returns the products resource handle.
func (c *Client) Products() *Resource { return c.resource("products") }

// Orders returns the orders resource handle.
func (c *Client) Orders() *Resource { return c.resource("orders") }

// Invoices returns the invoices resource handle.
func (c *Client) Invoices() *Resource { return c.resource("invoices") }

func (c *Client) resource(name string) *Resource {
	return &Resource{client: c, path: "/api/" + name}
}

// Dashboard fetches the aggregate snapshot.
func (c *Client) Dashboard(ctx context.Context) (*DashboardSnapshot, error) {
	var snap DashboardSnapshot
	if err := c.do(ctx, http.MethodGet, "/api/dashboard", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Resource exposes the five uniform operations of one entity collection.
type Resource struct {
	client *Client
	path   string
}

// List fetches every record, newest first.
func (r *Resource) List(ctx context.Context) ([]Record, error) {
	var records []Record
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Get fetches one record by id.
func (r *Resource) Get(ctx context.Context, id int64) (Record, error) {
	var record Record
	if err := r.client.do(ctx, http.MethodGet, r.idPath(id), nil, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Create submits the given fields; fields outside the server's allow-list
// are silently dropped there. The created record comes back with the
// server-assigned id and created_at.
func (r *Resource) Create(ctx context.Context, fields Record) (Record, error) {
	var record Record
	if err := r.client.do(ctx, http.MethodPost, r.path, fields, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Update applies a partial field overwrite and returns the post-update row.
func (r *Resource) Update(ctx context.Context, id int64, fields Record) (Record, error) {
	var record Record
	if err := r.client.do(ctx, http.MethodPut, r.idPath(id), fields, &record); err != nil {
		return nil, err
	}
	return record, nil
}

// Delete removes the record and returns it as confirmation.
func (r *Resource) Delete(ctx context.Context, id int64) (*DeleteResult, error) {
	var result DeleteResult
	if err := r.client.do(ctx, http.MethodDelete, r.idPath(id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *Resource) idPath(id int64) string {
	return r.path + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "Request failed"}
		var envelope struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
			apiErr.Message = envelope.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
