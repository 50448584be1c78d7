package marketplace

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"seller-sync/core/reconcile"

	"github.com/go-resty/resty/v2"
)

// Client defines the seller API calls used by the sync pipeline.
type Client interface {
	// ProductPage fetches one page of the seller's product list, starting
	// after lastID (empty for the first page).
	ProductPage(ctx context.Context, lastID string, limit int) (*ProductPage, error)
	// UpdateStocks submits one batch of stock updates.
	UpdateStocks(ctx context.Context, stocks []reconcile.StockUpdate) error
	// UpdatePrices submits one batch of price updates.
	UpdatePrices(ctx context.Context, prices []reconcile.PriceUpdate) error
}

// ProductItem is one entry of the product list response.
type ProductItem struct {
	OfferID   string `json:"offer_id"`
	ProductID int64  `json:"product_id"`
}

// ProductPage is one page of the paginated product list.
type ProductPage struct {
	// Items are the products on this page.
	Items []ProductItem `json:"items"`
	// Total is the server-reported total product count.
	Total int `json:"total"`
	// LastID is the cursor for the next page.
	LastID string `json:"last_id"`
}

// APIError is a non-2xx response from the seller API.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("seller API returned %d: %s", e.Status, e.Body)
}

type productListRequest struct {
	Filter struct {
		Visibility string `json:"visibility"`
	} `json:"filter"`
	LastID string `json:"last_id"`
	Limit  int    `json:"limit"`
}

type productListResponse struct {
	Result *ProductPage `json:"result"`
}

type restClient struct {
	http *resty.Client
}

// NewClient creates a seller API client based on the configuration.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	http := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(timeout) * time.Second).
		SetHeader("Client-Id", cfg.ClientID).
		SetHeader("Api-Key", cfg.SellerToken).
		SetHeader("Content-Type", "application/json")

	return &restClient{http: http}
}

func (c *restClient) ProductPage(ctx context.Context, lastID string, limit int) (*ProductPage, error) {
	req := productListRequest{LastID: lastID, Limit: limit}
	req.Filter.Visibility = "ALL"

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post("/v2/product/list")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}

	var parsed productListResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode product list response: %w", err)
	}
	if parsed.Result == nil {
		return nil, fmt.Errorf("product list response has no result")
	}
	return parsed.Result, nil
}

func (c *restClient) UpdateStocks(ctx context.Context, stocks []reconcile.StockUpdate) error {
	payload := map[string]any{"stocks": stocks}
	return c.post(ctx, "/v1/product/import/stocks", payload)
}

func (c *restClient) UpdatePrices(ctx context.Context, prices []reconcile.PriceUpdate) error {
	payload := map[string]any{"prices": prices}
	return c.post(ctx, "/v1/product/import/prices", payload)
}

func (c *restClient) post(ctx context.Context, path string, payload any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return &APIError{Status: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}
