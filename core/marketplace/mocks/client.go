package mocks

import (
	"context"

	"seller-sync/core/marketplace"
	"seller-sync/core/reconcile"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of marketplace.Client
type Client struct {
	mock.Mock
}

func (m *Client) ProductPage(ctx context.Context, lastID string, limit int) (*marketplace.ProductPage, error) {
	args := m.Called(ctx, lastID, limit)
	if page, ok := args.Get(0).(*marketplace.ProductPage); ok {
		return page, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateStocks(ctx context.Context, stocks []reconcile.StockUpdate) error {
	args := m.Called(ctx, stocks)
	return args.Error(0)
}

func (m *Client) UpdatePrices(ctx context.Context, prices []reconcile.PriceUpdate) error {
	args := m.Called(ctx, prices)
	return args.Error(0)
}
