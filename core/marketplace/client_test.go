package marketplace_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"seller-sync/core/marketplace"
	"seller-sync/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) marketplace.Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return marketplace.NewClient(marketplace.Config{
		BaseURL:     srv.URL,
		ClientID:    "client-1",
		SellerToken: "token-1",
	})
}

func TestProductPage(t *testing.T) {
	var gotBody map[string]any

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/product/list", r.URL.Path)
		assert.Equal(t, "client-1", r.Header.Get("Client-Id"))
		assert.Equal(t, "token-1", r.Header.Get("Api-Key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":{"items":[{"offer_id":"A","product_id":1},{"offer_id":"B","product_id":2}],"total":7,"last_id":"cursor-1"}}`))
	})

	page, err := client.ProductPage(context.Background(), "prev", 500)
	require.NoError(t, err)

	assert.Equal(t, "prev", gotBody["last_id"])
	assert.Equal(t, float64(500), gotBody["limit"])
	assert.Equal(t, map[string]any{"visibility": "ALL"}, gotBody["filter"])

	assert.Equal(t, 7, page.Total)
	assert.Equal(t, "cursor-1", page.LastID)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "A", page.Items[0].OfferID)
}

func TestProductPage_APIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid token"}`, http.StatusForbidden)
	})

	_, err := client.ProductPage(context.Background(), "", 1000)

	var apiErr *marketplace.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Contains(t, apiErr.Body, "invalid token")
}

func TestProductPage_MissingResult(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.ProductPage(context.Background(), "", 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no result")
}

func TestUpdateStocks_Payload(t *testing.T) {
	var gotBody map[string][]reconcile.StockUpdate

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/stocks", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"result":[]}`))
	})

	stocks := []reconcile.StockUpdate{{OfferID: "A", Stock: 100}}
	require.NoError(t, client.UpdateStocks(context.Background(), stocks))
	assert.Equal(t, stocks, gotBody["stocks"])
}

func TestUpdatePrices_Payload(t *testing.T) {
	var gotBody map[string][]map[string]string

	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/product/import/prices", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"result":[]}`))
	})

	prices := []reconcile.PriceUpdate{{
		AutoActionEnabled: "UNKNOWN",
		CurrencyCode:      "RUB",
		OfferID:           "A",
		OldPrice:          "0",
		Price:             "5990",
	}}
	require.NoError(t, client.UpdatePrices(context.Background(), prices))

	require.Len(t, gotBody["prices"], 1)
	assert.Equal(t, map[string]string{
		"auto_action_enabled": "UNKNOWN",
		"currency_code":       "RUB",
		"offer_id":            "A",
		"old_price":           "0",
		"price":               "5990",
	}, gotBody["prices"][0])
}

func TestUpdateStocks_APIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	})

	err := client.UpdateStocks(context.Background(), []reconcile.StockUpdate{{OfferID: "A"}})

	var apiErr *marketplace.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
}
