// AngelaMos | 2026
// client_test.go

package openfoodfacts

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grocerly/backoffice/internal/config"
	"github.com/grocerly/backoffice/internal/core"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.OpenFoodFactsConfig{
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
	}, slog.New(slog.DiscardHandler))
}

func TestFetchProduct_Found(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v0/product/3017620422003.json", r.URL.Path)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"status": 1,
				"product": {
					"product_name": "Nutella",
					"brands": "Ferrero",
					"categories": "Spreads",
					"ingredients_text": "sugar, palm oil, hazelnuts",
					"image_url": "https://images.example.com/nutella.jpg"
				}
			}`))
		}))
	defer server.Close()

	client := newTestClient(server.URL)

	record, err := client.FetchProduct(context.Background(), "3017620422003")
	require.NoError(t, err)

	assert.Equal(t, "Nutella", record.Name)
	assert.Equal(t, "Ferrero", record.Brand)
	assert.Equal(t, "Spreads", record.Category)
	assert.Equal(t, "sugar, palm oil, hazelnuts", record.NutritionalInfo)
	assert.Equal(t, "https://images.example.com/nutella.jpg", record.Picture)
}

func TestFetchProduct_UnknownBarcode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": 0, "status_verbose": "product not found"}`))
		}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchProduct(context.Background(), "0000000000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrNotFound))
}

func TestFetchProduct_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchProduct(context.Background(), "3017620422003")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnavailable))
}

func TestFetchProduct_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {},
	))
	server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchProduct(context.Background(), "3017620422003")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnavailable))
}

func TestFetchProduct_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"status":`))
		}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.FetchProduct(context.Background(), "3017620422003")
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrUnavailable))
}
