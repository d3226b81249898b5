// AngelaMos | 2026
// client.go

package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/grocerly/backoffice/internal/config"
	"github.com/grocerly/backoffice/internal/core"
)

// Record is the subset of an Open Food Facts product that the catalog
// can be enriched from.
type Record struct {
	Name            string `json:"name"`
	Brand           string `json:"brand"`
	Category        string `json:"category"`
	NutritionalInfo string `json:"nutritional_info"`
	Picture         string `json:"picture"`
}

type offResponse struct {
	Status  int        `json:"status"`
	Product offProduct `json:"product"`
}

type offProduct struct {
	ProductName string `json:"product_name"`
	Brands      string `json:"brands"`
	Categories  string `json:"categories"`
	Ingredients string `json:"ingredients_text"`
	ImageURL    string `json:"image_url"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.OpenFoodFactsConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// FetchProduct looks up a barcode against the Open Food Facts v0 product
// endpoint. A lookup that the upstream answers with status 0 maps to
// core.ErrNotFound; transport failures and non-2xx responses map to
// core.ErrUnavailable so callers can distinguish "no such product" from
// "the supplier is down".
func (c *Client) FetchProduct(
	ctx context.Context,
	barcode string,
) (Record, error) {
	endpoint := fmt.Sprintf(
		"%s/api/v0/product/%s.json",
		c.baseURL,
		url.PathEscape(barcode),
	)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		endpoint,
		nil,
	)
	if err != nil {
		return Record{}, fmt.Errorf("building lookup request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("open food facts request failed",
			"barcode", barcode,
			"error", err)
		return Record{}, fmt.Errorf(
			"fetching product %s: %w", barcode, core.ErrUnavailable,
		)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body) //nolint:errcheck
		c.logger.Warn("open food facts returned non-2xx",
			"barcode", barcode,
			"status", resp.StatusCode)
		return Record{}, fmt.Errorf(
			"fetching product %s: upstream status %d: %w",
			barcode, resp.StatusCode, core.ErrUnavailable,
		)
	}

	var body offResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Record{}, fmt.Errorf(
			"decoding product %s: %w", barcode, core.ErrUnavailable,
		)
	}

	if body.Status != 1 {
		return Record{}, fmt.Errorf(
			"product %s: %w", barcode, core.ErrNotFound,
		)
	}

	return Record{
		Name:            body.Product.ProductName,
		Brand:           body.Product.Brands,
		Category:        body.Product.Categories,
		NutritionalInfo: body.Product.Ingredients,
		Picture:         body.Product.ImageURL,
	}, nil
}
