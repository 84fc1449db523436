package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"card-manager/core/utils"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Fetcher retrieves the full product catalog and price guide.
type Fetcher interface {
	Fetch(ctx context.Context) (*Catalog, error)
}

// Client fetches the two Cardmarket feeds over HTTP.
type Client struct {
	http     *resty.Client
	cfg      Config
	logger   *zap.Logger
	archiver *Archiver
}

// NewClient creates a feed client. archiver may be nil to disable snapshot
// archiving.
func NewClient(cfg Config, logger *zap.Logger, archiver *Archiver) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}

	http := resty.New()
	http.SetTimeout(time.Duration(timeout) * time.Second)

	return &Client{
		http:     http,
		cfg:      cfg,
		logger:   logger,
		archiver: archiver,
	}
}

// Fetch downloads both feeds concurrently and joins them before parsing.
// An empty collection after parsing is feed unavailability, not "no data",
// and yields an error.
func (c *Client) Fetch(ctx context.Context) (*Catalog, error) {
	var (
		productRaw []byte
		priceRaw   []byte
		productErr error
		priceErr   error
		wg         sync.WaitGroup
	)

	// The two feeds are independent reads with no ordering dependency.
	wg.Add(2)

	go func() {
		defer wg.Done()
		productRaw, productErr = c.get(ctx, c.cfg.ProductListURL)
	}()

	go func() {
		defer wg.Done()
		priceRaw, priceErr = c.get(ctx, c.cfg.PriceGuideURL)
	}()

	wg.Wait()

	if productErr != nil {
		return nil, fmt.Errorf("product list fetch failed: %w", productErr)
	}
	if priceErr != nil {
		return nil, fmt.Errorf("price guide fetch failed: %w", priceErr)
	}

	cat, err := Parse(productRaw, priceRaw)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Catalog feeds loaded",
		zap.Int("products", len(cat.Products)),
		zap.Int("price_rows", len(cat.PriceByProductID)))

	if c.archiver != nil {
		c.archiver.ArchiveFeeds(ctx, productRaw, priceRaw)
	}

	return cat, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode(), url)
	}
	return resp.Body(), nil
}

// Parse decodes the two raw feed payloads into an indexed Catalog.
// It tolerates several top-level shapes and fails when either collection
// comes out empty.
func Parse(productRaw, priceRaw []byte) (*Catalog, error) {
	var productDoc, priceDoc any
	if err := json.Unmarshal(productRaw, &productDoc); err != nil {
		return nil, fmt.Errorf("product list is not valid JSON: %w", err)
	}
	if err := json.Unmarshal(priceRaw, &priceDoc); err != nil {
		return nil, fmt.Errorf("price guide is not valid JSON: %w", err)
	}

	products := parseProducts(asArray(productDoc))

	// The price guide usually wraps its rows under "priceGuides"; check that
	// before the generic shapes.
	priceItems := asArray(priceDoc)
	if obj, ok := priceDoc.(map[string]any); ok {
		if rows, ok := obj["priceGuides"].([]any); ok {
			priceItems = rows
		}
	}
	priceIndex := parsePriceRows(priceItems)

	if len(products) == 0 {
		return nil, fmt.Errorf("product list is empty or has an unexpected format")
	}
	if len(priceIndex) == 0 {
		return nil, fmt.Errorf("price guide is empty or has an unexpected format")
	}

	return &Catalog{
		Products:         products,
		PriceByProductID: priceIndex,
	}, nil
}

// asArray extracts the item collection from a decoded payload. Accepted
// shapes: a bare array, an object wrapping the array under a known key, or
// an arbitrary object whose values are collected.
func asArray(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	case map[string]any:
		for _, key := range []string{"data", "products", "priceGuides"} {
			if arr, ok := v[key].([]any); ok {
				return arr
			}
		}
		values := make([]any, 0, len(v))
		for _, val := range v {
			values = append(values, val)
		}
		return values
	default:
		return nil
	}
}

func parseProducts(items []any) []Product {
	products := make([]Product, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id := utils.ToInt(m["idProduct"])
		if id == 0 {
			continue
		}
		products = append(products, Product{
			IDProduct:   id,
			Name:        utils.ToString(m["name"]),
			IDExpansion: utils.ToInt(m["idExpansion"]),
		})
	}
	return products
}

func parsePriceRows(items []any) map[int]PriceRow {
	index := make(map[int]PriceRow, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id := utils.ToInt(m["idProduct"])
		if id == 0 {
			continue
		}
		index[id] = PriceRow{
			IDProduct: id,
			Low:       floatField(m, "low"),
			Trend:     floatField(m, "trend"),
			Avg7:      floatField(m, "avg7"),
			Avg30:     floatField(m, "avg30"),
		}
	}
	return index
}

func floatField(m map[string]any, key string) *float64 {
	f, ok := utils.ToFloat(m[key])
	if !ok {
		return nil
	}
	return &f
}
