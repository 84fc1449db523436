package catalog_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"card-manager/core/catalog"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const productsJSON = `[
	{"idProduct": 1001, "name": "Monkey.D.Luffy (OP09-118)", "idExpansion": 5755},
	{"idProduct": 1002, "name": "Monkey.D.Luffy (V.2) (OP09-118)", "idExpansion": 5755}
]`

const priceGuideJSON = `{"priceGuides": [
	{"idProduct": 1001, "low": "1,50", "trend": 2.1, "avg7": "2.05", "avg30": null},
	{"idProduct": 1002, "low": 40.0, "trend": "44,90", "avg7": 43, "avg30": "41.2"}
]}`

func TestParse(t *testing.T) {
	t.Run("WrappedPriceGuide", func(t *testing.T) {
		cat, err := catalog.Parse([]byte(productsJSON), []byte(priceGuideJSON))
		assert.NoError(t, err)
		assert.Len(t, cat.Products, 2)
		assert.Len(t, cat.PriceByProductID, 2)

		row := cat.PriceByProductID[1001]
		assert.Equal(t, 1.5, *row.Low)
		assert.Equal(t, 2.1, *row.Trend)
		assert.Equal(t, 2.05, *row.Avg7)
		assert.Nil(t, row.Avg30)
	})

	t.Run("BareArrays", func(t *testing.T) {
		prices := `[{"idProduct": 1001, "low": 1}]`
		cat, err := catalog.Parse([]byte(productsJSON), []byte(prices))
		assert.NoError(t, err)
		assert.Len(t, cat.Products, 2)
		assert.Len(t, cat.PriceByProductID, 1)
	})

	t.Run("DataWrapper", func(t *testing.T) {
		products := `{"data": [{"idProduct": 7, "name": "Nami (OP09-003)", "idExpansion": 5755}]}`
		prices := `{"data": [{"idProduct": 7, "trend": "3,33"}]}`
		cat, err := catalog.Parse([]byte(products), []byte(prices))
		assert.NoError(t, err)
		assert.Len(t, cat.Products, 1)
		assert.Equal(t, 3.33, *cat.PriceByProductID[7].Trend)
	})

	t.Run("ObjectValues", func(t *testing.T) {
		products := `{"a": {"idProduct": 1, "name": "Zoro (OP09-001)", "idExpansion": 5755},
			"b": {"idProduct": 2, "name": "Sanji (OP09-002)", "idExpansion": 5755}}`
		prices := `[{"idProduct": 1, "low": 0.1}]`
		cat, err := catalog.Parse([]byte(products), []byte(prices))
		assert.NoError(t, err)
		assert.Len(t, cat.Products, 2)
	})

	t.Run("StringIDs", func(t *testing.T) {
		products := `[{"idProduct": "1001", "name": "Luffy (OP09-118)", "idExpansion": "5755"}]`
		prices := `[{"idProduct": "1001", "low": "2,00"}]`
		cat, err := catalog.Parse([]byte(products), []byte(prices))
		assert.NoError(t, err)
		assert.Equal(t, 1001, cat.Products[0].IDProduct)
		assert.Equal(t, 5755, cat.Products[0].IDExpansion)
		assert.Equal(t, 2.0, *cat.PriceByProductID[1001].Low)
	})

	t.Run("EmptyProductListIsFatal", func(t *testing.T) {
		_, err := catalog.Parse([]byte(`[]`), []byte(priceGuideJSON))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "product list")
	})

	t.Run("EmptyPriceGuideIsFatal", func(t *testing.T) {
		_, err := catalog.Parse([]byte(productsJSON), []byte(`{"priceGuides": []}`))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "price guide")
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := catalog.Parse([]byte(`{not json`), []byte(priceGuideJSON))
		assert.Error(t, err)
	})
}

func TestClientFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/products.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(productsJSON))
	})
	mux.HandleFunc("/prices.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(priceGuideJSON))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := catalog.NewClient(catalog.Config{
		ProductListURL: srv.URL + "/products.json",
		PriceGuideURL:  srv.URL + "/prices.json",
		TimeoutSeconds: 5,
	}, zap.NewNop(), nil)

	cat, err := client.Fetch(context.Background())
	assert.NoError(t, err)
	assert.Len(t, cat.Products, 2)
	assert.Len(t, cat.PriceByProductID, 2)
}

func TestClientFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := catalog.NewClient(catalog.Config{
		ProductListURL: srv.URL + "/products.json",
		PriceGuideURL:  srv.URL + "/prices.json",
		TimeoutSeconds: 5,
	}, zap.NewNop(), nil)

	_, err := client.Fetch(context.Background())
	assert.Error(t, err)
}
