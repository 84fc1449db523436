package catalog

// Config holds configuration for the external Cardmarket feeds.
type Config struct {
	// ProductListURL is the endpoint serving the full singles product catalog.
	ProductListURL string `mapstructure:"product_list_url" default:"https://downloads.s3.cardmarket.com/productCatalog/productList/products_singles_18.json"`
	// PriceGuideURL is the endpoint serving the full price guide.
	PriceGuideURL string `mapstructure:"price_guide_url" default:"https://downloads.s3.cardmarket.com/productCatalog/priceGuide/price_guide_18.json"`
	// TimeoutSeconds is the HTTP timeout for feed fetches.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// ArchiveEnabled enables archiving raw feed payloads to object storage
	// after each successful fetch.
	ArchiveEnabled bool `mapstructure:"archive_enabled" default:"false"`
}
