package catalog

// Product is one entry of the external product catalog. Products are
// ephemeral: re-fetched (or cache-served) each run and never persisted.
type Product struct {
	// IDProduct is the stable numeric id, the only reliable sort key.
	IDProduct int
	// Name is free text with an embedded card code, e.g. "Monkey.D.Luffy (OP09-118)".
	Name string
	// IDExpansion scopes the product to a release grouping.
	IDExpansion int
}

// PriceRow is one entry of the external price guide, keyed by product id.
// Any of the four observations may be absent (nil).
type PriceRow struct {
	IDProduct int
	Low       *float64
	Trend     *float64
	Avg7      *float64
	Avg30     *float64
}

// Catalog bundles the two fetched feeds, with price rows indexed by
// product id for O(1) lookup.
type Catalog struct {
	Products         []Product
	PriceByProductID map[int]PriceRow
}
