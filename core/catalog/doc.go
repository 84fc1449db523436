// Package catalog retrieves and indexes the two external Cardmarket datasets:
// the singles product catalog and the price guide.
//
// # Feed tolerance
//
// Both feeds are JSON collections whose top-level shape varies: a bare array,
// an object wrapping the array under data/products/priceGuides, or an
// arbitrary object whose values are the items. Field typing is equally loose
// (numeric strings, comma decimals); parsing goes through the tolerant
// converters in core/utils, and unparseable price observations become absent
// (nil) rather than errors.
//
// # Fail fast on empty feeds
//
// An empty collection after parsing is treated as feed unavailability and
// returned as an error. Silently degrading into "everything skipped" would
// hide an outage behind a clean-looking run.
//
// # Caching
//
// The Cache type provides populate-once, process-lifetime caching with
// singleflight stampede protection, so a multi-set sync fetches the network
// feeds exactly once. The cache is an explicit object owned by the sync
// service, not hidden package state.
//
// # Snapshot archive
//
// When enabled, raw payloads are archived to object storage after each
// successful fetch, giving override-rule maintenance an exact record of the
// data a run resolved against.
package catalog
