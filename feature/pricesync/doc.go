// Package pricesync implements the price reconciliation engine: matching
// stored card variants against the Cardmarket product catalog and price
// guide, and upserting one price snapshot per card.
//
// The catalog has no card-accurate identifier, so matching works in stages:
// a card code is extracted from each product's free-text name, products are
// bucketed by code within the set's expansion, junk entries (misprints,
// erratas, proxies...) are filtered out, and the surviving candidates are
// sorted by product id. Stored variants are then mapped onto that list
// positionally, under a cascade of override rules (per-card fixed indexes,
// per-set orderings, generic sequence) that absorbs the catalog's known
// irregularities.
//
// Partial success is the steady state: every unresolved card is counted and
// reported with a machine-readable reason, and no single card or set can
// abort a run. Only an empty feed or a storage failure is fatal.
//
// # HTTP Endpoints
//
//   - POST /sync : Runs the engine ({setCode?, dryRun?, verbose?}).
package pricesync
