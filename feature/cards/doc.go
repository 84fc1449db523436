// Package cards exposes the card collection over HTTP: filtered listing
// with pagination, single-card detail and the distinct-value endpoints
// backing filter dropdowns. It is read-only; rows are created by the
// import pipeline and priced by the sync engine.
package cards
