// Package models defines the persistent card domain: sets, card prints
// (one row per code+variant), and their price snapshots.
package models
