// Package utils provides common utility functions for the card-manager application.
// It includes the tolerant type conversion helpers that isolate the sync engine
// from the inconsistent typing of external price feeds (numbers arriving as
// strings, comma decimal separators, missing values).
package utils
