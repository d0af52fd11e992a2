// Package testutil provides shared test fixtures: an in-memory SQLite store
// with the schema applied and helpers for driving gin engines over HTTP.
package testutil
