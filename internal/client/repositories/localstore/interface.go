// Package localstore persists the client's durable snapshots (session, report
// form draft, Q&A history) as independent JSON blobs keyed by fixed names.
// It is the terminal client's stand-in for browser local storage.
package localstore

import "context"

// Snapshot keys. Each value is one self-contained JSON document.
const (
	KeySession     = "auth-session"
	KeyReportDraft = "borehole-form-draft"
	KeyQAHistory   = "qa-history"
)

// Repository is a small key/value store with upsert semantics.
// Get returns (nil, nil) for a missing key. Replace swaps the entire store
// for the given entries atomically.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Replace(ctx context.Context, entries map[string][]byte) error
}
