// internal/storage/snapshot/interface.go
package snapshot

import "context"

// Source is a read-only store of input snapshots (price histories, candle
// sets, market metadata) addressed by relative path.
type Source interface {
	// Read retrieves data from the given path
	Read(ctx context.Context, path string) ([]byte, error)

	// List returns all paths matching the prefix
	List(ctx context.Context, prefix string) ([]string, error)

	// Exists checks if data exists at the given path
	Exists(ctx context.Context, path string) (bool, error)
}
