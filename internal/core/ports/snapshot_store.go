package ports

import "context"

// SnapshotStore is a key-value store for serialized registry contents.
type SnapshotStore interface {
	// Load returns the document stored under name, or nil when there is none.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save stores data under name, replacing any previous document.
	Save(ctx context.Context, name string, data []byte) error
}
