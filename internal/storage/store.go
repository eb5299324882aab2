package storage

import (
	"context"
	"io"
)

// Store is the blob store holding uploaded book images. Books reference
// blobs by an opaque string; the store owns the bytes, the catalog owns
// the reference.
type Store interface {
	// Save writes the content under the given reference, replacing any
	// existing blob with that reference.
	Save(ctx context.Context, ref string, content io.Reader) error

	// Delete removes the blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, ref string) error

	// Exists reports whether a blob with the reference is present.
	Exists(ctx context.Context, ref string) (bool, error)
}
