package archive

import "context"

// BlobStore stores opaque blobs under a key and knows where the public copy
// of each blob ends up.
type BlobStore interface {
	// Upload stores data under key. The object owns the durable copy once
	// Upload returns nil.
	Upload(ctx context.Context, key string, data []byte) error
	// PublicURL returns the address an uploaded key is retrievable at.
	PublicURL(key string) string
}
