package driven

import (
	"context"
	"io"
)

// Buckets in the remote asset store.
const (
	BucketLogos     = "company-logos"
	BucketDocuments = "filing-documents"
)

// AssetStore uploads files to the remote asset storage and resolves
// their public URLs. Upload failures are recoverable at the submission
// layer: a company can be written without its logo.
type AssetStore interface {
	// Upload stores the content at path within bucket and returns the
	// stored path.
	Upload(ctx context.Context, bucket, path string, content io.Reader, contentType string) (string, error)

	// PublicURL returns the public URL for a stored path.
	PublicURL(bucket, path string) string
}
