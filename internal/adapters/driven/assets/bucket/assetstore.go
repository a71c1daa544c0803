// Package bucket implements the asset store against an HTTP object
// storage endpoint with token authentication.
package bucket

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/atlas-intel/atlas-cli/internal/core/domain"
	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
	"github.com/atlas-intel/atlas-cli/internal/logger"
)

const (
	// UploadRate throttles uploads to avoid tripping storage quotas.
	UploadRate = 2.0

	// uploadTimeout bounds a single object upload.
	uploadTimeout = 60 * time.Second
)

// Ensure AssetStore implements the interface.
var _ driven.AssetStore = (*AssetStore)(nil)

// AssetStore uploads objects to an HTTP object storage service. Objects
// are stored under <baseURL>/object/<bucket>/<path> and publicly served
// from <baseURL>/object/public/<bucket>/<path>.
type AssetStore struct {
	baseURL string
	token   string
	client  *http.Client
	limiter *rate.Limiter
}

// New creates an asset store against the given storage endpoint.
func New(baseURL, token string) *AssetStore {
	return &AssetStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: uploadTimeout},
		limiter: rate.NewLimiter(rate.Limit(UploadRate), 1),
	}
}

// Upload stores the content under bucket/path and returns the stored
// path.
func (s *AssetStore) Upload(ctx context.Context, bucket, path string, content io.Reader, contentType string) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/object/%s/%s", s.baseURL, url.PathEscape(bucket), escapePath(path))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, content)
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	// Replace an existing object at the same path.
	req.Header.Set("x-upsert", "true")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("uploading %s/%s: %w", bucket, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: storage upload throttled", domain.ErrRateLimited)
	case resp.StatusCode >= 400:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("uploading %s/%s: status %d: %s", bucket, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	logger.Debug("uploaded %s/%s", bucket, path)
	return path, nil
}

// PublicURL returns the public URL for a stored path.
func (s *AssetStore) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", s.baseURL, url.PathEscape(bucket), escapePath(path))
}

// escapePath escapes each path segment while keeping the separators.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}
