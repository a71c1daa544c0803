// Package memory provides an in-memory asset store for tests.
package memory

import (
	"context"
	"io"
	"sync"

	"github.com/atlas-intel/atlas-cli/internal/core/ports/driven"
)

// Ensure AssetStore implements the interface.
var _ driven.AssetStore = (*AssetStore)(nil)

// AssetStore is an in-memory implementation of driven.AssetStore.
type AssetStore struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// FailUploads makes every Upload return the given error when set.
	FailUploads error
}

// NewAssetStore creates a new in-memory asset store.
func NewAssetStore() *AssetStore {
	return &AssetStore{
		objects: make(map[string][]byte),
	}
}

// Upload stores the content and returns the stored path.
func (s *AssetStore) Upload(_ context.Context, bucket, path string, content io.Reader, _ string) (string, error) {
	if s.FailUploads != nil {
		return "", s.FailUploads
	}

	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[bucket+"/"+path] = data
	return path, nil
}

// PublicURL returns a deterministic URL for a stored path.
func (s *AssetStore) PublicURL(bucket, path string) string {
	return "memory://" + bucket + "/" + path
}

// Object returns the stored content for a bucket path. Test helper.
func (s *AssetStore) Object(bucket, path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[bucket+"/"+path]
	return data, ok
}
