package stopwords

import (
	"embed"
	"fmt"
	"path/filepath"
	"sync"
)

// DefaultResource is the resource backing BaseStopwords and every call
// site that does not select a resource explicitly.
const DefaultResource = "base/turkish"

//go:embed data
var bundleFS embed.FS

var (
	defaultOnce     sync.Once
	defaultResolver *Resolver

	registryMu sync.Mutex
	registry   = make(map[string]*Resolver)
)

// DefaultResolver returns the shared resolver over the embedded resource
// bundle. It is created lazily, once per process.
func DefaultResolver() *Resolver {
	defaultOnce.Do(func() {
		defaultResolver = NewResolver(bundleFS, "data/metadata.json")
	})
	return defaultResolver
}

// ResolverForPath returns the shared resolver for the metadata document at
// path. Resolvers are cached per resolved absolute path for the process
// lifetime, so repeated calls share one document load and one result cache.
func ResolverForPath(path string) (*Resolver, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve metadata path %q: %w", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if r, ok := registry[abs]; ok {
		return r, nil
	}
	r, err := NewResolverFromPath(abs)
	if err != nil {
		return nil, err
	}
	registry[abs] = r
	return r, nil
}

// resolverFor picks the resolver for an optional metadata path: the shared
// per-path resolver when set, the embedded bundle otherwise.
func resolverFor(metadataPath string) (*Resolver, error) {
	if metadataPath == "" {
		return DefaultResolver(), nil
	}
	return ResolverForPath(metadataPath)
}

// BaseStopwords returns the case-insensitive default stopword set from the
// embedded bundle.
func BaseStopwords() (Set, error) {
	return DefaultResolver().Resolve(DefaultResource, false)
}
