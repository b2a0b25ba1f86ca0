package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/hydraschema/apidoc"
	"github.com/erraggy/hydraschema/builder"
	"github.com/erraggy/hydraschema/internal/options"
)

// docInput represents the two ways resource metadata can be provided to a
// tool. Exactly one of File or Content must be set.
type docInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a resource metadata file on disk (YAML or JSON)"`
	Content string `json:"content,omitempty" jsonschema:"Inline resource metadata (YAML or JSON): a document with a resources list, or a bare list of resources"`
}

// buildSettings are the options a build result depends on.
type buildSettings struct {
	prefix string
	strict bool
}

// cacheEntry holds a cached build result with LRU ordering and TTL expiry.
type cacheEntry struct {
	result    *builder.Result
	insertAt  time.Time
	expiresAt time.Time
}

// resultCacheStore provides a session-scoped cache for build results.
// File inputs are keyed by (absolutePath, modTime) and content inputs by a
// SHA-256 hash, each combined with the build settings.
// Results are read-only once built, so cached entries are shared freely.
type resultCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var resultCache = &resultCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached result or nil. Expired entries are lazily removed.
func (c *resultCacheStore) get(key string) *builder.Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return nil
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return e.result
	}
	return nil
}

// putWithTTL stores a result with a specific TTL, evicting the oldest entry if at capacity.
func (c *resultCacheStore) putWithTTL(key string, result *builder.Result, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{result: result, insertAt: now, expiresAt: now.Add(ttl)}

	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *resultCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *resultCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *resultCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *resultCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given input and settings.
// It returns an empty string when the input cannot be keyed.
func makeCacheKey(d docInput, s buildSettings) string {
	settings := fmt.Sprintf("prefix=%q,strict=%t", s.prefix, s.strict)
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d:%s", absPath, info.ModTime().UnixNano(), settings)
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		return fmt.Sprintf("content:%s:%s", hex.EncodeToString(h[:]), settings)
	default:
		return ""
	}
}

// resolve loads the metadata from whichever input was provided and builds
// its schemas, using the cache when enabled.
func (d docInput) resolve(s buildSettings) (*builder.Result, error) {
	if err := options.ValidateSingleInputSource(
		"exactly one of file or content must be provided",
		"exactly one of file or content must be provided",
		d.File != "", d.Content != "",
	); err != nil {
		return nil, err
	}

	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set %s to increase",
			len(d.Content), cfg.MaxInlineSize, envKey("max_inline_size"))
	}

	var key string
	if cfg.CacheEnabled {
		key = makeCacheKey(d, s)
	}
	if key != "" {
		if cached := resultCache.get(key); cached != nil {
			return cached, nil
		}
	}

	var opts []apidoc.Option
	if d.File != "" {
		opts = append(opts, apidoc.WithFilePath(d.File))
	} else {
		opts = append(opts, apidoc.WithBytes([]byte(d.Content)), apidoc.WithSourceName("content"))
	}
	doc, err := apidoc.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	result, err := builder.SchemasFromResources(doc.Resources,
		builder.WithCollectionPrefix(s.prefix),
		builder.WithStrictReferences(s.strict),
		builder.WithLogger(builder.NewSlogAdapter(nil).With("component", "mcpserver")),
	)
	if err != nil {
		return nil, err
	}

	if key != "" {
		resultCache.putWithTTL(key, result, cfg.CacheTTL)
	}
	return result, nil
}
