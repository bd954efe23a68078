// Package imagecache keeps downloaded images on disk so repeated runs
// against the same URL do not fetch it again.
package imagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	httputil "github.com/jmylchreest/halftone/internal/util/http"
)

// ErrNotURL is returned for sources that are not HTTP(S) URLs.
var ErrNotURL = errors.New("invalid URL: must start with http:// or https://")

// Cache stores fetched images in a directory, one file per URL.
type Cache struct {
	dir     string
	refresh bool
	logger  hclog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithRefresh makes Fetch download again even when a cached file exists.
func WithRefresh(refresh bool) Option {
	return func(c *Cache) { c.refresh = refresh }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a cache rooted at dir. An empty dir uses DefaultDir.
func New(dir string, opts ...Option) (*Cache, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	c := &Cache{dir: dir, logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// DefaultDir returns $XDG_CACHE_HOME/halftone/images or the platform
// equivalent.
func DefaultDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, herr := os.UserHomeDir()
		if herr != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		cacheDir = filepath.Join(home, ".cache")
	}
	return filepath.Join(cacheDir, "halftone", "images"), nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Path returns the file a URL is cached under: the first 16 bytes of its
// SHA-256 in hex plus the URL's extension, or .img when it has none.
func (c *Cache) Path(url string) string {
	sum := sha256.Sum256([]byte(url))
	name := hex.EncodeToString(sum[:16])

	p := url
	if i := strings.IndexAny(p, "?#"); i != -1 {
		p = p[:i]
	}
	ext := strings.ToLower(path.Ext(p))
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}
	return filepath.Join(c.dir, name+ext)
}

// Fetch returns the image bytes for url, reading the cached copy when one
// exists and downloading it with opts otherwise.
func (c *Cache) Fetch(ctx context.Context, url string, opts httputil.FetchOptions) ([]byte, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return nil, fmt.Errorf("%s: %w", url, ErrNotURL)
	}

	cached := c.Path(url)
	if !c.refresh {
		data, err := os.ReadFile(cached) // #nosec G304 - path derived from URL hash
		if err == nil {
			c.logger.Debug("image cache hit", "url", url, "path", cached)
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read cached image: %w", err)
		}
	}

	data, err := httputil.Fetch(ctx, url, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	if err := c.store(cached, data); err != nil {
		return nil, err
	}
	c.logger.Debug("image cached", "url", url, "path", cached, "bytes", len(data))
	return data, nil
}

// store writes data through a temporary file so readers never see a
// partial image.
func (c *Cache) store(dst string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil { // #nosec G301 - Cache directory needs standard permissions
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	tmp, err := os.CreateTemp(c.dir, ".download-*")
	if err != nil {
		return fmt.Errorf("failed to write cached image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write cached image: %w", err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return fmt.Errorf("failed to write cached image: %w", err)
	}
	return nil
}
