// Package image loads images from files or URLs and picks seed tones
// from their pixels.
package image

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/jmylchreest/halftone/internal/util/http"
	"github.com/jmylchreest/halftone/internal/util/imagecache"
)

// ErrEmptyPath is returned when no image path is given.
var ErrEmptyPath = errors.New("image path cannot be empty")

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path.
	Load(ctx context.Context, path string) (image.Image, error)
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP.
func (l *FileLoader) Load(_ context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to stat image file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	return img, nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

// IsImageFile checks if a file has a supported image extension.
func IsImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// IsURL reports whether path is an HTTP(S) URL.
func IsURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// SmartLoader loads images from both local files and HTTP(S) URLs.
type SmartLoader struct {
	fileLoader *FileLoader
	fetch      httputil.FetchOptions
	cache      *imagecache.Cache
	logger     hclog.Logger
}

// NewSmartLoader creates a new SmartLoader. A nil logger discards output.
func NewSmartLoader(opts httputil.FetchOptions, logger hclog.Logger) *SmartLoader {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &SmartLoader{
		fileLoader: NewFileLoader(),
		fetch:      opts,
		logger:     logger,
	}
}

// WithCache routes URL downloads through c. A nil cache fetches directly.
func (l *SmartLoader) WithCache(c *imagecache.Cache) *SmartLoader {
	l.cache = c
	return l
}

// Load loads an image from either a local file path or HTTP(S) URL.
func (l *SmartLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if IsURL(path) {
		return l.loadFromURL(ctx, path)
	}
	if !IsImageFile(path) {
		l.logger.Warn("unrecognised image extension, decoding by content",
			"path", path, "supported", strings.Join(SupportedImageExtensions(), ", "))
	}
	l.logger.Debug("loading image", "path", path)
	return l.fileLoader.Load(ctx, path)
}

// loadFromURL fetches and decodes an image from an HTTP(S) URL.
func (l *SmartLoader) loadFromURL(ctx context.Context, url string) (image.Image, error) {
	l.logger.Debug("fetching image", "url", url)
	var data []byte
	var err error
	if l.cache != nil {
		data, err = l.cache.Fetch(ctx, url, l.fetch)
	} else {
		data, err = httputil.Fetch(ctx, url, l.fetch)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	l.logger.Debug("decoded image", "format", format, "bytes", len(data))

	return img, nil
}
