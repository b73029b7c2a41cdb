package fonts

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// Fetcher retrieves raw font bytes for a source URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// DefaultFetcher resolves http(s) URLs over the network and everything else
// against a base directory on the local filesystem.
type DefaultFetcher struct {
	Client *http.Client // nil means http.DefaultClient
	Base   string       // base directory for relative paths, "." when empty
}

func (f *DefaultFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return f.fetchHTTP(ctx, url)
	}
	return f.fetchFile(url)
}

func (f *DefaultFetcher) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("unable to build font request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch font: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to fetch font: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read font response: %w", err)
	}
	return data, nil
}

// fetchFile loads a font from the local filesystem. os.DirFS roots the
// lookup at Base and refuses absolute paths or ".." escapes, preventing
// path traversal through crafted stylesheet URLs.
func (f *DefaultFetcher) fetchFile(url string) ([]byte, error) {
	base := f.Base
	if base == "" {
		base = "."
	}
	data, err := fs.ReadFile(os.DirFS(base), filepath.ToSlash(url))
	if err != nil {
		return nil, fmt.Errorf("unable to read font file: %w", err)
	}
	return data, nil
}
