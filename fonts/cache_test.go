package fonts_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"htstyle/fonts"
)

func TestCache_RoundTrip(t *testing.T) {
	cache, err := fonts.OpenCache(filepath.Join(t.TempDir(), "fonts.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	payload := []byte("font-payload-bytes")
	if err := cache.Put("fonts/a.woff2", "font/woff2", payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, mime, err := cache.Get("fonts/a.woff2")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("payload mismatch: %q", data)
	}
	if mime != "font/woff2" {
		t.Errorf("expected font/woff2, got %q", mime)
	}

	// replace
	if err := cache.Put("fonts/a.woff2", "font/woff", []byte("other")); err != nil {
		t.Fatalf("replace: %v", err)
	}
	data, mime, err = cache.Get("fonts/a.woff2")
	if err != nil {
		t.Fatalf("get after replace: %v", err)
	}
	if string(data) != "other" || mime != "font/woff" {
		t.Errorf("replace not visible: %q %q", data, mime)
	}
}

func TestCache_Miss(t *testing.T) {
	cache, err := fonts.OpenCache(":memory:")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	data, mime, err := cache.Get("fonts/absent.woff")
	if err != nil {
		t.Fatalf("miss should not error: %v", err)
	}
	if data != nil || mime != "" {
		t.Errorf("expected empty miss, got %q %q", data, mime)
	}
}

func TestRegistry_CacheAvoidsRefetch(t *testing.T) {
	cache, err := fonts.OpenCache(":memory:")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	defer cache.Close()

	fetcher := newFetcher()
	reg := fonts.NewRegistry(fetcher, nil, nil)
	reg.SetCache(cache)

	res, _ := reg.Acquire(context.Background(), fontURL, fonts.FaceOptions{})
	if err := res.Ready(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := reg.Release(res); err != nil {
		t.Fatalf("release: %v", err)
	}

	// second lifetime of the same URL is served from cache
	res, created := reg.Acquire(context.Background(), fontURL, fonts.FaceOptions{})
	if !created {
		t.Fatal("entry was evicted, reacquire should create it anew")
	}
	if err := res.Ready(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := fetcher.count.Load(); got != 1 {
		t.Errorf("expected single network fetch thanks to cache, got %d", got)
	}
}
