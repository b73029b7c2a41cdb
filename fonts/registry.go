// Package fonts keeps the reference-counted registry of externally loaded
// font resources shared by style instances. One entry exists per source URL
// while at least one instance holds a reference; entries are fetched,
// sniffed, base64-encoded and installed through the host platform exactly
// once per lifetime, no matter how many instances share them.
package fonts

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// FaceOptions overrides face attributes derived from the source URL.
type FaceOptions struct {
	Family string
	Weight string
	Style  string
}

// Resource is one reference-counted font registry entry. All mutable fields
// are guarded by the owning registry, readers go through accessors.
type Resource struct {
	reg *Registry

	url    string
	family string
	weight string
	style  string

	data   string // base64 payload, set by decode stage
	mime   string
	handle string // ephemeral local handle, revoked on release
	face   string // installed platform handle, set iff install succeeded

	refs int
	err  error
	done chan struct{}
}

func (res *Resource) URL() string    { return res.url }
func (res *Resource) Family() string { return res.family }
func (res *Resource) Weight() string { return res.weight }
func (res *Resource) Style() string  { return res.style }

// Data returns the base64 payload, empty until the fetch/decode stages ran.
func (res *Resource) Data() string {
	res.reg.mu.Lock()
	defer res.reg.mu.Unlock()
	return res.data
}

// MIME returns the sniffed font MIME type, empty until decode ran.
func (res *Resource) MIME() string {
	res.reg.mu.Lock()
	defer res.reg.mu.Unlock()
	return res.mime
}

// Handle returns the ephemeral local handle, empty once revoked.
func (res *Resource) Handle() string {
	res.reg.mu.Lock()
	defer res.reg.mu.Unlock()
	return res.handle
}

// Face returns the installed platform handle, empty until installation
// completed successfully.
func (res *Resource) Face() string {
	res.reg.mu.Lock()
	defer res.reg.mu.Unlock()
	return res.face
}

// Installed reports whether platform installation completed successfully.
func (res *Resource) Installed() bool {
	return res.Face() != ""
}

// Refs returns current reference count.
func (res *Resource) Refs() int {
	res.reg.mu.Lock()
	defer res.reg.mu.Unlock()
	return res.refs
}

// Ready blocks until the load settles (installed or failed) and returns the
// load outcome. Cancelling ctx abandons the wait only - the load itself is
// never cancelled. Safe to call any number of times from any goroutine.
func (res *Resource) Ready(ctx context.Context) error {
	select {
	case <-res.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	res.reg.mu.Lock()
	defer res.reg.mu.Unlock()
	return res.err
}

// Registry owns the resource table. It is an explicit object rather than
// process-global state so sharing and lifetime stay visible to callers; all
// style instances meant to share fonts must share the registry.
type Registry struct {
	mu        sync.Mutex
	resources map[string]*Resource
	blobs     map[string][]byte

	fetcher   Fetcher
	installer Installer
	cache     *Cache
	log       *zap.Logger
}

// NewRegistry creates an empty registry. Nil fetcher falls back to
// DefaultFetcher, nil installer to a CollectingInstaller, nil log to no-op.
func NewRegistry(fetcher Fetcher, installer Installer, log *zap.Logger) *Registry {
	if fetcher == nil {
		fetcher = &DefaultFetcher{}
	}
	if installer == nil {
		installer = NewCollectingInstaller()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		resources: make(map[string]*Resource),
		blobs:     make(map[string][]byte),
		fetcher:   fetcher,
		installer: installer,
		log:       log.Named("font-registry"),
	}
}

// SetCache attaches a persistent fetch cache consulted before the fetcher.
func (r *Registry) SetCache(c *Cache) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = c
}

// Acquire returns the resource for url, creating and loading it on first
// request. The check-and-create step is atomic, so concurrent first-time
// requests for one URL share a single fetch/install sequence. The returned
// resource is registered and counted immediately even though installation
// is still pending - wait on Resource.Ready before measuring with it.
// The reported flag is true when this call created the entry.
func (r *Registry) Acquire(ctx context.Context, url string, opts FaceOptions) (*Resource, bool) {
	r.mu.Lock()
	if res, ok := r.resources[url]; ok {
		res.refs++
		r.mu.Unlock()
		r.log.Debug("Sharing font resource", zap.String("url", url), zap.Int("refs", res.Refs()))
		return res, false
	}

	res := &Resource{
		reg:    r,
		url:    url,
		family: opts.Family,
		weight: opts.Weight,
		style:  opts.Style,
		refs:   1,
		done:   make(chan struct{}),
	}
	if res.family == "" {
		res.family = DeriveFamily(url)
	}
	if res.weight == "" {
		res.weight = "normal"
	}
	if res.style == "" {
		res.style = "normal"
	}
	r.resources[url] = res
	r.mu.Unlock()

	r.log.Debug("Loading font resource",
		zap.String("url", url),
		zap.String("family", res.family),
		zap.String("weight", res.weight),
		zap.String("style", res.style))

	// In-flight loads survive caller cancellation - there is no way to
	// cancel a load short of releasing the resource.
	go r.load(context.WithoutCancel(ctx), res)
	return res, true
}

// load runs the fetch/decode/install pipeline for a freshly created entry
// and settles its completion signal.
func (r *Registry) load(ctx context.Context, res *Resource) {
	err := r.runLoad(ctx, res)

	r.mu.Lock()
	res.err = err
	r.mu.Unlock()
	close(res.done)

	if err != nil {
		r.log.Warn("Font load failed", zap.String("url", res.url), zap.Error(err))
		return
	}
	r.log.Debug("Font installed", zap.String("url", res.url), zap.String("face", res.Face()))
}

func (r *Registry) runLoad(ctx context.Context, res *Resource) error {
	// fetch
	data, mime, cached, err := r.fetchBytes(ctx, res.url)
	if err != nil {
		return &LoadError{URL: res.url, Stage: StageFetch, Err: err}
	}

	// decode: sniff the payload, refuse non-font bytes
	if mime == "" {
		mime = sniffFontMIME(res.url, data)
	}
	if mime == "" {
		return &LoadError{URL: res.url, Stage: StageDecode,
			Err: fmt.Errorf("payload is not a recognized font format (%d bytes)", len(data))}
	}
	if !cached && r.cache != nil {
		if err := r.cache.Put(res.url, mime, data); err != nil {
			r.log.Warn("Unable to cache font", zap.String("url", res.url), zap.Error(err))
		}
	}

	handle := "local/" + uuid.NewString()
	r.mu.Lock()
	r.blobs[handle] = data
	res.data = base64.StdEncoding.EncodeToString(data)
	res.mime = mime
	res.handle = handle
	r.mu.Unlock()

	// install
	face, err := r.installer.Install(ctx, Face{
		Family: res.family,
		Weight: res.weight,
		Style:  res.style,
		Source: handle,
	})
	if err != nil {
		return &LoadError{URL: res.url, Stage: StageInstall, Err: err}
	}

	r.mu.Lock()
	res.face = face
	r.mu.Unlock()
	return nil
}

func (r *Registry) fetchBytes(ctx context.Context, url string) (data []byte, mime string, cached bool, err error) {
	r.mu.Lock()
	cache := r.cache
	r.mu.Unlock()

	if cache != nil {
		data, mime, err = cache.Get(url)
		if err != nil {
			r.log.Warn("Font cache lookup failed", zap.String("url", url), zap.Error(err))
		} else if data != nil {
			r.log.Debug("Font served from cache", zap.String("url", url), zap.Int("bytes", len(data)))
			return data, mime, true, nil
		}
	}

	data, err = r.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, "", false, err
	}
	if len(data) == 0 {
		return nil, "", false, fmt.Errorf("empty response for '%s'", url)
	}
	return data, "", false, nil
}

// Release revokes the caller's hold on the resource: the ephemeral handle is
// revoked and the reference count drops; at zero the face is uninstalled
// and the entry leaves the registry. Uninstall problems are returned for
// logging - the entry is gone regardless.
func (r *Registry) Release(res *Resource) error {
	r.mu.Lock()
	if res.handle != "" {
		delete(r.blobs, res.handle)
		res.handle = ""
	}
	// Releasing an already-evicted resource is a no-op; identity check keeps
	// a stale release from evicting a newer entry for the same URL.
	cur, held := r.resources[res.url]
	if !held || cur != res {
		r.mu.Unlock()
		return nil
	}
	if res.refs > 0 {
		res.refs--
	}
	evict := res.refs == 0
	var face string
	if evict {
		delete(r.resources, res.url)
		face = res.face
	}
	refs := res.refs
	r.mu.Unlock()

	if !evict {
		r.log.Debug("Released shared font resource", zap.String("url", res.url), zap.Int("refs", refs))
		return nil
	}

	r.log.Debug("Evicting font resource", zap.String("url", res.url))
	if face != "" {
		if err := r.installer.Uninstall(face); err != nil {
			return fmt.Errorf("unable to uninstall font face for '%s': %w", res.url, err)
		}
	}
	return nil
}

// Lookup returns the registered resource for url, if any. Inspection only -
// the reference count is not touched.
func (r *Registry) Lookup(url string) (*Resource, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resources[url]
	return res, ok
}

// Len returns the number of registered resources.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.resources)
}

// List returns registered source URLs in natural order.
func (r *Registry) List() []string {
	r.mu.Lock()
	urls := make([]string, 0, len(r.resources))
	for url := range r.resources {
		urls = append(urls, url)
	}
	r.mu.Unlock()

	sort.Slice(urls, func(i, j int) bool { return natural.Less(urls[i], urls[j]) })
	return urls
}

// Blob resolves an ephemeral handle to the fetched bytes. Installers use it
// while installation is in progress.
func (r *Registry) Blob(handle string) ([]byte, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	data, ok := r.blobs[handle]
	return data, ok
}

// Close force-evicts everything regardless of reference counts. Meant for
// process shutdown, not for style cleanup.
func (r *Registry) Close() error {
	r.mu.Lock()
	faces := make([]string, 0, len(r.resources))
	for _, res := range r.resources {
		if res.face != "" {
			faces = append(faces, res.face)
		}
	}
	r.resources = make(map[string]*Resource)
	r.blobs = make(map[string][]byte)
	r.mu.Unlock()

	var err error
	for _, face := range faces {
		if er := r.installer.Uninstall(face); er != nil {
			err = multierr.Append(err, er)
		}
	}
	return err
}

// DeriveFamily builds the default font family name from the base file name
// of the source URL: "fonts/Open Sans.woff2" becomes "open-sans".
func DeriveFamily(url string) string {
	base := path.Base(strings.ReplaceAll(url, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))
	base = norm.NFC.String(base)
	if s := slug.Make(base); s != "" {
		return s
	}
	return "font-" + uuid.NewString()[:8]
}

// sniffFontMIME detects the font MIME type from content, falling back to
// the URL extension for formats the sniffer does not know.
func sniffFontMIME(url string, data []byte) string {
	if kind, err := filetype.Match(data); err == nil && kind != filetype.Unknown {
		switch kind.Extension {
		case "woff", "woff2", "ttf", "otf", "eot":
			return kind.MIME.Value
		}
	}
	switch strings.ToLower(path.Ext(url)) {
	case ".woff":
		return "font/woff"
	case ".woff2":
		return "font/woff2"
	case ".ttf":
		return "font/ttf"
	case ".otf":
		return "font/otf"
	case ".eot":
		return "application/vnd.ms-fontobject"
	}
	return ""
}
