package fonts

import (
	"context"
	"fmt"
	"sync"
)

// Face is the platform-facing description of one installable font face.
// Source is the ephemeral local handle of the fetched bytes - valid only
// while the owning resource stays registered, resolvable via Registry.Blob.
type Face struct {
	Family string
	Weight string
	Style  string
	Source string
}

// Installer is the host platform's font installation API.
type Installer interface {
	// Install makes the face usable by family name and returns an opaque
	// handle for later removal.
	Install(ctx context.Context, face Face) (string, error)
	// Uninstall removes a previously installed face.
	Uninstall(handle string) error
}

// CollectingInstaller is an Installer for hosts that pick fonts up from the
// emitted @font-face stylesheet instead of a platform call: it only records
// installed faces so lifecycle and readiness still behave normally.
type CollectingInstaller struct {
	mu    sync.Mutex
	next  int
	faces map[string]Face
}

func NewCollectingInstaller() *CollectingInstaller {
	return &CollectingInstaller{faces: make(map[string]Face)}
}

func (ci *CollectingInstaller) Install(_ context.Context, face Face) (string, error) {
	ci.mu.Lock()
	defer ci.mu.Unlock()
	ci.next++
	handle := fmt.Sprintf("face/%d", ci.next)
	ci.faces[handle] = face
	return handle, nil
}

func (ci *CollectingInstaller) Uninstall(handle string) error {
	ci.mu.Lock()
	defer ci.mu.Unlock()
	if _, ok := ci.faces[handle]; !ok {
		return fmt.Errorf("unknown face handle '%s'", handle)
	}
	delete(ci.faces, handle)
	return nil
}

// Installed returns currently installed faces keyed by handle.
func (ci *CollectingInstaller) Installed() map[string]Face {
	ci.mu.Lock()
	defer ci.mu.Unlock()
	out := make(map[string]Face, len(ci.faces))
	for h, f := range ci.faces {
		out[h] = f
	}
	return out
}
