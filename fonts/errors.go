package fonts

import "fmt"

// LoadStage identifies the pipeline stage a font load failed in.
type LoadStage int

const (
	StageFetch LoadStage = iota
	StageDecode
	StageInstall
)

var loadStageNames = [...]string{"fetch", "decode", "install"}

func (s LoadStage) String() string {
	if s < 0 || int(s) >= len(loadStageNames) {
		return "unknown"
	}
	return loadStageNames[s]
}

// LoadError reports a failed font load. The registry entry for the URL (if
// one was created) is left in place uninstalled - releasing it is up to the
// owning style instances, re-acquiring it silently shares the broken entry.
type LoadError struct {
	URL   string
	Stage LoadStage
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("font load failed at %s stage for '%s': %v", e.Stage, e.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
