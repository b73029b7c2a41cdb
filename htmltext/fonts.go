package htmltext

import (
	"context"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"htstyle/fonts"
	"htstyle/style"
)

// LoadFont makes the font at url usable by family name in this style's
// declarations. The registry entry is attached and counted before any
// blocking work, so the font shows up in Fonts immediately; the call
// returns only once platform installation has settled, after which layout
// and measurement may rely on the face. Loading the same URL again, from
// this or any other style sharing the registry, reuses the entry without
// refetching.
func (s *Style) LoadFont(ctx context.Context, url string, opts fonts.FaceOptions) error {
	for _, owned := range s.fonts {
		if owned.URL() == url {
			// already attached, just await readiness
			return owned.Ready(ctx)
		}
	}

	res, _ := s.reg.Acquire(ctx, url, opts)
	s.Mutate(func() bool {
		s.fonts = append(s.fonts, res)
		return true
	})

	if err := res.Ready(ctx); err != nil {
		return err
	}

	// installed face invalidates previously compiled declarations
	s.Mutate(func() bool { return true })
	return nil
}

// CleanFonts releases every font owned by this style: reference counts
// drop, sole-owner entries are uninstalled and evicted, the family stack
// returns to the system default. One version bump covers the whole
// cleanup; owning no fonts makes this a no-op.
func (s *Style) CleanFonts() {
	if len(s.fonts) == 0 {
		return
	}

	var err error
	for _, res := range s.fonts {
		err = multierr.Append(err, s.reg.Release(res))
	}
	if err != nil {
		s.log.Warn("Problems releasing fonts", zap.Error(err))
	}

	s.Mutate(func() bool {
		s.fonts = nil
		s.SetFontFamily(style.DefaultFontFamily...)
		return true
	})
}
