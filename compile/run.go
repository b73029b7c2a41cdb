// Package compile implements the compile subcommand: it turns YAML style
// documents into element style declarations and auxiliary font stylesheets.
package compile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"htstyle/config"
	"htstyle/css"
	"htstyle/fonts"
	"htstyle/htmltext"
	"htstyle/state"
)

// result keeps one compiled document until everything settles, so output
// order matches argument order no matter how compilation interleaves.
type result struct {
	source     string
	element    string
	stylesheet string
}

// Run compiles all style documents given on the command line.
func Run(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.NArg() == 0 {
		return errors.New("nothing to do, no style documents specified")
	}

	if scale := cmd.Float("scale"); scale > 0 {
		env.Scale = scale
	}
	env.Overwrite = cmd.Bool("overwrite")
	outDir := cmd.String("out")

	sources := cmd.Args().Slice()
	results := make([]result, len(sources))

	// Documents compile concurrently; the registry dedupes font loads
	// shared between them.
	g, gctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			res, err := compileOne(gctx, env, source)
			if err != nil {
				return fmt.Errorf("unable to compile '%s': %w", source, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, res := range results {
		if err := emit(env, res, outDir); err != nil {
			return err
		}
	}
	return nil
}

func compileOne(ctx context.Context, env *state.LocalEnv, source string) (result, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return result{}, err
	}
	doc, err := config.ParseDocument(data)
	if err != nil {
		return result{}, err
	}

	s := htmltext.New(env.Registry, env.Log)
	defer s.CleanFonts()

	doc.Apply(s)
	loadFonts(ctx, env.Log, s, doc)

	env.Log.Debug("Compiled style document",
		zap.String("source", source),
		zap.Float64("scale", env.Scale),
		zap.Int("fonts", len(s.Fonts())),
		zap.Uint64("version", s.Version()))

	return result{
		source:     source,
		element:    s.CSS(env.Scale),
		stylesheet: s.GlobalCSS(),
	}, nil
}

// loadFonts preloads fonts named by the document plus any @font-face
// sources referenced from its custom stylesheet. A font that cannot be
// loaded is reported and skipped - the compiled declaration is still
// usable, the face just falls back at render time.
func loadFonts(ctx context.Context, log *zap.Logger, s *htmltext.Style, doc *config.Document) {
	for _, spec := range doc.Fonts {
		opts := fonts.FaceOptions{Family: spec.Family, Weight: spec.Weight, Style: spec.Style}
		if err := s.LoadFont(ctx, spec.URL, opts); err != nil {
			log.Warn("Unable to load font", zap.String("url", spec.URL), zap.Error(err))
		}
	}
	for _, face := range css.ScanFontFaces([]byte(doc.Stylesheet), log) {
		opts := fonts.FaceOptions{Family: face.Family, Weight: face.Weight, Style: face.Style}
		if err := s.LoadFont(ctx, face.Src, opts); err != nil {
			log.Warn("Unable to load stylesheet font", zap.String("url", face.Src), zap.Error(err))
		}
	}
}

func emit(env *state.LocalEnv, res result, outDir string) error {
	if len(outDir) == 0 {
		fmt.Printf("/* %s */\n%s\n\n/* %s: fonts */\n%s\n", res.source, res.element, res.source, res.stylesheet)
		return nil
	}

	base := config.CleanFileName(strings.TrimSuffix(filepath.Base(res.source), filepath.Ext(res.source)))
	for name, data := range map[string]string{
		base + ".css":       res.element,
		base + ".fonts.css": res.stylesheet,
	} {
		path := filepath.Join(outDir, name)
		if !env.Overwrite {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("destination '%s' already exists, use --overwrite", path)
			}
		}
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			return fmt.Errorf("unable to write '%s': %w", path, err)
		}
		env.Log.Info("Wrote compiled style", zap.String("file", path), zap.Int("bytes", len(data)))
	}
	return nil
}
