package pipeline

import (
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/AnyUserName/pixelsort/internal/encoder"
	"github.com/AnyUserName/pixelsort/internal/manifest"
	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

// Config holds all parameters for a batch run.
type Config struct {
	InputDir  string
	OutputDir string
	Preset    string
	Options   pixelsort.Options // Options.Workers parallelizes each image
	Format    string            // output format; "" keeps the source format
	Quality   int               // lossy encoders only
	Workers   int               // images processed concurrently
	Generator string            // version recorded in the manifest
	Verbose   bool
}

// Pipeline sorts every image of a directory tree.
type Pipeline struct {
	cfg      Config
	registry *encoder.Registry
}

// New creates a configured pipeline.
func New(cfg Config) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return &Pipeline{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
	}
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[pixelsort] "+format+"\n", args...)
	}
}

// Run processes all images and returns the manifest. Failed images are
// reported and left out; Run fails only when no image succeeds.
func (p *Pipeline) Run() (*manifest.Manifest, error) {
	p.logf("%s", p.registry.String())

	sources, err := ScanImages(p.cfg.InputDir, p.cfg.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("no images found in %s", p.cfg.InputDir)
	}
	p.logf("found %d images", len(sources))

	results := make([]processResult, len(sources))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.cfg.Workers)

	for i, src := range sources {
		i, src := i, src
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			p.logf("sorting: %s", src.Key)
			results[i] = processImage(src, p.cfg, p.registry)
			if r := results[i]; r.err == nil {
				p.logf("done: %s (%d spans, %d pixels moved)",
					src.Key, r.image.Spans.Spans, r.image.Spans.MovedPixels)
			}
		}()
	}
	wg.Wait()

	m := manifest.New(p.cfg.Generator, p.cfg.Preset, p.cfg.Options)

	var errs []error
	for _, r := range results {
		if r.err != nil {
			errs = append(errs, r.err)
			continue
		}
		m.Images[r.key] = r.image
	}

	if len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "[pixelsort] error: %v\n", e)
		}
		if len(errs) == len(sources) {
			return nil, fmt.Errorf("all %d images failed to process", len(errs))
		}
		fmt.Fprintf(os.Stderr, "[pixelsort] warning: %d of %d images had errors\n",
			len(errs), len(sources))
	}

	m.BuildInfo = &manifest.BuildInfo{
		Workers:     p.cfg.Workers,
		SortWorkers: max(p.cfg.Options.Workers, 1),
	}
	m.ComputeStats()
	return m, nil
}
