package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/AnyUserName/pixelsort/internal/config"
	"github.com/AnyUserName/pixelsort/internal/encoder"
	"github.com/AnyUserName/pixelsort/internal/manifest"
	"github.com/AnyUserName/pixelsort/internal/pipeline"
	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

func stripesPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8((x*37 + y*91) % 256)
			img.SetNRGBA(x, y, color.NRGBA{R: v, G: 255 - v, B: v / 3, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvPreset, config.EnvMode, config.EnvThreshold,
		config.EnvDirection, config.EnvWorkers, config.EnvFormat, config.EnvQuality} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

// buildOutput runs a batch over two images and returns the output dir
// and its manifest.
func buildOutput(t *testing.T) (string, *manifest.Manifest) {
	t.Helper()
	in := t.TempDir()
	out := t.TempDir()
	for _, name := range []string{"a.png", "sub/b.png"} {
		path := filepath.Join(in, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, stripesPNG(t, 24, 12), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	m, err := pipeline.New(pipeline.Config{
		InputDir:  in,
		OutputDir: out,
		Preset:    "default",
		Options:   pixelsort.DefaultOptions(),
		Workers:   2,
		Generator: toolVersion.String(),
	}).Run()
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	if err := manifest.WriteJSON(m, filepath.Join(out, manifest.FileName)); err != nil {
		t.Fatal(err)
	}
	return out, m
}

func TestValidateManifest(t *testing.T) {
	out, m := buildOutput(t)
	if errs := validateManifest(m, out, true); len(errs) != 0 {
		t.Fatalf("fresh output should validate, got %v", errs)
	}

	read, err := manifest.ReadJSON(filepath.Join(out, manifest.FileName))
	if err != nil {
		t.Fatal(err)
	}
	if errs := validateManifest(read, out, true); len(errs) != 0 {
		t.Fatalf("manifest read back should validate, got %v", errs)
	}
}

func TestValidateDetectsTampering(t *testing.T) {
	out, m := buildOutput(t)

	a := m.Images["a"]
	if err := os.WriteFile(filepath.Join(out, a.Output.Path), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	b := m.Images["sub/b"]
	if err := os.Remove(filepath.Join(out, filepath.FromSlash(b.Output.Path))); err != nil {
		t.Fatal(err)
	}

	errs := strings.Join(validateManifest(m, out, false), "\n")
	for _, want := range []string{"size mismatch", "hash mismatch", "file not found"} {
		if !strings.Contains(errs, want) {
			t.Errorf("missing %q in:\n%s", want, errs)
		}
	}
}

func TestValidateSameSizeEdit(t *testing.T) {
	out, m := buildOutput(t)

	a := m.Images["a"]
	path := filepath.Join(out, a.Output.Path)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data[len(data)-1] ^= 0xff
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	errs := validateManifest(m, out, false)
	if len(errs) != 1 || !strings.Contains(errs[0], "hash mismatch") {
		t.Errorf("want a single hash mismatch, got %v", errs)
	}
}

func TestValidateVersions(t *testing.T) {
	out, m := buildOutput(t)

	m.Generator = "99.0.0"
	m.Version = 7
	errs := strings.Join(validateManifest(m, out, false), "\n")
	if !strings.Contains(errs, "incompatible") || !strings.Contains(errs, "unsupported manifest version") {
		t.Errorf("got:\n%s", errs)
	}

	m.Generator = "dev"
	if errs := strings.Join(validateManifest(m, out, false), "\n"); !strings.Contains(errs, "invalid generator version") {
		t.Errorf("got:\n%s", errs)
	}
}

func TestOutputEncoder(t *testing.T) {
	r := encoder.NewRegistry()
	tests := []struct {
		format, out, source, want string
	}{
		{"", "", "png", "png"},
		{"", "", "webp", "png"},
		{"", "x.tif", "png", "tiff"},
		{"bmp", "x.tif", "png", "bmp"},
	}
	for _, tt := range tests {
		enc, err := outputEncoder(r, tt.format, tt.out, tt.source)
		if err != nil {
			t.Errorf("%+v: %v", tt, err)
			continue
		}
		if enc.Format() != tt.want {
			t.Errorf("%+v: got %q", tt, enc.Format())
		}
	}
	if _, err := outputEncoder(r, "avif", "", "png"); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := outputEncoder(r, "", "x.webp", "png"); err == nil {
		t.Error("expected error for unwritable extension")
	}
}

func TestSortFlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PIXELSORT_PRESET=glow\nPIXELSORT_DIRECTION=row\nPIXELSORT_WORKERS=3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	old := envFile
	envFile = path
	t.Cleanup(func() { envFile = old })

	var f sortFlags
	c := &cobra.Command{Use: "test"}
	f.register(c, "workers")
	if err := c.Flags().Set("direction", "column"); err != nil {
		t.Fatal(err)
	}

	cfg, err := f.load(c)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Preset != "glow" || cfg.Workers != 3 {
		t.Errorf("env values lost: %+v", cfg)
	}
	if cfg.Direction != "column" {
		t.Errorf("flag should win over env: got %q", cfg.Direction)
	}
	if cfg.Mode != "" {
		t.Errorf("unset flag should not override: got mode %q", cfg.Mode)
	}
}

func TestRunSort(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	src := stripesPNG(t, 20, 10)
	if err := os.WriteFile(in, src, 0o644); err != nil {
		t.Fatal(err)
	}
	clearEnv(t)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}

	sortOut = filepath.Join(dir, "out.bmp")
	t.Cleanup(func() { sortOut = "" })
	if err := runSort(sortCmd, []string{in}); err != nil {
		t.Fatalf("runSort: %v", err)
	}

	data, err := os.ReadFile(sortOut)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	got, err := pipeline.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	want, err := pipeline.Decode(src)
	if err != nil {
		t.Fatal(err)
	}
	pixelsort.Sort(want)
	if !bytes.Equal(got.Pix, want.Pix) {
		t.Error("sort command output differs from pixelsort.Sort")
	}
}
