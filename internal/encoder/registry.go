package encoder

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FallbackFormat is used when neither the requested nor the source
// format can be written.
const FallbackFormat = "png"

// priority is the display and lookup order of the built-in encoders.
var priority = []string{"png", "bmp", "tiff", "jpeg"}

// Registry maps format names and file extensions to encoders.
type Registry struct {
	encoders map[string]Encoder
	byExt    map[string]Encoder
}

// NewRegistry creates a registry holding every built-in encoder.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
		byExt:    make(map[string]Encoder),
	}
	for _, enc := range []Encoder{
		&PNGEncoder{},
		&BMPEncoder{},
		&TIFFEncoder{},
		&JPEGEncoder{},
	} {
		r.Register(enc)
	}
	return r
}

// Register adds or replaces the encoder for enc.Format().
func (r *Registry) Register(enc Encoder) {
	r.encoders[enc.Format()] = enc
	for _, ext := range enc.Extensions() {
		r.byExt[ext] = enc
	}
}

// Get returns the encoder for a format name or extension, or nil.
func (r *Registry) Get(format string) Encoder {
	format = strings.ToLower(strings.TrimPrefix(format, "."))
	if enc, ok := r.encoders[format]; ok {
		return enc
	}
	return r.byExt[format]
}

// ForPath picks the encoder matching the extension of path.
func (r *Registry) ForPath(path string) (Encoder, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil, fmt.Errorf("%s: no file extension to pick an output format", path)
	}
	enc := r.Get(ext)
	if enc == nil {
		return nil, fmt.Errorf("%s: unsupported output format %q (available: %s)",
			path, ext, strings.Join(r.Available(), ", "))
	}
	return enc, nil
}

// Available returns all format names.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range priority {
		if _, ok := r.encoders[f]; ok {
			result = append(result, f)
		}
	}
	return result
}

// Resolve chooses the output encoder: the requested format when known,
// else the source format when it can be written, else FallbackFormat.
func (r *Registry) Resolve(requested, sourceFormat string) Encoder {
	if requested != "" {
		if enc := r.Get(requested); enc != nil {
			return enc
		}
	}
	if enc := r.Get(sourceFormat); enc != nil {
		return enc
	}
	return r.encoders[FallbackFormat]
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
