// Package pixelsort implements threshold-based pixel sorting in the style
// of Kim Asendorf's ASDF Pixel Sort.
//
// Every column and then every row of an image is cut into spans by a
// threshold test (see Mode). The pixels inside each span are sorted in
// ascending Color order; pixels outside spans never move.
package pixelsort

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// Stats summarises the work done by a sort call.
type Stats struct {
	Lines        int `json:"lines"`
	Spans        int `json:"spans"`
	SortedPixels int `json:"sorted_pixels"`
	MovedPixels  int `json:"moved_pixels"`
}

func (s *Stats) Add(o Stats) {
	s.Lines += o.Lines
	s.Spans += o.Spans
	s.SortedPixels += o.SortedPixels
	s.MovedPixels += o.MovedPixels
}

// Sort sorts buf in place with DefaultOptions.
func Sort(buf Buffer) Stats {
	return SortWithOptions(buf, DefaultOptions())
}

// SortWithOptions sorts buf in place. All columns are sorted before any
// row when opts.Direction is Both.
//
// With opts.Workers > 1 the lines of each axis are sorted concurrently;
// buf must then allow SetPixel calls on different pixels from several
// goroutines. The result is identical to the sequential one.
func SortWithOptions(buf Buffer, opts Options) Stats {
	if !opts.Mode.Kind.Valid() {
		opts.Mode = BrightnessMode()
	}

	var st Stats
	if opts.Direction.HasColumn() {
		st.Add(sortLines(buf.Width(), opts.Workers, func(x int) Line {
			return ColumnLine(buf, x)
		}, opts.Mode))
	}
	if opts.Direction.HasRow() {
		st.Add(sortLines(buf.Height(), opts.Workers, func(y int) Line {
			return RowLine(buf, y)
		}, opts.Mode))
	}
	return st
}

// SortColumn sorts the spans of column x.
func SortColumn(buf Buffer, x int, m Mode) Stats {
	return SortLine(ColumnLine(buf, x), m)
}

// SortRow sorts the spans of row y.
func SortRow(buf Buffer, y int, m Mode) Stats {
	return SortLine(RowLine(buf, y), m)
}

// SortLine sorts every span of l in place.
func SortLine(l Line, m Mode) Stats {
	st := Stats{Lines: 1}
	var scratch []Color
	EachSpan(l, m, func(start, end int) {
		st.Spans++
		st.SortedPixels += end - start + 1
		st.MovedPixels += sortSpan(l, start, end, &scratch)
	})
	return st
}

// EachSpan calls fn with the closed range [start, end] of every span of l,
// in order. fn may reorder pixels inside the span it is given.
func EachSpan(l Line, m Mode, fn func(start, end int)) {
	n := l.Len()
	pos, end := 0, 0
	for end < n-1 {
		var ok bool
		if pos, ok = FindSpanStart(l, pos, m); !ok {
			return
		}
		end = FindSpanEnd(l, pos, m)
		fn(pos, end)
		pos = end + 1
	}
}

// sortSpan sorts positions [start, end] of l and returns how many of them
// changed value.
func sortSpan(l Line, start, end int, scratch *[]Color) int {
	end = min(end, l.Len()-1)
	if end <= start {
		return 0
	}

	span := (*scratch)[:0]
	for i := start; i <= end; i++ {
		span = append(span, l.At(i))
	}
	*scratch = span

	if slices.IsSortedFunc(span, Color.Compare) {
		return 0
	}
	orig := slices.Clone(span)
	slices.SortStableFunc(span, Color.Compare)

	moved := 0
	for i, c := range span {
		if c != orig[i] {
			l.Set(start+i, c)
			moved++
		}
	}
	return moved
}

func sortLines(n, workers int, line func(i int) Line, m Mode) Stats {
	var st Stats
	if workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			st.Add(SortLine(line(i), m))
		}
		return st
	}

	per := make([]Stats, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			per[i] = SortLine(line(i), m)
			return nil
		})
	}
	g.Wait()

	for _, s := range per {
		st.Add(s)
	}
	return st
}
