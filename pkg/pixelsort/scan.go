package pixelsort

// Line is one row or column of a Buffer. Positions along the line run
// from 0 to Len()-1; the perpendicular coordinate is fixed.
type Line struct {
	buf      Buffer
	fixed    int
	vertical bool
}

// ColumnLine is column x, scanned top to bottom.
func ColumnLine(buf Buffer, x int) Line {
	return Line{buf: buf, fixed: x, vertical: true}
}

// RowLine is row y, scanned left to right.
func RowLine(buf Buffer, y int) Line {
	return Line{buf: buf, fixed: y}
}

func (l Line) Len() int {
	if l.vertical {
		return l.buf.Height()
	}
	return l.buf.Width()
}

func (l Line) At(i int) Color {
	if l.vertical {
		return l.buf.Pixel(l.fixed, i)
	}
	return l.buf.Pixel(i, l.fixed)
}

func (l Line) Set(i int, c Color) {
	if l.vertical {
		l.buf.SetPixel(l.fixed, i, c)
		return
	}
	l.buf.SetPixel(i, l.fixed, c)
}

// FindSpanStart returns the first position at or after start whose pixel
// opens a span under m. ok is false when the line ends first.
//
// A start at or past the end of the line is returned as found. Callers
// never pass such a start from SortLine, and existing fixtures rely on it.
func FindSpanStart(l Line, start int, m Mode) (pos int, ok bool) {
	n := l.Len()
	if start >= n {
		return start, true
	}
	for p := start; p < n; p++ {
		if m.opens(l.At(p)) {
			return p, true
		}
	}
	return 0, false
}

// FindSpanEnd returns the last position of the span that begins at start:
// the pixel just before the first one after start that closes the span,
// or the last pixel of the line when nothing closes it. When start is
// the last position (or beyond) it is returned unchanged.
func FindSpanEnd(l Line, start int, m Mode) int {
	n := l.Len()
	if start+1 >= n {
		return start
	}
	for p := start + 1; p < n; p++ {
		if m.closes(l.At(p)) {
			return p - 1
		}
	}
	return n - 1
}
