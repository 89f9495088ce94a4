package hasher

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/AnyUserName/pixelsort/pkg/pixelsort"
)

// NameLen is the number of hex chars used in content-addressed
// filenames.
const NameLen = 8

// ContentHash computes the xxHash64 of data as hex, truncated to hexLen
// chars (hexLen <= 0 keeps all 16).
func ContentHash(data []byte, hexLen int) string {
	return format(xxhash.Sum64(data), hexLen)
}

// ContentHashReader computes xxHash64 from a reader, streaming.
func ContentHashReader(r io.Reader, hexLen int) (string, error) {
	d := xxhash.New()
	if _, err := io.Copy(d, r); err != nil {
		return "", err
	}
	return format(d.Sum64(), hexLen), nil
}

// FileHash hashes the contents of the file at path.
func FileHash(path string, hexLen int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ContentHashReader(f, hexLen)
}

// PixelHash hashes the dimensions and raw pixels of img, independent of
// the file format it came from.
func PixelHash(img *pixelsort.RGBImage, hexLen int) string {
	d := xxhash.New()
	var dims [16]byte
	binary.BigEndian.PutUint64(dims[:8], uint64(img.W))
	binary.BigEndian.PutUint64(dims[8:], uint64(img.H))
	d.Write(dims[:])
	for y := 0; y < img.H; y++ {
		i := y * img.Stride
		d.Write(img.Pix[i : i+3*img.W])
	}
	return format(d.Sum64(), hexLen)
}

func format(sum uint64, hexLen int) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], sum)
	full := hex.EncodeToString(b[:])
	if hexLen > 0 && hexLen < len(full) {
		return full[:hexLen]
	}
	return full
}
