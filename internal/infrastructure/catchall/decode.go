package catchall

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// decompress undoes transparent compression the upstream occasionally applies
// without a matching Content-Encoding header. Detection is by magic bytes;
// anything that fails to inflate is returned as-is.
func decompress(body []byte) []byte {
	if len(body) >= 2 && body[0] == 0x1f && body[1] == 0x8b {
		if r, err := gzip.NewReader(bytes.NewReader(body)); err == nil {
			if out, err := io.ReadAll(r); err == nil {
				r.Close()
				return out
			}
			r.Close()
		}
		return body
	}

	if len(body) >= 1 && body[0] == 0x78 {
		if r, err := zlib.NewReader(bytes.NewReader(body)); err == nil {
			if out, err := io.ReadAll(r); err == nil {
				r.Close()
				return out
			}
			r.Close()
		}
		// Some producers emit a raw deflate stream with a zlib-looking
		// first byte.
		fr := flate.NewReader(bytes.NewReader(body))
		if out, err := io.ReadAll(fr); err == nil {
			fr.Close()
			return out
		}
		fr.Close()
		return body
	}

	return body
}

// decodeText turns a response body into a string, preferring UTF-8 and
// falling back to Latin-1, which accepts any byte sequence. It never fails.
func decodeText(body []byte) string {
	if utf8.Valid(body) {
		return string(body)
	}
	if out, err := charmap.ISO8859_1.NewDecoder().Bytes(body); err == nil {
		return string(out)
	}
	return string(body)
}
