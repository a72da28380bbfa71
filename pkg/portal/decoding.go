package portal

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type composedReadCloser struct {
	io.Reader
	io.Closer
}

type noErrorCloseFunc func()

func (fn noErrorCloseFunc) Close() error {
	fn()

	return nil
}

// wrapHTTPBody returns a reader over the decoded body. Closing it does not close
// resp.Body; the caller owns that.
func wrapHTTPBody(resp *http.Response) (io.ReadCloser, string, error) {
	encoding := strings.TrimSpace(strings.ToLower(resp.Header.Get("Content-Encoding")))
	if idx := strings.IndexRune(encoding, ','); idx >= 0 {
		encoding = strings.TrimSpace(encoding[:idx])
	}

	switch encoding {
	case "", "identity":
		return io.NopCloser(resp.Body), encoding, nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), encoding, nil
	case "gzip":
		reader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, encoding, fmt.Errorf("prepare gzip decoder: %w", err)
		}

		return reader, encoding, nil
	case "zstd", "zstandard":
		decoder, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, encoding, fmt.Errorf("prepare zstd decoder: %w", err)
		}

		return composedReadCloser{Reader: decoder, Closer: noErrorCloseFunc(decoder.Close)}, encoding, nil
	default:
		return nil, encoding, fmt.Errorf("unsupported content encoding: %s", encoding)
	}
}
