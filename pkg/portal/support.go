package portal

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
)

func CloseWithLog(c io.Closer) {
	if c == nil {
		return
	}

	if err := c.Close(); err != nil {
		slog.Error("failed to close resource", "err", err)
	}
}

func ParseClientIP(r *http.Request) string {
	// prefer X-Forwarded-For if present
	xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For"))
	if xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}

	return strings.TrimSpace(r.RemoteAddr)
}

func RequestIDFrom(r *http.Request) string {
	if r == nil {
		return ""
	}

	if v, ok := r.Context().Value(RequestIDKey).(string); ok {
		if id := strings.TrimSpace(v); id != "" {
			return id
		}
	}

	return strings.TrimSpace(r.Header.Get(RequestIDHeader))
}

// ReadWithSizeLimit reads from an io.Reader with a size limit to prevent DoS attacks.
// The default size limit is 5MB.
func ReadWithSizeLimit(reader io.Reader, maxSize ...int64) ([]byte, error) {
	if reader == nil {
		return nil, io.ErrUnexpectedEOF
	}

	const defaultMaxSize int64 = 5 * 1024 * 1024

	limit := defaultMaxSize
	if len(maxSize) > 0 && maxSize[0] > 0 {
		limit = maxSize[0]
	}

	limitedReader := &io.LimitedReader{R: reader, N: limit + 1}
	data, err := io.ReadAll(limitedReader)

	if int64(len(data)) > limit || err != nil {
		return nil, fmt.Errorf("read exceeds size limit: %d, error: %w", limit, err)
	}

	return data, nil
}
