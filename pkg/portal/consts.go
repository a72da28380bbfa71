package portal

const DatesLayout = "2006-01-02 15:04:05"

// ---- HTTP

const RequestIDHeader = "X-Request-ID"
const JSONContentType = "application/json"
const HTMLContentType = "text/html; charset=utf-8"
const AcceptEncodings = "br, zstd, gzip"

// ---- Context

type contextKey string

const RequestIDKey contextKey = "request.id"
