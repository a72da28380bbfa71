package portal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/skillpath/pkg/portal"

type Client struct {
	UserAgent      string
	client         *http.Client
	transport      *http.Transport
	OnHeaders      func(req *http.Request)
	AbortOnNone2xx bool
}

func GetDefaultTransport() *http.Transport {
	return &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		// Content-Encoding is negotiated and decoded by the client itself.
		DisableCompression: true,
	}
}

func NewDefaultClient(transport *http.Transport) *Client {
	return NewClient(transport, 15*time.Second)
}

func NewClient(transport *http.Transport, timeout time.Duration) *Client {
	if transport == nil {
		transport = GetDefaultTransport()
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}

	return &Client{
		client:         client,
		transport:      transport,
		UserAgent:      "skillpath-web",
		OnHeaders:      nil,
		AbortOnNone2xx: false,
	}
}

// PostJSON sends payload as a JSON body and returns the decoded response body.
// Non-2xx responses are returned as-is unless AbortOnNone2xx is set, because
// the backend reports failures inside the JSON envelope.
func (f *Client) PostJSON(ctx context.Context, url string, payload any) ([]byte, error) {
	if f == nil || f.client == nil {
		return nil, fmt.Errorf("client is nil")
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	ctx, span := otel.Tracer(tracerName).Start(
		ctx,
		"POST "+url,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodPost),
			attribute.String("url.full", url),
		),
	)
	defer span.End()

	body, err := f.post(ctx, span, url, encoded)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	return body, nil
}

func (f *Client) post(ctx context.Context, span trace.Span, url string, encoded []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if f.OnHeaders != nil {
		f.OnHeaders(req)
	}

	req.Header.Set("Content-Type", JSONContentType)
	req.Header.Set("Accept", JSONContentType)
	req.Header.Set("Accept-Encoding", AcceptEncodings)
	req.Header.Set("User-Agent", f.UserAgent)

	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer CloseWithLog(resp.Body)

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if f.AbortOnNone2xx && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
		return nil, fmt.Errorf("received non-2xx status code: %d", resp.StatusCode)
	}

	reader, encoding, err := wrapHTTPBody(resp)
	if err != nil {
		return nil, err
	}

	defer CloseWithLog(reader)

	body, err := ReadWithSizeLimit(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q response body: %w", encoding, err)
	}

	return body, nil
}
