package stream

import (
	"fmt"
	"iter"

	"github.com/leofalp/aisdkstream/config"
	"github.com/leofalp/aisdkstream/providers/protocol"
)

// Response is the HTTP-shaped result of building a Facade for one protocol
// dialect: a status code, headers, and a body iterator producing UTF-8
// bytes.
type Response struct {
	Status  int
	Headers map[string]string
	Body    iter.Seq[[]byte]
}

// ResponseBuilder wraps a Facade with caller-supplied header overrides.
// Building two Responses from two separate Facades fed by the same
// already-materialized chunk slice is supported for side-by-side dialect
// comparison (see protocol.RenderAll); calling For twice against the same
// live Facade is not, since its output queue drains on first use.
type ResponseBuilder struct {
	facade  *Facade
	headers map[string]string
}

// NewResponseBuilder wraps facade.
func NewResponseBuilder(facade *Facade) *ResponseBuilder {
	return &ResponseBuilder{facade: facade, headers: make(map[string]string)}
}

// WithHeader overrides or adds a response header. Caller-supplied headers
// always win over the dialect's defaults.
func (b *ResponseBuilder) WithHeader(key, value string) *ResponseBuilder {
	b.headers[key] = value
	return b
}

// For builds the Response for protocol version.
func (b *ResponseBuilder) For(version config.ProtocolVersion) (*Response, error) {
	dialect, err := protocol.For(version)
	if err != nil {
		return nil, fmt.Errorf("stream: response builder: %w", err)
	}

	headers := map[string]string{"Content-Type": dialect.ContentType()}
	for k, v := range dialect.Headers() {
		headers[k] = v
	}
	for k, v := range b.headers {
		headers[k] = v
	}

	lines := b.facade.Protocol(dialect)
	body := func(yield func([]byte) bool) {
		for line := range lines {
			if !yield([]byte(line)) {
				return
			}
		}
	}

	return &Response{Status: 200, Headers: headers, Body: body}, nil
}
