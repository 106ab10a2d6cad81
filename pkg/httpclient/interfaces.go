package httpclient

import (
	"context"
	"io"
	"net/http"
)

// Response is a minimal HTTP response contract. The body is left unread; callers
// must close it.
type Response interface {
	StatusCode() int
	Header() http.Header
	Body() io.ReadCloser
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// A nil body sends no payload; anything else is encoded as JSON.
type Client interface {
	Execute(ctx context.Context, method, url string, headers map[string]string, body any) (Response, error)
}
