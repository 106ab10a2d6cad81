package itemclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/samvad-hq/samvad-item-client/pkg/httpclient"
)

const (
	defaultItemsPath = "/v1/items"
	defaultErrorPath = "/v1/items/runtimeException"

	// maxMessageBytes caps how much of an error body is kept as the message.
	maxMessageBytes = 1 << 20
)

// ErrMessageTruncated is wrapped by errors whose body exceeded maxMessageBytes.
var ErrMessageTruncated = errors.New("error body truncated")

// Options fixes where the item service lives. It is read once by New.
type Options struct {
	BaseURL   string
	ItemsPath string
	ErrorPath string
}

// Client forwards item operations to the remote item service.
type Client struct {
	http    httpclient.Client
	baseURL string
	items   string
	errPath string
	log     Logger
}

// New builds a gateway client on top of the given transport.
func New(opts Options, client httpclient.Client, log Logger) (*Client, error) {
	if client == nil {
		return nil, errors.New("http client must not be nil")
	}
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		return nil, errors.New("item server base url is empty")
	}
	items := strings.TrimSpace(opts.ItemsPath)
	if items == "" {
		items = defaultItemsPath
	}
	errPath := strings.TrimSpace(opts.ErrorPath)
	if errPath == "" {
		errPath = defaultErrorPath
	}

	return &Client{
		http:    client,
		baseURL: base,
		items:   items,
		errPath: errPath,
		log:     ensureLogger(log),
	}, nil
}

// Response is a raw item-service response whose status has not been checked yet.
type Response struct {
	op     string
	status int
	header http.Header
	body   io.ReadCloser
}

func (r *Response) StatusCode() int     { return r.status }
func (r *Response) Header() http.Header { return r.header }

// Body returns the unread response body.
func (r *Response) Body() io.Reader { return r.body }

// Close releases the response body.
func (r *Response) Close() error {
	if r == nil || r.body == nil {
		return nil
	}
	return r.body.Close()
}

// Err classifies the response by status class. It returns nil for 2xx and
// otherwise consumes the body as the error message.
func (r *Response) Err() error {
	switch {
	case r.status >= 200 && r.status < 300:
		return nil
	case r.status >= 400:
		msg, truncated, err := r.text()
		if err != nil {
			e := transportError(r.op, fmt.Errorf("read error body: %w", err))
			e.Status = r.status
			return e
		}
		var e *Error
		if r.status < 500 {
			e = clientError(r.op, r.status, msg)
		} else {
			e = serverError(r.op, r.status, msg)
		}
		if truncated {
			e.Err = errors.Join(e.Err, ErrMessageTruncated)
		}
		return e
	default:
		e := transportError(r.op, fmt.Errorf("unexpected status %d", r.status))
		e.Status = r.status
		return e
	}
}

// Decode reads a single JSON value from the body into out.
func (r *Response) Decode(out any) error {
	if err := json.NewDecoder(r.body).Decode(out); err != nil {
		return transportError(r.op, fmt.Errorf("decode response body: %w", err))
	}
	return nil
}

// text reads the body as UTF-8 text, whatever the declared content type.
// Bodies longer than maxMessageBytes are cut and reported as truncated.
func (r *Response) text() (string, bool, error) {
	raw, err := io.ReadAll(io.LimitReader(r.body, maxMessageBytes+1))
	if err != nil {
		return "", false, err
	}
	if len(raw) > maxMessageBytes {
		return string(raw[:maxMessageBytes]), true, nil
	}
	return string(raw), false, nil
}

// Exchange issues a request and returns the raw response. Only transport
// failures are reported as errors; the caller inspects the status.
func (c *Client) Exchange(ctx context.Context, method, path string, body any) (*Response, error) {
	return c.exchange(ctx, method+" "+path, method, path, body)
}

// Retrieve issues a request and decodes a 2xx body into out, or returns the
// classified error. A nil out discards the body.
func (c *Client) Retrieve(ctx context.Context, method, path string, body, out any) error {
	return c.retrieve(ctx, method+" "+path, method, path, body, out)
}

func (c *Client) retrieve(ctx context.Context, op, method, path string, body, out any) error {
	resp, err := c.exchange(ctx, op, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Close()

	if err := resp.Err(); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return resp.Decode(out)
}

func (c *Client) exchange(ctx context.Context, op, method, path string, body any) (*Response, error) {
	url := c.baseURL + path
	headers := map[string]string{"Accept": "application/json"}

	resp, err := c.http.Execute(ctx, method, url, headers, body)
	if err != nil {
		c.log.WarnObj("item server request failed", "request", map[string]any{
			"op":     op,
			"method": method,
			"url":    url,
			"error":  err.Error(),
		})
		return nil, transportError(op, err)
	}

	c.log.DebugObj("item server response", "request", map[string]any{
		"op":     op,
		"method": method,
		"url":    url,
		"status": resp.StatusCode(),
	})

	respBody := resp.Body()
	if respBody == nil {
		respBody = http.NoBody
	}
	return &Response{
		op:     op,
		status: resp.StatusCode(),
		header: resp.Header(),
		body:   respBody,
	}, nil
}
