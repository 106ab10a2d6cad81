package httpclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientExecuteSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("missing accept header, got %s", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected json content type, got %s", got)
		}
		var decoded map[string]any
		if err := json.NewDecoder(r.Body).Decode(&decoded); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if decoded["name"] != "value" {
			t.Errorf("unexpected body: %#v", decoded)
		}
		w.Header().Set("X-Reply", "1")
		w.WriteHeader(http.StatusAccepted)
		_, _ = io.WriteString(w, "done")
	}))
	defer srv.Close()

	client := NewRestyClient(2 * time.Second)
	resp, err := client.Execute(context.Background(), http.MethodPut, srv.URL,
		map[string]string{"Accept": "application/json"}, map[string]string{"name": "value"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	body := resp.Body()
	defer body.Close()

	if resp.StatusCode() != http.StatusAccepted {
		t.Fatalf("status = %d", resp.StatusCode())
	}
	if resp.Header().Get("X-Reply") != "1" {
		t.Fatalf("expected response header to be exposed")
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(raw) != "done" {
		t.Fatalf("body = %q", raw)
	}
}

func TestRestyClientExecuteDoesNotRaiseOnErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	resp, err := NewRestyClient(time.Second).Execute(context.Background(), http.MethodGet, srv.URL, nil, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	defer resp.Body().Close()
	if resp.StatusCode() != http.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode())
	}
}

func TestRestyClientExecuteConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	if _, err := NewRestyClient(time.Second).Execute(context.Background(), http.MethodGet, url, nil, nil); err == nil {
		t.Fatalf("expected transport error")
	}
}
