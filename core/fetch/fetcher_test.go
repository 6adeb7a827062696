package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetchJSON_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "test-agent" {
			t.Errorf("expected user agent 'test-agent', got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"slug":"dev"}]`))
	}))
	defer srv.Close()

	f := New(WithUserAgent("test-agent"))

	var out []struct {
		ID   int    `json:"id"`
		Slug string `json:"slug"`
	}
	if err := f.FetchJSON(context.Background(), srv.URL, &out); err != nil {
		t.Fatalf("FetchJSON failed: %v", err)
	}
	if len(out) != 1 || out[0].ID != 1 || out[0].Slug != "dev" {
		t.Errorf("unexpected decode result: %+v", out)
	}
}

func TestFetchJSON_HTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	var out any
	err := New().FetchJSON(context.Background(), srv.URL, &out)
	if !errors.Is(err, ErrHTTP) {
		t.Fatalf("expected ErrHTTP, got %v", err)
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fe.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", fe.StatusCode)
	}
	if fe.Kind != KindHTTP {
		t.Errorf("expected kind http, got %s", fe.Kind)
	}
}

func TestFetchJSON_Decode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	var out any
	err := New().FetchJSON(context.Background(), srv.URL, &out)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if errors.Is(err, ErrTransport) {
		t.Error("decode error must not match ErrTransport")
	}
}

func TestFetchJSON_Transport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	var out any
	err := New().FetchJSON(context.Background(), url, &out)
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}
