package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	var gotAgent, gotHeader string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		gotHeader = r.Header.Get("X-Test")
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("hello"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tests := []struct {
		name     string
		path     string
		maxBytes int64
		want     string
		wantErr  bool
		tooLarge bool
	}{
		{name: "ok", path: "/ok", want: "hello"},
		{name: "exact fit", path: "/ok", maxBytes: 5, want: "hello"},
		{name: "too large", path: "/big", maxBytes: 10, wantErr: true, tooLarge: true},
		{name: "not found", path: "/missing", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Fetch(context.Background(), srv.URL+tt.path, FetchOptions{
				MaxBytes: tt.maxBytes,
				Headers:  map[string]string{"X-Test": "yes"},
			})
			if tt.wantErr {
				if err == nil {
					t.Fatal("Fetch() expected error, got nil")
				}
				if tt.tooLarge && !errors.Is(err, ErrTooLarge) {
					t.Errorf("Fetch() error = %v, want ErrTooLarge", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Fetch() = %q, want %q", data, tt.want)
			}
			if !strings.HasPrefix(gotAgent, UserAgentName+"/") {
				t.Errorf("User-Agent = %q, want prefix %q", gotAgent, UserAgentName+"/")
			}
			if gotHeader != "yes" {
				t.Errorf("X-Test = %q, want %q", gotHeader, "yes")
			}
		})
	}
}

func TestFetchCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Fetch(ctx, srv.URL, FetchOptions{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Fetch() error = %v, want context.Canceled", err)
	}
}
