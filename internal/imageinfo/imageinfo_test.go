// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package imageinfo

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/iiif-manifest/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Dimensions
		wantErr bool
	}{
		{"both present", `{"width": 2400, "height": 3200}`, Dimensions{2400, 3200}, false},
		{"width only", `{"width": 2400}`, Dimensions{2400, 1000}, false},
		{"height only", `{"height": 3200}`, Dimensions{1000, 3200}, false},
		{"neither", `{"@id": "https://iiif.example.org/img"}`, Fallback, false},
		{"string width ignored", `{"width": "wide", "height": 50}`, Dimensions{1000, 50}, false},
		{"zero width", `{"width": 0, "height": 50}`, Dimensions{1000, 50}, false},
		{"malformed", `{"width": `, Fallback, true},
		{"array", `[1, 2]`, Fallback, true},
		{"empty", ``, Fallback, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidJSON)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func newTestResolver(t *testing.T, ts *httptest.Server) (*HTTPResolver, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	r := NewHTTPResolver(types.HTTPConfig{UserAgent: "iiif-manifest/test"}, zerolog.New(&buf))
	if ts != nil {
		r.WithClient(ts.Client())
	}
	return r, &buf
}

func TestResolve_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/iiif/img1/info.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"@context":"http://iiif.io/api/image/2/context.json","width":1536,"height":2048}`))
	}))
	defer ts.Close()

	r, logs := newTestResolver(t, ts)
	got := r.Resolve(context.Background(), ts.URL+"/iiif/img1/info.json")

	assert.Equal(t, Dimensions{Width: 1536, Height: 2048}, got)
	assert.Empty(t, logs.String())
}

func TestResolve_FallbackCases(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed json", func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`<html>not json</html>`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&calls, 1)
				tt.handler(w, r)
			}))
			defer ts.Close()

			r, logs := newTestResolver(t, ts)
			got := r.Resolve(context.Background(), ts.URL+"/info.json")

			assert.Equal(t, Fallback, got)
			assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retry expected")
			assert.Contains(t, logs.String(), `"level":"warn"`)
			assert.Contains(t, logs.String(), ts.URL+"/info.json")
		})
	}
}

func TestResolve_MissingFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"profile": ["http://iiif.io/api/image/2/level2.json"]}`))
	}))
	defer ts.Close()

	r, logs := newTestResolver(t, ts)
	got := r.Resolve(context.Background(), ts.URL+"/info.json")

	assert.Equal(t, Fallback, got)
	assert.Empty(t, logs.String())
}

func TestResolve_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL + "/info.json"
	ts.Close()

	r, logs := newTestResolver(t, nil)
	got := r.Resolve(context.Background(), url)

	require.Equal(t, Fallback, got)
	assert.Contains(t, logs.String(), "could not read info.json")
}
