// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package imageinfo reads pixel dimensions from IIIF Image API info.json
// descriptors. Lookups never fail: any problem yields Fallback.
package imageinfo

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/pdiddy/iiif-manifest/internal/httputil"
	"github.com/pdiddy/iiif-manifest/pkg/types"
)

// DefaultSize is used for any dimension that cannot be resolved.
const DefaultSize = 1000

// Fallback is returned when an info.json cannot be fetched or parsed.
var Fallback = Dimensions{Width: DefaultSize, Height: DefaultSize}

// Dimensions is the pixel size of an image.
type Dimensions struct {
	Width  int
	Height int
}

// Resolver looks up the dimensions of an image service.
type Resolver interface {
	Resolve(ctx context.Context, infoURL string) Dimensions
}

// HTTPResolver fetches info.json documents over HTTP, one request per call.
type HTTPResolver struct {
	client    *http.Client
	userAgent string
	log       zerolog.Logger
}

// NewHTTPResolver returns a resolver using cfg for its client settings.
// A zero Timeout keeps the transport default.
func NewHTTPResolver(cfg types.HTTPConfig, log zerolog.Logger) *HTTPResolver {
	return &HTTPResolver{
		client:    &http.Client{Timeout: cfg.Timeout},
		userAgent: cfg.UserAgent,
		log:       log,
	}
}

// WithClient replaces the HTTP client.
func (r *HTTPResolver) WithClient(c *http.Client) *HTTPResolver {
	r.client = c
	return r
}

// Resolve returns the width and height advertised by the info.json at
// infoURL. Fetch, status and parse errors are logged as warnings and
// Fallback is returned.
func (r *HTTPResolver) Resolve(ctx context.Context, infoURL string) Dimensions {
	body, err := httputil.Get(ctx, r.client, infoURL, r.userAgent)
	if err != nil {
		r.warn(infoURL, err)
		return Fallback
	}

	dims, err := Parse(body)
	if err != nil {
		r.warn(infoURL, err)
		return Fallback
	}
	return dims
}

func (r *HTTPResolver) warn(infoURL string, err error) {
	r.log.Warn().
		Err(err).
		Str("url", infoURL).
		Msg("could not read info.json, using default size")
}

// ErrInvalidJSON is returned by Parse for bodies that are not JSON objects.
var ErrInvalidJSON = errors.New("info.json is not a JSON object")

// Parse extracts width and height from an info.json body. Each missing or
// non-positive field defaults to DefaultSize on its own.
func Parse(body []byte) (Dimensions, error) {
	if !gjson.ValidBytes(body) {
		return Fallback, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return Fallback, ErrInvalidJSON
	}

	return Dimensions{
		Width:  sizeOf(doc.Get("width")),
		Height: sizeOf(doc.Get("height")),
	}, nil
}

func sizeOf(v gjson.Result) int {
	if !v.Exists() || v.Type != gjson.Number {
		return DefaultSize
	}
	n := int(v.Int())
	if n <= 0 {
		return DefaultSize
	}
	return n
}
