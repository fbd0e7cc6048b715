package docgen

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestImageResolver_KnownBucket(t *testing.T) {
	ctx := context.Background()
	objects := newFakeObjects()
	png := tinyPNG(t)
	objects.put(BucketIdentityDocs, "u123/front.png", png, "image/png")

	r := NewImageResolver(objects)

	got := r.Resolve(ctx, "identity-documents/u123/front.png")
	if got == nil {
		t.Fatal("expected image data")
	}
	if got.Format != FormatPNG || !bytes.Equal(got.Bytes, png) {
		t.Errorf("got format %s, %d bytes", got.Format, len(got.Bytes))
	}

	if r.Resolve(ctx, "identity-documents/u123/missing.png") != nil {
		t.Error("missing object should resolve to nil")
	}
	if r.Resolve(ctx, "") != nil {
		t.Error("empty reference should resolve to nil")
	}
}

func TestImageResolver_External(t *testing.T) {
	ctx := context.Background()
	png := tinyPNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/client/photo.png" {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}))
	defer srv.Close()

	r := NewImageResolver(newFakeObjects())
	r.HTTPClient = srv.Client()

	got := r.Resolve(ctx, srv.URL+"/client/photo.png")
	if got == nil || got.Format != FormatPNG || !bytes.Equal(got.Bytes, png) {
		t.Fatalf("external fetch failed: %+v", got)
	}

	if r.Resolve(ctx, srv.URL+"/client/gone.png") != nil {
		t.Error("404 should resolve to nil")
	}
}

func TestFormatFromContentType(t *testing.T) {
	cases := map[string]ImageFormat{
		"image/png":                FormatPNG,
		"image/PNG":                FormatPNG,
		"application/pdf":          FormatPDF,
		"image/jpeg":               FormatJPEG,
		"application/octet-stream": FormatJPEG,
		"":                         FormatJPEG,
	}
	for ct, want := range cases {
		if got := formatFromContentType(ct); got != want {
			t.Errorf("formatFromContentType(%q) = %s, want %s", ct, got, want)
		}
	}
}
