package docgen

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ImageFormat tags fetched bytes. PDF references can appear in identity
// uploads but cannot be embedded as images; the composer prints a
// placeholder for them.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "PNG"
	FormatJPEG ImageFormat = "JPG"
	FormatPDF  ImageFormat = "PDF"
)

// ImageData is a fetched image ready for embedding.
type ImageData struct {
	Bytes  []byte
	Format ImageFormat
}

// Each image fetch is bounded so one unreachable reference cannot hang
// the whole pipeline.
const imageFetchTimeout = 15 * time.Second

// ImageResolver fetches raw image bytes for a parsed storage reference.
type ImageResolver struct {
	Objects    ObjectStore
	HTTPClient *http.Client
	Timeout    time.Duration
}

func NewImageResolver(objects ObjectStore) *ImageResolver {
	return &ImageResolver{
		Objects:    objects,
		HTTPClient: &http.Client{},
		Timeout:    imageFetchTimeout,
	}
}

// Resolve fetches the bytes behind a reference. Any failure, including a
// timeout, returns nil: the composer treats a missing image like an
// unpopulated field and no single image may abort the document.
func (r *ImageResolver) Resolve(ctx context.Context, rawRef string) *ImageData {
	ref := ParseStorageRef(rawRef)

	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	switch ref.Kind {
	case RefKnown:
		data, contentType, err := r.Objects.DownloadObject(ctx, ref.Bucket, ref.Path)
		if err != nil {
			logrus.Warnf("image %s/%s unavailable: %v", ref.Bucket, ref.Path, err)
			return nil
		}
		return &ImageData{Bytes: data, Format: formatFromContentType(contentType)}

	case RefExternal:
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.URL, nil)
		if err != nil {
			logrus.Warnf("external image %s: %v", ref.URL, err)
			return nil
		}
		resp, err := r.HTTPClient.Do(req)
		if err != nil {
			logrus.Warnf("external image %s unavailable: %v", ref.URL, err)
			return nil
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			logrus.Warnf("external image %s returned status %d", ref.URL, resp.StatusCode)
			return nil
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			logrus.Warnf("external image %s read failed: %v", ref.URL, err)
			return nil
		}
		return &ImageData{Bytes: data, Format: formatFromContentType(resp.Header.Get("Content-Type"))}
	}

	logrus.Warnf("image reference %q is unresolvable", rawRef)
	return nil
}

func formatFromContentType(contentType string) ImageFormat {
	ct := strings.ToLower(contentType)
	switch {
	case strings.Contains(ct, "png"):
		return FormatPNG
	case strings.Contains(ct, "pdf"):
		return FormatPDF
	default:
		return FormatJPEG
	}
}
