package docgen

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"testing"

	"visaportal/internal/app/ds"
	"visaportal/internal/app/repository"
)

// fakeRecords is an in-memory RecordStore.
type fakeRecords struct {
	orders       map[string]*ds.Order
	products     map[string]*ds.Product
	templates    []ds.ContractTemplate
	files        map[string][]ds.IdentityFile
	contractURLs map[string]string
	annexURLs    map[string]string
	failSetURL   bool
}

func newFakeRecords() *fakeRecords {
	return &fakeRecords{
		orders:       map[string]*ds.Order{},
		products:     map[string]*ds.Product{},
		files:        map[string][]ds.IdentityFile{},
		contractURLs: map[string]string{},
		annexURLs:    map[string]string{},
	}
}

func (f *fakeRecords) OrderByID(_ context.Context, id string) (*ds.Order, error) {
	if o, ok := f.orders[id]; ok {
		return o, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRecords) ProductBySlug(_ context.Context, slug string) (*ds.Product, error) {
	if p, ok := f.products[slug]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRecords) ActiveTemplate(_ context.Context, templateType, productSlug string) (*ds.ContractTemplate, error) {
	for i := range f.templates {
		t := &f.templates[i]
		if t.TemplateType == templateType && t.IsActive && t.ProductSlug != nil && *t.ProductSlug == productSlug {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRecords) ActiveGlobalTemplate(_ context.Context, templateType string) (*ds.ContractTemplate, error) {
	for i := range f.templates {
		t := &f.templates[i]
		if t.TemplateType == templateType && t.IsActive && t.ProductSlug == nil {
			return t, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeRecords) LatestPredecessor(_ context.Context, clientEmail, productSlug string) (*ds.Order, error) {
	var best *ds.Order
	for _, o := range f.orders {
		if o.ProductSlug != productSlug || o.ClientEmail != clientEmail {
			continue
		}
		if o.PaymentStatus != ds.PaymentStatusCompleted && o.PaymentStatus != ds.PaymentStatusManualPending {
			continue
		}
		if best == nil || o.CreatedAt.After(best.CreatedAt) {
			best = o
		}
	}
	if best == nil {
		return nil, repository.ErrNotFound
	}
	return best, nil
}

func (f *fakeRecords) IdentityFilesByServiceRequest(_ context.Context, serviceRequestID string) ([]ds.IdentityFile, error) {
	return f.files[serviceRequestID], nil
}

func (f *fakeRecords) SetContractPDFURL(_ context.Context, orderID, url string) error {
	if f.failSetURL {
		return fmt.Errorf("column update refused")
	}
	f.contractURLs[orderID] = url
	return nil
}

func (f *fakeRecords) SetAnnexPDFURL(_ context.Context, orderID, url string) error {
	if f.failSetURL {
		return fmt.Errorf("column update refused")
	}
	f.annexURLs[orderID] = url
	return nil
}

// fakeObjects is an in-memory ObjectStore keyed by bucket/path.
type fakeObjects struct {
	objects      map[string][]byte
	contentTypes map[string]string
	uploads      map[string][]byte
	downloaded   []string
	failUpload   bool
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{
		objects:      map[string][]byte{},
		contentTypes: map[string]string{},
		uploads:      map[string][]byte{},
	}
}

func (f *fakeObjects) put(bucket, path string, data []byte, contentType string) {
	key := bucket + "/" + path
	f.objects[key] = data
	f.contentTypes[key] = contentType
}

func (f *fakeObjects) DownloadObject(_ context.Context, bucket, path string) ([]byte, string, error) {
	key := bucket + "/" + path
	f.downloaded = append(f.downloaded, key)
	data, ok := f.objects[key]
	if !ok {
		return nil, "", fmt.Errorf("object %s not found", key)
	}
	return data, f.contentTypes[key], nil
}

func (f *fakeObjects) UploadObject(_ context.Context, bucket, path string, data []byte, _ string) error {
	if f.failUpload {
		return fmt.Errorf("bucket unavailable")
	}
	f.uploads[bucket+"/"+path] = data
	return nil
}

func (f *fakeObjects) PublicURL(bucket, path string) string {
	return "https://cdn.test/" + bucket + "/" + path
}

// tinyPNG returns a valid 2x2 PNG for embedding tests.
func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}
