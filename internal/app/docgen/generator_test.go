package docgen

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"visaportal/internal/app/ds"
)

func newTestGenerator(records *fakeRecords, objects *fakeObjects) *Generator {
	g := New(records, objects)
	g.Now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerate_Contract(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	objects := newFakeObjects()
	records.orders["o1"] = &ds.Order{
		ID:            "o1",
		OrderNumber:   "ORD-2024-0042",
		ProductSlug:   "tourist-visa-usa",
		ClientName:    "José Düval",
		ClientEmail:   "jose@example.com",
		PaymentMethod: ds.PaymentMethodCard,
		PaymentStatus: ds.PaymentStatusCompleted,
		TotalPriceUSD: "150.00",
	}
	records.products["tourist-visa-usa"] = &ds.Product{ID: 1, Slug: "tourist-visa-usa", Name: "Tourist Visa USA"}

	g := newTestGenerator(records, objects)
	res, err := g.Generate(ctx, "o1", DocContract)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasPrefix(res.FilePath, "visa-contracts/jose_duval_ord-2024-0042_2024-03-10_") {
		t.Errorf("file path = %q", res.FilePath)
	}
	if res.PDFURL != "https://cdn.test/contracts/"+res.FilePath {
		t.Errorf("pdf url = %q", res.PDFURL)
	}
	if records.contractURLs["o1"] != res.PDFURL {
		t.Errorf("contract url column = %q, want %q", records.contractURLs["o1"], res.PDFURL)
	}

	uploaded, ok := objects.uploads[BucketContracts+"/"+res.FilePath]
	if !ok {
		t.Fatal("document was not uploaded to the contracts bucket")
	}
	if !bytes.HasPrefix(uploaded, []byte("%PDF")) {
		t.Error("uploaded artifact is not a pdf")
	}
}

func TestGenerate_AnnexInheritsIdentity(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	objects := newFakeObjects()

	srID := "sr-9"
	records.orders["o0"] = &ds.Order{
		ID:               "o0",
		OrderNumber:      "ORD-2024-0000",
		ProductSlug:      "cos-selection-process",
		ClientName:       "Ana Souza",
		ClientEmail:      "a@x.com",
		PaymentMethod:    ds.PaymentMethodPix,
		PaymentStatus:    ds.PaymentStatusCompleted,
		TotalPriceUSD:    "150.00",
		ServiceRequestID: &srID,
		CreatedAt:        time.Now().Add(-time.Hour),
	}
	records.orders["o1"] = &ds.Order{
		ID:            "o1",
		OrderNumber:   "ORD-2024-0001",
		ProductSlug:   "cos-scholarship",
		ClientName:    "Ana Souza",
		ClientEmail:   "a@x.com",
		PaymentMethod: ds.PaymentMethodCard,
		PaymentStatus: ds.PaymentStatusCompleted,
		TotalPriceUSD: "150.00",
	}
	records.files[srID] = []ds.IdentityFile{
		{ServiceRequestID: srID, FileType: ds.FileTypeSelfieDoc, StoragePath: "identity-documents/sr9_selfie.png"},
	}
	objects.put(BucketIdentityDocs, "sr9_selfie.png", tinyPNG(t), "image/png")

	g := newTestGenerator(records, objects)
	res, err := g.Generate(ctx, "o1", DocAnnex)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if !strings.HasPrefix(res.FilePath, "visa-annexes/annex_i_ana_souza_ord-2024-0001_") {
		t.Errorf("file path = %q", res.FilePath)
	}
	if records.annexURLs["o1"] != res.PDFURL {
		t.Errorf("annex url column = %q", records.annexURLs["o1"])
	}

	// The inherited selfie must actually be fetched from storage.
	fetched := false
	for _, key := range objects.downloaded {
		if key == BucketIdentityDocs+"/sr9_selfie.png" {
			fetched = true
		}
	}
	if !fetched {
		t.Errorf("inherited selfie was never downloaded, fetches: %v", objects.downloaded)
	}
}

func TestGenerate_DegradesGracefully(t *testing.T) {
	ctx := context.Background()
	records := newFakeRecords()
	objects := newFakeObjects()

	srID := "sr-1"
	sig := "signatures/sig_gone.png"
	records.orders["o1"] = &ds.Order{
		ID:               "o1",
		OrderNumber:      "ORD-2024-0007",
		ProductSlug:      "retired-product", // no product row, raw slug is printed
		ClientName:       "Ana",
		ClientEmail:      "a@x.com",
		PaymentMethod:    ds.PaymentMethodZelle,
		PaymentStatus:    ds.PaymentStatusCompleted,
		TotalPriceUSD:    "90.00",
		ServiceRequestID: &srID,
		SignatureImage:   &sig,
	}
	// File references exist but none of the objects do.
	records.files[srID] = []ds.IdentityFile{
		{ServiceRequestID: srID, FileType: ds.FileTypeDocFront, StoragePath: "identity-documents/gone_front.jpg"},
	}

	g := newTestGenerator(records, objects)
	res, err := g.Generate(ctx, "o1", DocContract)
	if err != nil {
		t.Fatalf("missing images and product must not abort generation: %v", err)
	}
	if res.PDFURL == "" || res.FilePath == "" {
		t.Errorf("empty result: %+v", res)
	}
}

func TestGenerate_OrderNotFound(t *testing.T) {
	g := newTestGenerator(newFakeRecords(), newFakeObjects())
	_, err := g.Generate(context.Background(), "nope", DocContract)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestGenerate_UploadFailureIsTerminal(t *testing.T) {
	records := newFakeRecords()
	records.orders["o1"] = &ds.Order{
		ID: "o1", OrderNumber: "ORD-2024-0001", ProductSlug: "tourist-visa-usa",
		ClientName: "Ana", ClientEmail: "a@x.com",
		PaymentMethod: ds.PaymentMethodManual, PaymentStatus: ds.PaymentStatusManualPending,
		TotalPriceUSD: "50.00",
	}
	objects := newFakeObjects()
	objects.failUpload = true

	g := newTestGenerator(records, objects)
	_, err := g.Generate(context.Background(), "o1", DocContract)
	if !errors.Is(err, ErrUploadFailed) {
		t.Errorf("err = %v, want ErrUploadFailed", err)
	}
	if len(records.contractURLs) != 0 {
		t.Error("no url must be written after a failed upload")
	}
}

func TestGenerate_URLWritebackFailureIsNotTerminal(t *testing.T) {
	records := newFakeRecords()
	records.failSetURL = true
	records.orders["o1"] = &ds.Order{
		ID: "o1", OrderNumber: "ORD-2024-0002", ProductSlug: "tourist-visa-usa",
		ClientName: "Ana", ClientEmail: "a@x.com",
		PaymentMethod: ds.PaymentMethodPix, PaymentStatus: ds.PaymentStatusCompleted,
		TotalPriceUSD: "120.00",
	}
	objects := newFakeObjects()

	g := newTestGenerator(records, objects)
	res, err := g.Generate(context.Background(), "o1", DocContract)
	if err != nil {
		t.Fatalf("url write-back failure must not abort: %v", err)
	}
	if len(objects.uploads) != 1 {
		t.Errorf("expected exactly one upload, got %d", len(objects.uploads))
	}
	if res.PDFURL == "" {
		t.Error("result must still carry the public url")
	}
}
