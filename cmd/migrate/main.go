package main

import (
	"log"
	"os"
	"time"

	"visaportal/internal/app/docgen"
	"visaportal/internal/app/ds"
	"visaportal/internal/app/dsn"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	err = db.AutoMigrate(
		&ds.User{},
		&ds.Product{},
		&ds.ContractTemplate{},
		&ds.ServiceRequest{},
		&ds.IdentityFile{},
		&ds.Order{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")

	seedProducts(db)
	seedTemplates(db)

	if os.Getenv("SEED_DEMO") == "1" {
		seedDemoOrders(db)
	}
}

func seedProducts(db *gorm.DB) {
	products := []ds.Product{
		{Slug: "cos-selection-process", Name: "Change of Status - Selection Process"},
		{Slug: "cos-scholarship", Name: "Change of Status - Scholarship"},
		{Slug: "cos-i20-control", Name: "Change of Status - I-20 Control"},
		{Slug: "tourist-visa-usa", Name: "US Tourist Visa Assistance"},
		{Slug: "student-visa-f1", Name: "F-1 Student Visa Assistance"},
	}
	for _, p := range products {
		var count int64
		db.Model(&ds.Product{}).Where("slug = ?", p.Slug).Count(&count)
		if count == 0 {
			if err := db.Create(&p).Error; err != nil {
				log.Printf("Failed to seed product %s: %v", p.Slug, err)
			} else {
				log.Printf("Seeded product %s", p.Slug)
			}
		}
	}
}

// seedTemplates creates the global fallback rows from the embedded
// default texts so admins have a starting point to edit.
func seedTemplates(db *gorm.DB) {
	defaults := map[string]string{
		ds.TemplateTypeVisaService:     docgen.DefaultContractTerms,
		ds.TemplateTypeChargebackAnnex: docgen.DefaultAnnexTerms,
	}
	for templateType, content := range defaults {
		var count int64
		db.Model(&ds.ContractTemplate{}).
			Where("template_type = ? AND product_slug IS NULL", templateType).
			Count(&count)
		if count == 0 {
			tpl := ds.ContractTemplate{TemplateType: templateType, Content: content, IsActive: true}
			if err := db.Create(&tpl).Error; err != nil {
				log.Printf("Failed to seed %s template: %v", templateType, err)
			} else {
				log.Printf("Seeded global %s template", templateType)
			}
		}
	}
}

// seedDemoOrders creates a selection-process order with an identity
// intake plus a scholarship order for the same client, so a fresh local
// environment can exercise contract and annex generation (including
// identity inheritance) without the checkout side.
func seedDemoOrders(db *gorm.DB) {
	var count int64
	db.Model(&ds.Order{}).Where("order_number LIKE ?", "DEMO-%").Count(&count)
	if count > 0 {
		log.Println("Demo orders already present, skipping")
		return
	}

	sr := ds.ServiceRequest{ID: uuid.NewString(), ClientEmail: "maria.demo@example.com"}
	if err := db.Create(&sr).Error; err != nil {
		log.Printf("Failed to seed demo service request: %v", err)
		return
	}
	files := []ds.IdentityFile{
		{ServiceRequestID: sr.ID, FileType: ds.FileTypeDocFront, StoragePath: "identity-documents/demo/front.jpg"},
		{ServiceRequestID: sr.ID, FileType: ds.FileTypeDocBack, StoragePath: "identity-documents/demo/back.jpg"},
		{ServiceRequestID: sr.ID, FileType: ds.FileTypeSelfieDoc, StoragePath: "identity-documents/demo/selfie.jpg"},
	}
	for _, f := range files {
		if err := db.Create(&f).Error; err != nil {
			log.Printf("Failed to seed demo identity file: %v", err)
		}
	}

	signature := "signatures/demo/sig_maria.png"
	orders := []ds.Order{
		{
			ID:               uuid.NewString(),
			OrderNumber:      "DEMO-2024-0001",
			ProductSlug:      "cos-selection-process",
			ClientName:       "Maria Demo",
			ClientEmail:      "maria.demo@example.com",
			ClientPhone:      "+55 11 99999-0000",
			Country:          "Brazil",
			Nationality:      "Brazilian",
			PaymentMethod:    ds.PaymentMethodPix,
			PaymentStatus:    ds.PaymentStatusCompleted,
			TotalPriceUSD:    "150.00",
			PaymentMetadata:  datatypes.JSONMap{"final_amount": 812.35, "tax_id": "123.456.789-00"},
			ServiceRequestID: &sr.ID,
			SignatureImage:   &signature,
			SignupIP:         "203.0.113.10",
			CreatedAt:        time.Now().Add(-48 * time.Hour),
		},
		{
			ID:            uuid.NewString(),
			OrderNumber:   "DEMO-2024-0002",
			ProductSlug:   "cos-scholarship",
			ClientName:    "Maria Demo",
			ClientEmail:   "maria.demo@example.com",
			PaymentMethod: ds.PaymentMethodCard,
			PaymentStatus: ds.PaymentStatusCompleted,
			TotalPriceUSD: "150.00",
			PaymentMetadata: datatypes.JSONMap{
				"card_name": "MARIA DEMO", "card_last4": "4242",
			},
			SignupIP:  "203.0.113.10",
			CreatedAt: time.Now().Add(-time.Hour),
		},
	}
	for _, o := range orders {
		if err := db.Create(&o).Error; err != nil {
			log.Printf("Failed to seed demo order %s: %v", o.OrderNumber, err)
		} else {
			log.Printf("Seeded demo order %s", o.OrderNumber)
		}
	}
}
