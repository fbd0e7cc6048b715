package ds

// Product is read-only reference data seeded by cmd/migrate.
type Product struct {
	ID   uint   `gorm:"primaryKey"`
	Slug string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Name string `gorm:"type:varchar(150);not null"`
}
