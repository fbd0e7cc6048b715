package repository

import (
	"context"
	"errors"

	"visaportal/internal/app/ds"

	"gorm.io/gorm"
)

// ProductBySlug fetches one product. Absence is reported as ErrNotFound;
// callers that only need a display name fall back to the raw slug.
func (r *Repository) ProductBySlug(ctx context.Context, slug string) (*ds.Product, error) {
	var product ds.Product
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
