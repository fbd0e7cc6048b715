package repository

import (
	"context"

	"visaportal/internal/app/ds"
)

// IdentityFilesByServiceRequest returns all identity files owned by a
// service request, oldest first.
func (r *Repository) IdentityFilesByServiceRequest(ctx context.Context, serviceRequestID string) ([]ds.IdentityFile, error) {
	var files []ds.IdentityFile
	err := r.db.WithContext(ctx).
		Where("service_request_id = ?", serviceRequestID).
		Order("created_at ASC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}
