package repository

import (
	"context"
	"errors"

	"visaportal/internal/app/ds"

	"gorm.io/gorm"
)

// ActiveTemplate returns the newest active template of the given type
// scoped to a product slug.
func (r *Repository) ActiveTemplate(ctx context.Context, templateType, productSlug string) (*ds.ContractTemplate, error) {
	var tpl ds.ContractTemplate
	err := r.db.WithContext(ctx).
		Where("template_type = ? AND product_slug = ? AND is_active = ?", templateType, productSlug, true).
		Order("updated_at DESC").
		First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ActiveGlobalTemplate returns the newest active template of the given
// type with no product scope.
func (r *Repository) ActiveGlobalTemplate(ctx context.Context, templateType string) (*ds.ContractTemplate, error) {
	var tpl ds.ContractTemplate
	err := r.db.WithContext(ctx).
		Where("template_type = ? AND product_slug IS NULL AND is_active = ?", templateType, true).
		Order("updated_at DESC").
		First(&tpl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ListTemplates returns all template rows, active or not.
func (r *Repository) ListTemplates(ctx context.Context) ([]ds.ContractTemplate, error) {
	var tpls []ds.ContractTemplate
	err := r.db.WithContext(ctx).Order("template_type, product_slug NULLS FIRST").Find(&tpls).Error
	if err != nil {
		return nil, err
	}
	return tpls, nil
}

// CreateTemplate inserts a template row.
func (r *Repository) CreateTemplate(ctx context.Context, tpl *ds.ContractTemplate) error {
	return r.db.WithContext(ctx).Create(tpl).Error
}

// UpdateTemplate updates content/scope/active flag of a template row.
func (r *Repository) UpdateTemplate(ctx context.Context, tpl *ds.ContractTemplate) error {
	res := r.db.WithContext(ctx).Model(&ds.ContractTemplate{}).
		Where("id = ?", tpl.ID).
		Updates(map[string]interface{}{
			"content":      tpl.Content,
			"product_slug": tpl.ProductSlug,
			"is_active":    tpl.IsActive,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeactivateTemplate turns a template row off instead of deleting it.
func (r *Repository) DeactivateTemplate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&ds.ContractTemplate{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
