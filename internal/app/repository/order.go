package repository

import (
	"context"
	"errors"
	"time"

	"visaportal/internal/app/ds"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a looked-up record does not exist.
var ErrNotFound = errors.New("record not found")

// OrderByID fetches one order by primary key.
func (r *Repository) OrderByID(ctx context.Context, id string) (*ds.Order, error) {
	var order ds.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// OrderFilter narrows ListOrders. Zero values mean "no filter".
type OrderFilter struct {
	Status        string
	PaymentMethod string
	Query         string // matches order number, client name or email
}

// ListOrders returns orders newest first.
func (r *Repository) ListOrders(ctx context.Context, f OrderFilter) ([]ds.Order, error) {
	q := r.db.WithContext(ctx).Model(&ds.Order{})
	if f.Status != "" {
		q = q.Where("payment_status = ?", f.Status)
	}
	if f.PaymentMethod != "" {
		q = q.Where("payment_method = ?", f.PaymentMethod)
	}
	if f.Query != "" {
		like := "%" + f.Query + "%"
		q = q.Where("order_number ILIKE ? OR client_name ILIKE ? OR client_email ILIKE ?", like, like, like)
	}

	var orders []ds.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderPaymentStatus sets the payment status column.
func (r *Repository) UpdateOrderPaymentStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).Model(&ds.Order{}).
		Where("id = ?", id).
		Update("payment_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// LatestPredecessor finds the most recent order for the same client email
// and product slug whose payment went through (completed or pending manual
// confirmation). This is the single named query behind cross-order
// identity inheritance.
func (r *Repository) LatestPredecessor(ctx context.Context, clientEmail, productSlug string) (*ds.Order, error) {
	var order ds.Order
	err := r.db.WithContext(ctx).
		Where("product_slug = ? AND client_email = ? AND payment_status IN ?",
			productSlug, clientEmail,
			[]string{ds.PaymentStatusCompleted, ds.PaymentStatusManualPending}).
		Order("created_at DESC").
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// SetContractPDFURL writes the generated contract URL back to the order.
func (r *Repository) SetContractPDFURL(ctx context.Context, orderID, url string) error {
	return r.setOrderColumn(ctx, orderID, "contract_pdf_url", url)
}

// SetAnnexPDFURL writes the generated annex URL back to the order.
func (r *Repository) SetAnnexPDFURL(ctx context.Context, orderID, url string) error {
	return r.setOrderColumn(ctx, orderID, "annex_pdf_url", url)
}

func (r *Repository) setOrderColumn(ctx context.Context, orderID, column, value string) error {
	res := r.db.WithContext(ctx).Model(&ds.Order{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			column:       value,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
