package dto

import "time"

// ============ Shared ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Document generation ============

// DocumentResponse is the success shape of the generation endpoints,
// consumed by the payment webhook and the admin dashboard alike.
type DocumentResponse struct {
	Success  bool   `json:"success"`
	PDFURL   string `json:"pdf_url"`
	FilePath string `json:"file_path"`
}

type DocumentErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// ============ Orders ============

type OrderResponse struct {
	ID             string                 `json:"id"`
	OrderNumber    string                 `json:"order_number"`
	ProductSlug    string                 `json:"product_slug"`
	ClientName     string                 `json:"client_name"`
	ClientEmail    string                 `json:"client_email"`
	ClientPhone    string                 `json:"client_phone,omitempty"`
	Country        string                 `json:"country,omitempty"`
	Nationality    string                 `json:"nationality,omitempty"`
	PaymentMethod  string                 `json:"payment_method"`
	PaymentStatus  string                 `json:"payment_status"`
	TotalPriceUSD  string                 `json:"total_price_usd"`
	PaymentMeta    map[string]interface{} `json:"payment_metadata,omitempty"`
	ContractPDFURL *string                `json:"contract_pdf_url,omitempty"`
	AnnexPDFURL    *string                `json:"annex_pdf_url,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

type UpdateOrderStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending completed manual_pending refunded chargeback"`
}

// ============ Contract templates ============

type TemplateResponse struct {
	ID           uint      `json:"id"`
	TemplateType string    `json:"template_type"`
	ProductSlug  *string   `json:"product_slug,omitempty"`
	Content      string    `json:"content"`
	IsActive     bool      `json:"is_active"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TemplateListResponse struct {
	Templates []TemplateResponse `json:"templates"`
	Total     int                `json:"total"`
}

type CreateTemplateRequest struct {
	TemplateType string  `json:"template_type" binding:"required,oneof=visa_service chargeback_annex"`
	ProductSlug  *string `json:"product_slug"`
	Content      string  `json:"content" binding:"required"`
}

type UpdateTemplateRequest struct {
	ProductSlug *string `json:"product_slug"`
	Content     string  `json:"content"`
	IsActive    *bool   `json:"is_active"`
}

// ============ Users ============

type UserResponse struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"full_name"`
	Role     int    `json:"role"`
}

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Role     int    `json:"role"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
