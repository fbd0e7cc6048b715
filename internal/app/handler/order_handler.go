package handler

import (
	"errors"
	"net/http"

	"visaportal/internal/app/ds"
	"visaportal/internal/app/dto"
	"visaportal/internal/app/repository"

	"github.com/gin-gonic/gin"
)

func orderToResponse(o ds.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		ProductSlug:    o.ProductSlug,
		ClientName:     o.ClientName,
		ClientEmail:    o.ClientEmail,
		ClientPhone:    o.ClientPhone,
		Country:        o.Country,
		Nationality:    o.Nationality,
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  o.PaymentStatus,
		TotalPriceUSD:  o.TotalPriceUSD,
		PaymentMeta:    o.PaymentMetadata,
		ContractPDFURL: o.ContractPDFURL,
		AnnexPDFURL:    o.AnnexPDFURL,
		CreatedAt:      o.CreatedAt,
	}
}

// GetOrders lists orders for the dashboards
// @Summary List orders
// @Tags Orders
// @Produce json
// @Param status query string false "Payment status filter"
// @Param payment_method query string false "Payment method filter"
// @Param q query string false "Search in order number, client name and email"
// @Success 200 {object} dto.OrderListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/orders [get]
func (h *Handler) GetOrders(c *gin.Context) {
	filter := repository.OrderFilter{
		Status:        c.Query("status"),
		PaymentMethod: c.Query("payment_method"),
		Query:         c.Query("q"),
	}

	orders, err := h.Repository.ListOrders(c.Request.Context(), filter)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "failed to list orders: "+err.Error())
		return
	}

	resp := dto.OrderListResponse{Orders: make([]dto.OrderResponse, 0, len(orders)), Total: len(orders)}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, orderToResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// GetOrder fetches one order
// @Summary Get one order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.Repository.OrderByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "failed to load order: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, orderToResponse(*order))
}

// UpdateOrderStatus sets the payment status (support/admin action)
// @Summary Update payment status
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body dto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/orders/{id}/status [put]
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var request dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	err := h.Repository.UpdateOrderPaymentStatus(c.Request.Context(), c.Param("id"), request.PaymentStatus)
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "order not found")
		return
	}
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "failed to update order: "+err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "payment status updated", nil)
}
