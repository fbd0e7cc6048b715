package handler

import (
	"errors"
	"net/http"
	"strconv"

	"visaportal/internal/app/ds"
	"visaportal/internal/app/dto"
	"visaportal/internal/app/repository"

	"github.com/gin-gonic/gin"
)

func templateToResponse(t ds.ContractTemplate) dto.TemplateResponse {
	return dto.TemplateResponse{
		ID:           t.ID,
		TemplateType: t.TemplateType,
		ProductSlug:  t.ProductSlug,
		Content:      t.Content,
		IsActive:     t.IsActive,
		UpdatedAt:    t.UpdatedAt,
	}
}

// GetTemplates lists contract template rows
// @Summary List contract templates
// @Tags Templates
// @Produce json
// @Success 200 {object} dto.TemplateListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/templates [get]
func (h *Handler) GetTemplates(c *gin.Context) {
	tpls, err := h.Repository.ListTemplates(c.Request.Context())
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "failed to list templates: "+err.Error())
		return
	}
	resp := dto.TemplateListResponse{Templates: make([]dto.TemplateResponse, 0, len(tpls)), Total: len(tpls)}
	for _, t := range tpls {
		resp.Templates = append(resp.Templates, templateToResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTemplate inserts a template row
// @Summary Create a contract template
// @Tags Templates
// @Accept json
// @Produce json
// @Param request body dto.CreateTemplateRequest true "Template"
// @Success 201 {object} dto.TemplateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/templates [post]
func (h *Handler) CreateTemplate(c *gin.Context) {
	var request dto.CreateTemplateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	tpl := ds.ContractTemplate{
		TemplateType: request.TemplateType,
		ProductSlug:  request.ProductSlug,
		Content:      request.Content,
		IsActive:     true,
	}
	if err := h.Repository.CreateTemplate(c.Request.Context(), &tpl); err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "failed to create template: "+err.Error())
		return
	}
	c.JSON(http.StatusCreated, templateToResponse(tpl))
}

// UpdateTemplate modifies content, scope or the active flag
// @Summary Update a contract template
// @Tags Templates
// @Accept json
// @Produce json
// @Param id path int true "Template ID"
// @Param request body dto.UpdateTemplateRequest true "Changes"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/templates/{id} [put]
func (h *Handler) UpdateTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid template id")
		return
	}

	var request dto.UpdateTemplateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}
	tpl := ds.ContractTemplate{
		ID:          uint(id),
		ProductSlug: request.ProductSlug,
		Content:     request.Content,
		IsActive:    isActive,
	}
	err = h.Repository.UpdateTemplate(c.Request.Context(), &tpl)
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "template not found")
		return
	}
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "failed to update template: "+err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "template updated", nil)
}

// DeleteTemplate deactivates a template row (no hard delete)
// @Summary Deactivate a contract template
// @Tags Templates
// @Produce json
// @Param id path int true "Template ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/templates/{id} [delete]
func (h *Handler) DeleteTemplate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "invalid template id")
		return
	}

	err = h.Repository.DeactivateTemplate(c.Request.Context(), uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		h.errorResponse(c, http.StatusNotFound, "template not found")
		return
	}
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "failed to deactivate template: "+err.Error())
		return
	}
	h.successResponse(c, http.StatusOK, "template deactivated", nil)
}
