package handler

import (
	"errors"
	"net/http"

	"visaportal/internal/app/docgen"
	"visaportal/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GenerateContract renders the Visa Service Contract for an order
// @Summary Generate the visa service contract PDF
// @Description Runs the document pipeline and stores the PDF in the contracts bucket. Payment status is not verified here; callers invoke this after payment completion.
// @Tags Documents
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.DocumentErrorResponse
// @Failure 500 {object} dto.DocumentErrorResponse
// @Router /api/orders/{id}/documents/contract [post]
func (h *Handler) GenerateContract(c *gin.Context) {
	h.generateDocument(c, docgen.DocContract)
}

// GenerateAnnex renders Annex I (payment authorization) for an order
// @Summary Generate the Annex I payment authorization PDF
// @Tags Documents
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.DocumentErrorResponse
// @Failure 500 {object} dto.DocumentErrorResponse
// @Router /api/orders/{id}/documents/annex [post]
func (h *Handler) GenerateAnnex(c *gin.Context) {
	h.generateDocument(c, docgen.DocAnnex)
}

func (h *Handler) generateDocument(c *gin.Context, docType docgen.DocType) {
	orderID := c.Param("id")

	result, err := h.Generator.Generate(c.Request.Context(), orderID, docType)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, docgen.ErrOrderNotFound) {
			status = http.StatusNotFound
		}
		logrus.Errorf("%s generation failed for order %s: %v", docType, orderID, err)
		c.JSON(status, dto.DocumentErrorResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.DocumentResponse{
		Success:  true,
		PDFURL:   result.PDFURL,
		FilePath: result.FilePath,
	})
}
