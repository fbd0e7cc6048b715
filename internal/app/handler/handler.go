package handler

import (
	"visaportal/internal/app/docgen"
	"visaportal/internal/app/dto"
	"visaportal/internal/app/repository"
	"visaportal/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler serves the portal API: orders, templates and document
// generation.
type Handler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	Generator   *docgen.Generator
}

func NewHandler(r *repository.Repository, minioClient *storage.MinIOClient, generator *docgen.Generator) *Handler {
	return &Handler{
		Repository:  r,
		MinIOClient: minioClient,
		Generator:   generator,
	}
}

func (h *Handler) errorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *Handler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}
