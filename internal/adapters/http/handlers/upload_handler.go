package handlers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/models"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/adapters/persistence/repositories"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/config"
	"github.com/Lemonadezzz/acidilabs-pharma-ims/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MaxUploadSize caps attachment uploads at 50MB
const MaxUploadSize = 50 * 1024 * 1024

// UploadHandler handles attachment upload endpoints on the resources service
type UploadHandler struct {
	uploadRepo repositories.UploadRepository
	cfg        *config.Config
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadRepo repositories.UploadRepository, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		uploadRepo: uploadRepo,
		cfg:        cfg,
	}
}

// AddPDF stores a PDF attachment and records its public URL
// @Summary Upload a PDF
// @Description Accepts a multipart "file" field; PDF only, up to 50MB
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF file"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /actions/add-pdf [post]
func (h *UploadHandler) AddPDF(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Missing required fields")
	}

	if fileHeader.Size > MaxUploadSize {
		return response.BadRequest(c, "File too large")
	}

	if fileHeader.Header.Get("Content-Type") != "application/pdf" {
		return response.BadRequest(c, "Only PDF files are allowed")
	}

	pdfDir := filepath.Join(h.cfg.UploadDir, "pdf")
	if err := os.MkdirAll(pdfDir, 0o755); err != nil {
		return response.InternalServerError(c)
	}

	// Prefix with upload time so repeated names never collide
	filename := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, filepath.Join(pdfDir, filename)); err != nil {
		return response.InternalServerError(c)
	}

	upload := &models.Upload{
		Name: filename,
		URL:  fmt.Sprintf("%s/pdf/%s", h.cfg.BaseURL, filename),
	}
	if err := h.uploadRepo.Create(c.Context(), upload); err != nil {
		return response.InternalServerError(c)
	}

	return response.Created(c, "File uploaded successfully", upload)
}
