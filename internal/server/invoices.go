package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	invoicedomain "github.com/jesus-or/facturas/internal/invoice/domain"
)

// UploadInvoice accepts a PDF under the multipart field "factura", extracts
// its fields, and persists the result.
func (s *Server) UploadInvoice(c *gin.Context) {
	fileHeader, err := c.FormFile("factura")
	if err != nil {
		AbortWithError(c, newValidationError("factura", "required", "factura file is required"))
		return
	}
	if s.cfg.UploadMaxBytes > 0 && fileHeader.Size > s.cfg.UploadMaxBytes {
		AbortWithError(c, newValidationError("factura", "too_large", "factura file exceeds the size limit"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	inv, err := s.invoiceSvc.IngestPDF(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": inv})
}

// IngestInvoiceText runs the extraction pipeline on pre-extracted plain text.
func (s *Server) IngestInvoiceText(c *gin.Context) {
	var req invoicedomain.IngestTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		AbortWithError(c, newValidationError("text", "required", "text is required"))
		return
	}

	inv, err := s.invoiceSvc.IngestText(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": inv})
}

func (s *Server) ListInvoices(c *gin.Context) {
	invoices, err := s.invoiceSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": invoices})
}
