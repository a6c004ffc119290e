package handler

import (
	"fmt"
	"net/http"

	"file-converter/internal/domain"
)

// ConvertHandler handles document conversion HTTP requests
type ConvertHandler struct {
	converter   domain.ConversionService
	maxFileSize int64
	logger      domain.Logger
}

// NewConvertHandler creates a new conversion handler
func NewConvertHandler(converter domain.ConversionService, maxFileSize int64, logger domain.Logger) *ConvertHandler {
	return &ConvertHandler{
		converter:   converter,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Convert accepts a multipart upload ("file") and a target format
// ("target_format") and responds with the converted document as an
// attachment.
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	target := r.FormValue("target_format")
	if target == "" {
		writeError(w, http.StatusBadRequest, "target_format is required")
		return
	}

	result, err := h.converter.Convert(r.Context(), header.Filename, file, target)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", result.MediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(result.Bytes)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Bytes)
}
