package handler

import (
	"net/http"
	"strconv"

	"file-converter/internal/domain"
)

// PhotoHandler handles passport sheet HTTP requests
type PhotoHandler struct {
	sheets      domain.PhotoSheetService
	maxFileSize int64
	logger      domain.Logger
}

// NewPhotoHandler creates a new passport sheet handler
func NewPhotoHandler(sheets domain.PhotoSheetService, maxFileSize int64, logger domain.Logger) *PhotoHandler {
	return &PhotoHandler{
		sheets:      sheets,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// BuildSheet accepts a multipart upload ("photo") plus a copy count
// ("copies", default 1) and responds with the stored sheet's URL.
func (h *PhotoHandler) BuildSheet(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	photo, _, err := r.FormFile("photo")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no photo uploaded")
		return
	}
	defer photo.Close()

	copiesValue := r.FormValue("copies")
	if copiesValue == "" {
		copiesValue = "1"
	}
	copies, err := strconv.Atoi(copiesValue)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid copy count")
		return
	}

	result, err := h.sheets.BuildSheet(r.Context(), photo, copies)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
