package handler

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/Anish6964/RAG-Chatbot/internal/api/response"
	"github.com/Anish6964/RAG-Chatbot/internal/service"
	"github.com/rs/zerolog/log"
)

// IngestHandler handles document upload endpoints
type IngestHandler struct {
	ingestService *service.IngestService
	uploadDir     string
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(ingestService *service.IngestService, uploadDir string) *IngestHandler {
	os.MkdirAll(uploadDir, 0755)
	return &IngestHandler{
		ingestService: ingestService,
		uploadDir:     uploadDir,
	}
}

// Upload handles the upload-file event: the document is written to a
// local scratch file, pushed to object storage and a re-index job is
// requested. The scratch file is removed afterwards.
func (h *IngestHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Limit upload to 100MB
	r.ParseMultipartForm(100 << 20)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file uploaded")
		return
	}
	defer file.Close()

	destPath := filepath.Join(h.uploadDir, filepath.Base(header.Filename))
	dst, err := os.Create(destPath)
	if err != nil {
		response.InternalError(w, "failed to save file")
		return
	}

	if _, err := io.Copy(dst, file); err != nil {
		dst.Close()
		os.Remove(destPath)
		response.InternalError(w, "failed to save file")
		return
	}
	dst.Close()
	defer os.Remove(destPath)

	result, err := h.ingestService.Ingest(r.Context(), destPath, header.Filename)
	if err != nil {
		log.Warn().Err(err).Str("file", header.Filename).Msg("ingestion incomplete")
		if !result.Uploaded {
			response.BadGateway(w, "failed to upload document to storage")
			return
		}
		// Upload succeeded, only the sync trigger failed; report the
		// partial result so the caller knows the object is stored.
	}

	response.OK(w, result)
}
