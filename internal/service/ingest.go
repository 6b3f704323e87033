package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Anish6964/RAG-Chatbot/internal/domain"
	"github.com/rs/zerolog/log"
)

// Uploader stores a local file in object storage.
type Uploader interface {
	Upload(ctx context.Context, path, objectName string) error
}

// SyncStarter requests a re-index job on the search service's data
// source and returns its execution ID.
type SyncStarter interface {
	StartSync(ctx context.Context) (string, error)
}

// IngestService uploads a document and triggers a re-index job. The job
// is fire-and-forget: no polling, no retry, no rollback of the upload
// when the sync trigger fails.
type IngestService struct {
	uploader Uploader
	sync     SyncStarter
}

// NewIngestService creates a new ingest service.
func NewIngestService(uploader Uploader, sync SyncStarter) *IngestService {
	return &IngestService{
		uploader: uploader,
		sync:     sync,
	}
}

// Ingest uploads the file at path (under objectName, defaulting to the
// file's base name) and then requests a data source sync job. An upload
// failure short-circuits: the sync job is never attempted.
func (s *IngestService) Ingest(ctx context.Context, path, objectName string) (domain.IngestResult, error) {
	if objectName == "" {
		objectName = filepath.Base(path)
	}
	result := domain.IngestResult{ObjectName: objectName}

	if err := s.uploader.Upload(ctx, path, objectName); err != nil {
		log.Error().Err(err).Str("object", objectName).Msg("document upload failed")
		return result, fmt.Errorf("upload failed: %w", err)
	}
	result.Uploaded = true

	executionID, err := s.sync.StartSync(ctx)
	if err != nil {
		// The uploaded object remains in storage; only the re-index is missing.
		log.Error().Err(err).Str("object", objectName).Msg("sync job trigger failed")
		return result, fmt.Errorf("sync trigger failed: %w", err)
	}
	result.SyncJobStarted = true
	result.ExecutionID = executionID

	log.Info().
		Str("object", objectName).
		Str("execution_id", executionID).
		Msg("document ingested, sync job started")

	return result, nil
}
