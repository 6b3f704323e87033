package domain

// ChatRequest carries a submitted question
type ChatRequest struct {
	Question string `json:"question" validate:"required,max=4000"`
}

// ChatResponse is returned after a completed chat turn
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Turn      Turn   `json:"turn"`
}

// PendingInputRequest stashes the presentation layer's draft input
type PendingInputRequest struct {
	Input string `json:"input" validate:"max=4000"`
}

// IngestResult reports the outcome of a document ingestion.
// SyncJobStarted is only ever true after a successful upload.
type IngestResult struct {
	Uploaded       bool   `json:"uploaded"`
	SyncJobStarted bool   `json:"sync_job_started"`
	ExecutionID    string `json:"execution_id,omitempty"`
	ObjectName     string `json:"object_name,omitempty"`
}
