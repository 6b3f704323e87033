package service

import (
	"context"

	"github.com/Anish6964/RAG-Chatbot/internal/chain"
	"github.com/Anish6964/RAG-Chatbot/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockRunner mocks the chain.Runner interface
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, question string, history []domain.Exchange) (*chain.Result, error) {
	args := m.Called(ctx, question, history)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chain.Result), args.Error(1)
}

// MockUploader mocks the Uploader interface
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, path, objectName string) error {
	args := m.Called(ctx, path, objectName)
	return args.Error(0)
}

// MockSyncStarter mocks the SyncStarter interface
type MockSyncStarter struct {
	mock.Mock
}

func (m *MockSyncStarter) StartSync(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
