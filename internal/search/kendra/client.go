// Package kendra wraps the Amazon Kendra client: passage retrieval for
// the chain and data source sync jobs for document ingestion.
package kendra

import (
	"context"
	"fmt"

	"github.com/Anish6964/RAG-Chatbot/internal/chain"
	"github.com/aws/aws-sdk-go-v2/aws"
	awskendra "github.com/aws/aws-sdk-go-v2/service/kendra"
)

// Client talks to one Kendra index and one data source connector.
type Client struct {
	kendra       *awskendra.Client
	indexID      string
	dataSourceID string
}

// NewClient creates a Kendra client for the given index and data source.
func NewClient(cfg aws.Config, indexID, dataSourceID string) *Client {
	return &Client{
		kendra:       awskendra.NewFromConfig(cfg),
		indexID:      indexID,
		dataSourceID: dataSourceID,
	}
}

// Retrieve fetches up to topK passages relevant to the query.
func (c *Client) Retrieve(ctx context.Context, query string, topK int) ([]chain.Passage, error) {
	out, err := c.kendra.Retrieve(ctx, &awskendra.RetrieveInput{
		IndexId:   aws.String(c.indexID),
		QueryText: aws.String(query),
		PageSize:  aws.Int32(int32(topK)),
	})
	if err != nil {
		return nil, fmt.Errorf("kendra retrieve failed: %w", err)
	}

	passages := make([]chain.Passage, 0, len(out.ResultItems))
	for _, item := range out.ResultItems {
		sourceID := aws.ToString(item.DocumentURI)
		if sourceID == "" {
			sourceID = aws.ToString(item.DocumentId)
		}
		passages = append(passages, chain.Passage{
			SourceID: sourceID,
			Title:    aws.ToString(item.DocumentTitle),
			Excerpt:  aws.ToString(item.Content),
		})
	}

	return passages, nil
}

// StartSync requests a synchronization job on the data source and
// returns its execution ID. The job is not awaited.
func (c *Client) StartSync(ctx context.Context) (string, error) {
	out, err := c.kendra.StartDataSourceSyncJob(ctx, &awskendra.StartDataSourceSyncJobInput{
		Id:      aws.String(c.dataSourceID),
		IndexId: aws.String(c.indexID),
	})
	if err != nil {
		return "", fmt.Errorf("failed to start data source sync job: %w", err)
	}

	return aws.ToString(out.ExecutionId), nil
}
