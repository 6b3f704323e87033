package chain

import (
	"strings"
	"testing"

	"github.com/Anish6964/RAG-Chatbot/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(GenRequest{
		Question: "Who wrote the handbook?",
		History: []domain.Exchange{
			{Question: "What is the handbook?", Answer: "An onboarding guide."},
		},
		Passages: []Passage{
			{SourceID: "s3://docs/handbook.pdf", Title: "Handbook", Excerpt: "Written by the platform team."},
		},
	})

	assert.Contains(t, prompt, "Written by the platform team.")
	assert.Contains(t, prompt, "User: What is the handbook?")
	assert.Contains(t, prompt, "Assistant: An onboarding guide.")
	assert.Contains(t, prompt, "Question: Who wrote the handbook?")

	// passages come before history, history before the question
	pIdx := strings.Index(prompt, "Written by the platform team.")
	hIdx := strings.Index(prompt, "User: What is the handbook?")
	qIdx := strings.Index(prompt, "Question: Who wrote the handbook?")
	assert.Less(t, pIdx, hIdx)
	assert.Less(t, hIdx, qIdx)
}

func TestBuildPrompt_NoPassagesNoHistory(t *testing.T) {
	prompt := BuildPrompt(GenRequest{Question: "hello"})

	assert.NotContains(t, prompt, "Documents:")
	assert.NotContains(t, prompt, "Conversation so far:")
	assert.Contains(t, prompt, "Question: hello")
}
