package chain

import (
	"fmt"
	"strings"
)

// BuildPrompt creates an answer-generation prompt from the question,
// the retrieved passages and the conversational history.
func BuildPrompt(req GenRequest) string {
	var b strings.Builder

	b.WriteString(`You are a helpful assistant answering questions using the provided documents.

Rules:
1. Answer using ONLY the information in the documents below
2. If the documents do not contain the answer, say you don't know
3. Be concise and answer in plain prose
4. Do not mention the documents or their numbering in your answer
`)

	if len(req.Passages) > 0 {
		b.WriteString("\nDocuments:\n")
		for i, p := range req.Passages {
			fmt.Fprintf(&b, "[%d] %s\n%s\n\n", i+1, p.Title, p.Excerpt)
		}
	}

	if len(req.History) > 0 {
		b.WriteString("\nConversation so far:\n")
		for _, ex := range req.History {
			fmt.Fprintf(&b, "User: %s\nAssistant: %s\n", ex.Question, ex.Answer)
		}
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n\nAnswer:", req.Question)

	return b.String()
}
