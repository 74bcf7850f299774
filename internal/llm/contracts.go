package llm

import (
	"context"
	"time"
)

// CompletionRequest is one text-only chat completion call.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Usage is the token accounting the provider reports for one call.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// CompletionResponse carries the text plus everything the billing layer
// needs to meter the call.
type CompletionResponse struct {
	Text      string
	Model     string
	RequestID string
	Usage     Usage
	Elapsed   time.Duration
}

// Completer is the interface the refinement stage depends on.
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResponse, error)
}
