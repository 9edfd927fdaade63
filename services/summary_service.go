package services

import (
	"context"

	"article-hub/models"
	"article-hub/openrouter"
)

// PlaceholderModel tags summaries produced by the truncation path.
const PlaceholderModel = "Dummy Model"

const summaryLimit = 200

// summaryPrompt is the instruction used by the AI-backed strategy. It
// embeds the article verbatim at the end.
const summaryPrompt = "Summarize the following article in a SEO friendly way. " +
	"Don't share any extra text like 'here it is'. " +
	"Just share the summary text without any chars. Here is my content: "

type SummaryService interface {
	Summarize(ctx context.Context, article string) (*openrouter.Completion, error)
}

type summaryService struct {
	ai    openrouter.Completer
	useAI bool
}

// NewSummaryService builds the summarizer. With useAI false the service
// truncates instead of calling the completion backend, which keeps the
// endpoint usable without an API key.
func NewSummaryService(ai openrouter.Completer, useAI bool) SummaryService {
	return &summaryService{ai: ai, useAI: useAI}
}

func (s *summaryService) Summarize(ctx context.Context, article string) (*openrouter.Completion, error) {
	if article == "" {
		return nil, models.ErrInvalidArticle
	}

	if s.useAI {
		return s.ai.Complete(ctx, summaryPrompt+article)
	}

	return &openrouter.Completion{
		Reply:     truncate(article, summaryLimit) + "...",
		ModelUsed: PlaceholderModel,
	}, nil
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
