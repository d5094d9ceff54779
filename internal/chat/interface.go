package chat

import (
	"context"

	"github.com/binguliki/IntelliLearn/internal/model"
	"github.com/binguliki/IntelliLearn/pkg/gemini"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// ProcessTurn runs one full conversation turn: completion, tool
	// dispatch, response assembly and memory commit.
	ProcessTurn(ctx context.Context, sc model.Scope, input TurnInput) (TurnOutput, error)

	// SummarizeQuizReport turns graded answers into a deterministic report,
	// asks the model for feedback on it, and commits both to memory.
	SummarizeQuizReport(ctx context.Context, sc model.Scope, report []model.AnswerRecord) (TurnOutput, error)

	// Reset discards the scope's conversation memory and reseeds the
	// system prompt.
	Reset(sc model.Scope)
}

// CompletionClient is the slice of the model API the use case depends on.
type CompletionClient interface {
	GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
}
