package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/model"
)

const reportFeedbackRequest = "Please provide feedback on the student's performance and suggest areas for improvement."

// SummarizeQuizReport renders the graded answers into the deterministic
// report, asks the model for feedback on it, and commits the pair to memory.
// Nothing is committed when the completion fails.
func (uc *implUseCase) SummarizeQuizReport(ctx context.Context, sc model.Scope, report []model.AnswerRecord) (chat.TurnOutput, error) {
	summary := FormatQuizReport(report)

	unlock := uc.sessions.Lock(sc.UserID)
	defer unlock()

	history := uc.sessions.Snapshot(sc.UserID)
	req := buildRequest(history, model.UserMessage(summary), nil)

	cctx, cancel := context.WithTimeout(ctx, uc.completionTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(cctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.SummarizeQuizReport.GenerateContent: %v", err)
		return chat.TurnOutput{}, fmt.Errorf("%w: %v", chat.ErrUpstream, err)
	}

	feedback := resp.Text()
	uc.sessions.Commit(sc.UserID, model.UserMessage(summary), model.AssistantMessage(feedback))

	return chat.TurnOutput{Text: feedback}, nil
}

// FormatQuizReport renders graded answers into the fixed report layout:
// score line, per-question detail, and the feedback request. An empty report
// scores 0/0 (0.0%) rather than dividing by zero. Explanations appear only
// on incorrect answers, with a placeholder when the quiz carried none.
func FormatQuizReport(report []model.AnswerRecord) string {
	correct := 0
	for _, r := range report {
		if r.IsCorrect {
			correct++
		}
	}
	total := len(report)
	pct := 0.0
	if total > 0 {
		pct = float64(correct) / float64(total) * 100
	}

	var b strings.Builder
	b.WriteString("Quiz Results Summary:\n")
	fmt.Fprintf(&b, "Score: %d/%d (%.1f%%)\n\n", correct, total, pct)
	b.WriteString("Detailed Results:\n")

	for _, r := range report {
		mark := "✓ Correct"
		if !r.IsCorrect {
			mark = "✗ Incorrect"
		}
		fmt.Fprintf(&b, "Q%d: %s\n", r.QuestionNumber, mark)
		fmt.Fprintf(&b, "  User Answer: %s\n", r.UserAnswer)
		fmt.Fprintf(&b, "  Correct Answer: %s\n", r.CorrectAnswer)
		if !r.IsCorrect {
			expl := r.Explanation
			if expl == "" {
				expl = "No explanation provided"
			}
			fmt.Fprintf(&b, "  Explanation: %s\n", expl)
		}
		b.WriteString("\n")
	}

	b.WriteString(reportFeedbackRequest)
	return b.String()
}
