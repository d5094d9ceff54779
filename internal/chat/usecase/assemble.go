package usecase

import (
	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/model"
)

// assemble merges tool results into the turn output. Image and quiz slots
// take the first successful payload of their kind; confirmations only feed
// memory, not the response. When every attempted call failed and nothing
// else was produced, the first failure's message replaces the reply text.
func assemble(text string, results []chat.ToolResult) chat.TurnOutput {
	out := chat.TurnOutput{Text: text}

	var firstFailure error
	anySuccess := false
	for _, r := range results {
		if r.Failed() {
			if firstFailure == nil {
				firstFailure = r.Err
			}
			continue
		}
		anySuccess = true

		switch p := r.Payload.(type) {
		case []byte:
			if out.Image == nil {
				out.Image = p
			}
		case model.QuizDocument:
			if out.Quiz == nil {
				q := p
				out.Quiz = &q
			}
		}
	}

	if len(results) > 0 && !anySuccess && firstFailure != nil {
		out.Text = firstFailure.Error()
	}
	return out
}
