package chat

import (
	"github.com/binguliki/IntelliLearn/internal/model"
)

// TurnInput is one user request to the assistant.
type TurnInput struct {
	Message     string
	ImageBase64 string          // optional inline image from the user
	History     []model.Message // optional client-supplied history to replay
}

// TurnOutput is the assembled response record for one turn.
// Image and Quiz are populated only when the corresponding tool succeeded.
type TurnOutput struct {
	Text  string
	Image []byte
	Quiz  *model.QuizDocument
}

// ToolResult is the tagged outcome of one dispatched tool call. Payload is
// typed per tool: []byte for images, model.QuizDocument for quizzes, string
// for confirmations. Exactly one of Payload/Err is meaningful.
type ToolResult struct {
	Name    string
	Payload interface{}
	Err     error
}

// Failed reports whether the call ended in failure.
func (r ToolResult) Failed() bool {
	return r.Err != nil
}
