package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/binguliki/IntelliLearn/internal/model"
	pkgLog "github.com/binguliki/IntelliLearn/pkg/log"
)

// Quiz validation errors.
var (
	ErrQuizNotJSON     = errors.New("quiz content is not valid JSON")
	ErrQuizNoQuestions = errors.New("quiz has no questions")
)

// GenerateQuizTool validates the quiz JSON the model produced and turns it
// into a structured QuizDocument.
type GenerateQuizTool struct {
	l pkgLog.Logger
}

// NewGenerateQuizTool creates the quiz validation tool.
func NewGenerateQuizTool(l pkgLog.Logger) Tool {
	return &GenerateQuizTool{l: l}
}

func (t *GenerateQuizTool) Name() string {
	return "generate_quiz"
}

func (t *GenerateQuizTool) Description() string {
	return "Validate and deliver a multi-question quiz. Pass the complete quiz as a JSON string with quizTitle, totalQuestions and questions."
}

func (t *GenerateQuizTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "The full quiz encoded as a JSON string",
			},
		},
		"required": []string{"content"},
	}
}

func (t *GenerateQuizTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
	content, _ := params["content"].(string)
	if content == "" {
		return nil, fmt.Errorf("content parameter is required")
	}

	doc, err := ValidateQuiz(content)
	if err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "generate_quiz: user=%s title=%q questions=%d", sc.UserID, doc.QuizTitle, len(doc.Questions))
	return doc, nil
}

// requiredQuestionFields must be present on every question entry.
var requiredQuestionFields = []string{"questionNumber", "question", "options", "correctOption"}

// ValidateQuiz parses and validates a quiz JSON string into a QuizDocument.
func ValidateQuiz(content string) (model.QuizDocument, error) {
	if !gjson.Valid(content) {
		return model.QuizDocument{}, ErrQuizNotJSON
	}

	for _, field := range []string{"quizTitle", "totalQuestions", "questions"} {
		if !gjson.Get(content, field).Exists() {
			return model.QuizDocument{}, fmt.Errorf("quiz is missing required field %q", field)
		}
	}

	questions := gjson.Get(content, "questions")
	if !questions.IsArray() || len(questions.Array()) == 0 {
		return model.QuizDocument{}, ErrQuizNoQuestions
	}

	for i, q := range questions.Array() {
		for _, field := range requiredQuestionFields {
			if !q.Get(field).Exists() {
				return model.QuizDocument{}, fmt.Errorf("question %d is missing required field %q", i+1, field)
			}
		}
		if len(q.Get("options").Array()) == 0 {
			return model.QuizDocument{}, fmt.Errorf("question %d has no options", i+1)
		}
	}

	var doc model.QuizDocument
	if err := json.Unmarshal([]byte(content), &doc); err != nil {
		return model.QuizDocument{}, fmt.Errorf("failed to decode quiz: %w", err)
	}
	return doc, nil
}
