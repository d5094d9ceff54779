package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/model"
	"github.com/binguliki/IntelliLearn/internal/session"
	"github.com/binguliki/IntelliLearn/internal/tools"
	"github.com/binguliki/IntelliLearn/pkg/gemini"
)

const testPrompt = "You are a helpful tutor."

func newTestUseCase(llm *mockLLM, toolset ...tools.Tool) (*implUseCase, *session.Store) {
	registry := tools.NewRegistry()
	for _, tl := range toolset {
		registry.Register(tl)
	}
	sessions := session.New(testPrompt, time.Minute, 10)
	uc := New(&mockLogger{}, llm, registry, sessions).(*implUseCase)
	return uc, sessions
}

func TestProcessTurnEmptyMessage(t *testing.T) {
	uc, _ := newTestUseCase(&mockLLM{})

	_, err := uc.ProcessTurn(context.Background(), model.Scope{UserID: "u1"}, chat.TurnInput{Message: "   "})
	if !errors.Is(err, chat.ErrEmptyMessage) {
		t.Fatalf("got %v, want ErrEmptyMessage", err)
	}
}

func TestProcessTurnPlainText(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{
		textResponse("Photosynthesis converts light into energy."),
	}}
	uc, sessions := newTestUseCase(llm)
	sc := model.Scope{UserID: "u1"}

	out, err := uc.ProcessTurn(context.Background(), sc, chat.TurnInput{Message: "What is photosynthesis?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "Photosynthesis converts light into energy." {
		t.Errorf("got text %q", out.Text)
	}
	if out.Image != nil || out.Quiz != nil {
		t.Errorf("plain turn must not carry image or quiz")
	}

	msgs := sessions.Snapshot(sc.UserID)
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want system+user+assistant", len(msgs))
	}
	if msgs[1].Text() != "What is photosynthesis?" || msgs[1].Role != model.RoleUser {
		t.Errorf("user commit wrong: %+v", msgs[1])
	}
	if msgs[2].Role != model.RoleAssistant {
		t.Errorf("assistant commit wrong: %+v", msgs[2])
	}
}

func TestProcessTurnSendsHistoryAndTools(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{
		textResponse("first"), textResponse("second"),
	}}
	tool := &fakeTool{name: "generate_quiz", fn: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
		return nil, nil
	}}
	uc, _ := newTestUseCase(llm, tool)
	sc := model.Scope{UserID: "u1"}

	if _, err := uc.ProcessTurn(context.Background(), sc, chat.TurnInput{Message: "one"}); err != nil {
		t.Fatalf("turn one: %v", err)
	}
	if _, err := uc.ProcessTurn(context.Background(), sc, chat.TurnInput{Message: "two"}); err != nil {
		t.Fatalf("turn two: %v", err)
	}

	second := llm.requests[1]
	if second.SystemInstruction == nil || second.SystemInstruction.Parts[0].Text != testPrompt {
		t.Errorf("system instruction not carried: %+v", second.SystemInstruction)
	}
	// prior user turn, prior assistant turn, current user turn
	if len(second.Contents) != 3 {
		t.Fatalf("got %d contents, want 3", len(second.Contents))
	}
	if second.Contents[1].Role != "model" {
		t.Errorf("assistant history must use the model role, got %q", second.Contents[1].Role)
	}
	if len(second.Tools) != 1 || second.Tools[0].FunctionDeclarations[0].Name != "generate_quiz" {
		t.Errorf("declarations missing: %+v", second.Tools)
	}
}

func TestProcessTurnNativeCallBuildsImage(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{
		callResponse("Here is your diagram.", "generate_image", map[string]interface{}{"description": "a plant cell"}),
	}}
	img := []byte{0x89, 0x50, 0x4e, 0x47}
	tool := &fakeTool{name: "generate_image", fn: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
		if params["description"] != "a plant cell" {
			t.Errorf("args not forwarded: %v", params)
		}
		return img, nil
	}}
	uc, _ := newTestUseCase(llm, tool)

	out, err := uc.ProcessTurn(context.Background(), model.Scope{UserID: "u1"}, chat.TurnInput{Message: "draw a plant cell"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "Here is your diagram." {
		t.Errorf("got text %q", out.Text)
	}
	if !bytes.Equal(out.Image, img) {
		t.Errorf("image not assembled")
	}
}

func TestProcessTurnEmbeddedCallBuildsQuiz(t *testing.T) {
	reply := "Sure!\n" + `{"tool": "generate_quiz", "args": {"content": "{\"quizTitle\":\"Biology\"}"}}`
	llm := &mockLLM{responses: []*gemini.GenerateResponse{textResponse(reply)}}
	quiz := model.QuizDocument{QuizTitle: "Biology", TotalQuestions: 1}
	tool := &fakeTool{name: "generate_quiz", fn: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
		return quiz, nil
	}}
	uc, sessions := newTestUseCase(llm, tool)
	sc := model.Scope{UserID: "u1"}

	out, err := uc.ProcessTurn(context.Background(), sc, chat.TurnInput{Message: "quiz me"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "Sure!" {
		t.Errorf("marker not stripped, got %q", out.Text)
	}
	if out.Quiz == nil || out.Quiz.QuizTitle != "Biology" {
		t.Errorf("quiz not assembled: %+v", out.Quiz)
	}

	// the committed assistant text is the cleaned display text
	msgs := sessions.Snapshot(sc.UserID)
	if got := msgs[len(msgs)-1].Text(); got != "Sure!" {
		t.Errorf("committed %q", got)
	}
}

func TestProcessTurnAllToolsFailed(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{
		callResponse("", "generate_image", map[string]interface{}{"description": "x"}),
	}}
	tool := &fakeTool{name: "generate_image", fn: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
		return nil, errors.New("image backend down")
	}}
	uc, _ := newTestUseCase(llm, tool)

	out, err := uc.ProcessTurn(context.Background(), model.Scope{UserID: "u1"}, chat.TurnInput{Message: "draw"})
	if err != nil {
		t.Fatalf("tool failure must not fail the turn: %v", err)
	}
	if !strings.Contains(out.Text, "image backend down") {
		t.Errorf("failure message not surfaced, got %q", out.Text)
	}
	if out.Image != nil {
		t.Errorf("failed tool must not populate the image")
	}
}

func TestProcessTurnToolPanicIsContained(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{
		callResponse("text", "generate_quiz", nil),
	}}
	tool := &fakeTool{name: "generate_quiz", fn: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
		panic("boom")
	}}
	uc, _ := newTestUseCase(llm, tool)

	out, err := uc.ProcessTurn(context.Background(), model.Scope{UserID: "u1"}, chat.TurnInput{Message: "quiz"})
	if err != nil {
		t.Fatalf("panic must not fail the turn: %v", err)
	}
	if !strings.Contains(out.Text, "panicked") {
		t.Errorf("got %q", out.Text)
	}
}

func TestProcessTurnUnknownToolIgnored(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{
		callResponse("fine", "does_not_exist", nil),
	}}
	uc, _ := newTestUseCase(llm)

	out, err := uc.ProcessTurn(context.Background(), model.Scope{UserID: "u1"}, chat.TurnInput{Message: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Text != "fine" {
		t.Errorf("got %q", out.Text)
	}
}

func TestProcessTurnConfirmationContinuity(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{
		callResponse("Saved!", "save_notes", map[string]interface{}{"title": "t", "content": "c"}),
	}}
	tool := &fakeTool{name: "save_notes", fn: func(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
		return `Note "t" saved.`, nil
	}}
	uc, sessions := newTestUseCase(llm, tool)
	sc := model.Scope{UserID: "u1"}

	if _, err := uc.ProcessTurn(context.Background(), sc, chat.TurnInput{Message: "save this"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	msgs := sessions.Snapshot(sc.UserID)
	if len(msgs) != 4 {
		t.Fatalf("got %d messages, want system+user+assistant+confirmation", len(msgs))
	}
	if got := msgs[3].Text(); got != `Note "t" saved.` {
		t.Errorf("continuity message %q", got)
	}
}

func TestProcessTurnUpstreamFailureLeavesMemoryIntact(t *testing.T) {
	llm := &mockLLM{err: errors.New("503")}
	uc, sessions := newTestUseCase(llm)
	sc := model.Scope{UserID: "u1"}

	_, err := uc.ProcessTurn(context.Background(), sc, chat.TurnInput{Message: "hello"})
	if !errors.Is(err, chat.ErrUpstream) {
		t.Fatalf("got %v, want ErrUpstream", err)
	}

	if msgs := sessions.Snapshot(sc.UserID); len(msgs) != 1 {
		t.Errorf("failed turn must not commit, got %d messages", len(msgs))
	}
}

func TestProcessTurnReplaysHistory(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{textResponse("ok")}}
	uc, _ := newTestUseCase(llm)
	sc := model.Scope{UserID: "u1"}

	history := []model.Message{
		model.UserMessage("earlier question"),
		model.AssistantMessage("earlier answer"),
	}
	if _, err := uc.ProcessTurn(context.Background(), sc, chat.TurnInput{Message: "follow up", History: history}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := llm.requests[0]
	if len(req.Contents) != 3 {
		t.Fatalf("replayed history not sent, got %d contents", len(req.Contents))
	}
	if req.Contents[0].Parts[0].Text != "earlier question" {
		t.Errorf("got %q", req.Contents[0].Parts[0].Text)
	}
}

func TestProcessTurnWithImageInput(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{textResponse("that is a leaf")}}
	uc, sessions := newTestUseCase(llm)
	sc := model.Scope{UserID: "u1"}

	if _, err := uc.ProcessTurn(context.Background(), sc, chat.TurnInput{
		Message:     "what is this?",
		ImageBase64: "aGVsbG8=",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := llm.requests[0].Contents[0].Parts
	if len(parts) != 2 || parts[1].InlineData == nil || parts[1].InlineData.Data != "aGVsbG8=" {
		t.Fatalf("inline image not sent: %+v", parts)
	}

	// committed text stays plain
	msgs := sessions.Snapshot(sc.UserID)
	if len(msgs[1].Parts) != 1 {
		t.Errorf("committed user message should drop the image part")
	}
}

func TestReset(t *testing.T) {
	llm := &mockLLM{responses: []*gemini.GenerateResponse{textResponse("ok")}}
	uc, sessions := newTestUseCase(llm)
	sc := model.Scope{UserID: "u1"}

	if _, err := uc.ProcessTurn(context.Background(), sc, chat.TurnInput{Message: "hi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	uc.Reset(sc)

	msgs := sessions.Snapshot(sc.UserID)
	if len(msgs) != 1 || msgs[0].Role != model.RoleSystem {
		t.Errorf("reset must leave only the seeded system message, got %d", len(msgs))
	}
}
