package usecase

import (
	"context"
	"sync"

	"github.com/binguliki/IntelliLearn/internal/model"
	"github.com/binguliki/IntelliLearn/pkg/gemini"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockLLM records requests and replies with a fixed response per call.
type mockLLM struct {
	mu        sync.Mutex
	requests  []gemini.GenerateRequest
	responses []*gemini.GenerateResponse
	err       error
}

func (m *mockLLM) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return resp, nil
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{Candidates: []gemini.Candidate{{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}},
	}}}
}

func callResponse(text, name string, args map[string]interface{}) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{Candidates: []gemini.Candidate{{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{
			{Text: text},
			{FunctionCall: &gemini.FunctionCall{Name: name, Args: args}},
		}},
	}}}
}

// fakeTool is a scriptable registry entry.
type fakeTool struct {
	name string
	fn   func(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error)
}

func (f *fakeTool) Name() string                       { return f.name }
func (f *fakeTool) Description() string                { return f.name }
func (f *fakeTool) Parameters() map[string]interface{} { return nil }
func (f *fakeTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
	return f.fn(ctx, sc, params)
}
