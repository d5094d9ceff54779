// Package tools holds the capabilities the completion model may invoke.
package tools

import (
	"context"

	"github.com/binguliki/IntelliLearn/internal/model"
	"github.com/binguliki/IntelliLearn/pkg/gemini"
)

// Tool represents a capability that can be called by the LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for the LLM).
	Description() string

	// Parameters returns the JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool for the given caller with the given parameters.
	// The returned payload is typed per tool: []byte for images,
	// model.QuizDocument for quizzes, string for confirmations.
	Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error)
}

// Registry manages available tools in registration order.
type Registry struct {
	order []string
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry.
func (r *Registry) Register(tool Tool) {
	if _, ok := r.tools[tool.Name()]; !ok {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Declarations converts the registered tools to function-calling format,
// in registration order.
func (r *Registry) Declarations() []gemini.FunctionDeclaration {
	decls := make([]gemini.FunctionDeclaration, 0, len(r.order))
	for _, name := range r.order {
		tool := r.tools[name]
		decls = append(decls, gemini.FunctionDeclaration{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return decls
}
