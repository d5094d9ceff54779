package toolcall_test

import (
	"testing"

	"github.com/binguliki/IntelliLearn/internal/toolcall"
	"github.com/binguliki/IntelliLearn/pkg/gemini"
)

func TestExtract_StructuredMode(t *testing.T) {
	native := []gemini.FunctionCall{
		{Name: "generate_image", Args: map[string]interface{}{"description": "a cell"}},
		{Name: "save_notes", Args: map[string]interface{}{"title": "t", "content": "c"}},
	}

	reqs, text := toolcall.Extract("Here is your answer.", native)

	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].Name != "generate_image" || reqs[1].Name != "save_notes" {
		t.Errorf("request order not preserved: %v", reqs)
	}
	if text != "Here is your answer." {
		t.Errorf("structured mode must not touch the text, got %q", text)
	}
}

func TestParseEmbedded(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantOutcome toolcall.Outcome
		wantTool    string
		wantCleaned string
	}{
		{
			name:        "no marker",
			text:        "Photosynthesis converts light into chemical energy.",
			wantOutcome: toolcall.NoCall,
			wantCleaned: "Photosynthesis converts light into chemical energy.",
		},
		{
			name:        "json envelope",
			text:        `Let me draw that. {"tool": "generate_image", "args": {"description": "the krebs cycle"}} Hope it helps!`,
			wantOutcome: toolcall.Call,
			wantTool:    "generate_image",
			wantCleaned: "Let me draw that.  Hope it helps!",
		},
		{
			name:        "sentinel line",
			text:        "Saving that for you.\nACTION: save_notes {\"title\": \"Mitosis\", \"content\": \"...\"}\nDone.",
			wantOutcome: toolcall.Call,
			wantTool:    "save_notes",
			wantCleaned: "Saving that for you.\nDone.",
		},
		{
			name:        "malformed json fails open",
			text:        `Sure. {"tool": "generate_quiz", "args": {` + "\nnot json",
			wantOutcome: toolcall.Malformed,
			wantCleaned: `Sure. {"tool": "generate_quiz", "args": {` + "\nnot json",
		},
		{
			name:        "only first marker honored",
			text:        `{"tool": "generate_image", "args": {"description": "first"}} {"tool": "generate_quiz", "args": {"content": "second"}}`,
			wantOutcome: toolcall.Call,
			wantTool:    "generate_image",
			wantCleaned: `{"tool": "generate_quiz", "args": {"content": "second"}}`,
		},
		{
			name:        "leftmost of mixed markers",
			text:        "ACTION: save_notes {\"title\": \"a\", \"content\": \"b\"}\nand later {\"tool\": \"generate_image\", \"args\": {\"description\": \"x\"}}",
			wantOutcome: toolcall.Call,
			wantTool:    "save_notes",
			wantCleaned: `and later {"tool": "generate_image", "args": {"description": "x"}}`,
		},
		{
			name:        "plain json object is not an envelope",
			text:        `The config looks like {"debug": true} in practice.`,
			wantOutcome: toolcall.NoCall,
			wantCleaned: `The config looks like {"debug": true} in practice.`,
		},
		{
			name:        "sentinel without payload",
			text:        "ACTION:\nnothing else",
			wantOutcome: toolcall.Malformed,
			wantCleaned: "ACTION:\nnothing else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, cleaned := toolcall.ParseEmbedded(tt.text)

			if res.Outcome != tt.wantOutcome {
				t.Fatalf("outcome = %v, want %v", res.Outcome, tt.wantOutcome)
			}
			if tt.wantOutcome == toolcall.Call && res.Request.Name != tt.wantTool {
				t.Errorf("tool = %q, want %q", res.Request.Name, tt.wantTool)
			}
			if cleaned != tt.wantCleaned {
				t.Errorf("cleaned = %q, want %q", cleaned, tt.wantCleaned)
			}
		})
	}
}

func TestExtract_EmbeddedArgs(t *testing.T) {
	reqs, _ := toolcall.Extract(`{"tool": "generate_image", "args": {"description": "a neuron"}}`, nil)
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	if reqs[0].Args["description"] != "a neuron" {
		t.Errorf("args not carried through: %v", reqs[0].Args)
	}
}
