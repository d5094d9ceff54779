package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/model"
	"github.com/binguliki/IntelliLearn/internal/toolcall"
	"github.com/binguliki/IntelliLearn/pkg/gemini"
)

// ProcessTurn runs one conversation turn end to end. The per-session lock is
// held across snapshot, completion, dispatch and commit, so two turns on the
// same session can never interleave. On upstream failure memory is untouched.
func (uc *implUseCase) ProcessTurn(ctx context.Context, sc model.Scope, input chat.TurnInput) (chat.TurnOutput, error) {
	text := strings.TrimSpace(input.Message)
	if text == "" {
		return chat.TurnOutput{}, chat.ErrEmptyMessage
	}

	unlock := uc.sessions.Lock(sc.UserID)
	defer unlock()

	if len(input.History) > 0 {
		uc.sessions.Replay(sc.UserID, input.History)
	}

	userMsg := model.UserMessage(text)
	if input.ImageBase64 != "" {
		userMsg = model.UserMessageWithImage(text, input.ImageBase64)
	}

	history := uc.sessions.Snapshot(sc.UserID)
	req := buildRequest(history, userMsg, uc.registry.Declarations())

	cctx, cancel := context.WithTimeout(ctx, uc.completionTimeout)
	defer cancel()

	resp, err := uc.llm.GenerateContent(cctx, req)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ProcessTurn.GenerateContent: %v", err)
		return chat.TurnOutput{}, fmt.Errorf("%w: %v", chat.ErrUpstream, err)
	}

	reqs, display := toolcall.Extract(resp.Text(), resp.FunctionCalls())
	results := uc.dispatch(ctx, sc, reqs)
	out := assemble(display, results)

	// The committed user text is the original input, not the multimodal
	// message, so replayed history stays plain text.
	uc.sessions.Commit(sc.UserID, model.UserMessage(text), model.AssistantMessage(display))
	for _, r := range results {
		if r.Failed() {
			continue
		}
		if confirmation, ok := r.Payload.(string); ok && confirmation != "" {
			uc.sessions.Append(sc.UserID, model.AssistantMessage(confirmation))
		}
	}

	return out, nil
}

// Reset discards the scope's memory and reseeds the system prompt.
func (uc *implUseCase) Reset(sc model.Scope) {
	unlock := uc.sessions.Lock(sc.UserID)
	defer unlock()
	uc.sessions.Reset(sc.UserID)
}

// buildRequest maps session history plus the pending user message onto the
// wire format. The seeded system message becomes the system instruction;
// assistant turns are sent under the "model" role.
func buildRequest(history []model.Message, userMsg model.Message, decls []gemini.FunctionDeclaration) gemini.GenerateRequest {
	req := gemini.GenerateRequest{}

	for _, m := range append(history, userMsg) {
		if m.Role == model.RoleSystem {
			req.SystemInstruction = &gemini.Content{Parts: []gemini.Part{{Text: m.Text()}}}
			continue
		}
		req.Contents = append(req.Contents, toContent(m))
	}

	if len(decls) > 0 {
		req.Tools = []gemini.Tool{{FunctionDeclarations: decls}}
	}
	return req
}

func toContent(m model.Message) gemini.Content {
	role := "user"
	if m.Role == model.RoleAssistant {
		role = "model"
	}

	c := gemini.Content{Role: role}
	for _, p := range m.Parts {
		if p.ImageBase64 != "" {
			c.Parts = append(c.Parts, gemini.Part{InlineData: &gemini.Blob{
				MimeType: "image/png",
				Data:     p.ImageBase64,
			}})
			continue
		}
		c.Parts = append(c.Parts, gemini.Part{Text: p.Text})
	}
	return c
}
