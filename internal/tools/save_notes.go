package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/binguliki/IntelliLearn/internal/model"
	"github.com/binguliki/IntelliLearn/internal/notes"
	pkgLog "github.com/binguliki/IntelliLearn/pkg/log"
)

// SaveNotesTool persists a study note for the calling user.
type SaveNotesTool struct {
	l    pkgLog.Logger
	repo notes.Repository
}

// NewSaveNotesTool creates the note persistence tool.
func NewSaveNotesTool(l pkgLog.Logger, repo notes.Repository) Tool {
	return &SaveNotesTool{l: l, repo: repo}
}

func (t *SaveNotesTool) Name() string {
	return "save_notes"
}

func (t *SaveNotesTool) Description() string {
	return "Save a study note for the student. Use when the student asks to keep or remember something."
}

func (t *SaveNotesTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"title": map[string]interface{}{
				"type":        "string",
				"description": "Short note title",
			},
			"content": map[string]interface{}{
				"type":        "string",
				"description": "The note body in Markdown",
			},
		},
		"required": []string{"title", "content"},
	}
}

func (t *SaveNotesTool) Execute(ctx context.Context, sc model.Scope, params map[string]interface{}) (interface{}, error) {
	title, _ := params["title"].(string)
	content, _ := params["content"].(string)

	if strings.TrimSpace(title) == "" {
		return nil, notes.ErrMissingTitle
	}
	if strings.TrimSpace(content) == "" {
		return nil, notes.ErrMissingContent
	}

	saved, err := t.repo.Append(ctx, sc.UserID, model.Note{Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("failed to save note: %w", err)
	}

	t.l.Infof(ctx, "save_notes: user=%s note_id=%d title=%q", sc.UserID, saved.ID, saved.Title)
	return fmt.Sprintf("Note %q saved.", saved.Title), nil
}
