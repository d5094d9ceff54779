package http

import (
	"encoding/base64"
	"time"

	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/model"
)

// --- Request DTOs ---

// historyTurn is one client-side chat turn, sender "user" or "bot".
type historyTurn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type chatReq struct {
	Message     string               `json:"message"`
	ImageBase64 string               `json:"image_base64"`
	SessionID   string               `json:"session_id"`
	UserID      string               `json:"user_id"`
	QuizReport  []model.AnswerRecord `json:"quizReport"`
	ChatHistory []historyTurn        `json:"chat_history"`
}

// scopeKey resolves the memory key: user_id wins, session_id is the
// fallback for clients that only track a session.
func (r chatReq) scopeKey() string {
	if r.UserID != "" {
		return r.UserID
	}
	return r.SessionID
}

func (r chatReq) toInput() chat.TurnInput {
	in := chat.TurnInput{
		Message:     r.Message,
		ImageBase64: r.ImageBase64,
	}
	for _, t := range r.ChatHistory {
		if t.Sender == "bot" {
			in.History = append(in.History, model.AssistantMessage(t.Text))
			continue
		}
		in.History = append(in.History, model.UserMessage(t.Text))
	}
	return in
}

type resetReq struct {
	SessionID string `json:"session_id"`
	UserID    string `json:"user_id"`
}

func (r resetReq) scopeKey() string {
	if r.UserID != "" {
		return r.UserID
	}
	return r.SessionID
}

// --- Response DTOs ---

type chatResp struct {
	Text  string              `json:"text"`
	Image string              `json:"image"` // base64-encoded PNG, "" when absent
	Quiz  *model.QuizDocument `json:"quiz"`
}

func newChatResp(out chat.TurnOutput) chatResp {
	resp := chatResp{Text: out.Text, Quiz: out.Quiz}
	if len(out.Image) > 0 {
		resp.Image = base64.StdEncoding.EncodeToString(out.Image)
	}
	return resp
}

type transcribeResp struct {
	Text      string `json:"text"`
	SessionID string `json:"session_id"`
	Success   bool   `json:"success"`
}

type noteItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type notesResp struct {
	Notes []noteItem `json:"notes"`
}

func newNotesResp(items []model.Note) notesResp {
	resp := notesResp{Notes: make([]noteItem, 0, len(items))}
	for _, n := range items {
		resp.Notes = append(resp.Notes, noteItem{
			ID:        n.ID,
			Title:     n.Title,
			Content:   n.Content,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
