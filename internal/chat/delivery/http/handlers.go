package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/binguliki/IntelliLearn/internal/chat"
	"github.com/binguliki/IntelliLearn/internal/model"
	"github.com/binguliki/IntelliLearn/internal/speech"
)

// Chat godoc
// @Summary     Run one assistant turn
// @Description Sends a message (or a completed quiz report) to the assistant and returns the assembled response.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Turn data"
// @Success     200 {object} chatResp
// @Failure     400 {object} map[string]string
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sc := model.Scope{UserID: req.scopeKey()}

	var out chat.TurnOutput
	if len(req.QuizReport) > 0 {
		out, err = h.uc.SummarizeQuizReport(ctx, sc, req.QuizReport)
	} else {
		out, err = h.uc.ProcessTurn(ctx, sc, req.toInput())
	}

	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMissingScope.Error()})
			return
		}
		// Upstream failures surface as reply text so the client keeps its
		// conversation view; memory was left untouched by the use case.
		h.l.Errorf(ctx, "chat.delivery.Chat: %v", err)
		c.JSON(http.StatusOK, chatResp{Text: "Error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, newChatResp(out))
}

// Reset godoc
// @Summary     Reset conversation memory
// @Description Discards the session's history and reseeds the system prompt.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body resetReq true "Session to reset"
// @Success     200 {object} map[string]string
// @Failure     400 {object} map[string]string
// @Router      /reset [POST]
func (h *handler) Reset(c *gin.Context) {
	req, err := h.processResetReq(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.uc.Reset(model.Scope{UserID: req.scopeKey()})
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// Transcribe godoc
// @Summary     Transcribe an audio recording
// @Description Accepts a multipart audio upload and returns the recognized text.
// @Tags        Chat
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio_file formData file   true  "Audio recording"
// @Param       session_id formData string false "Session identifier echoed back"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} map[string]string
// @Failure     503 {object} map[string]string
// @Router      /transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	filename, audio, err := h.processAudioUpload(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}
	sessionID := c.PostForm("session_id")

	text, err := h.speech.Transcribe(ctx, filename, audio)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.Transcribe: %v", err)
		if errors.Is(err, speech.ErrNotReady) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":   "Speech-to-text model is still loading. Please try again in a moment.",
				"success": false,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Transcription failed: " + err.Error(),
			"success": false,
		})
		return
	}

	c.JSON(http.StatusOK, transcribeResp{
		Text:      text,
		SessionID: sessionID,
		Success:   text != "",
	})
}

// Notes godoc
// @Summary     List saved notes
// @Description Returns the caller's notes in the order they were appended.
// @Tags        Chat
// @Produce     json
// @Param       user_id query string true "Note owner"
// @Success     200 {object} notesResp
// @Failure     400 {object} map[string]string
// @Failure     500 {object} map[string]string
// @Router      /notes [GET]
func (h *handler) Notes(c *gin.Context) {
	ctx := c.Request.Context()

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errMissingUserID.Error()})
		return
	}

	items, err := h.notes.Fetch(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "chat.delivery.Notes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notes"})
		return
	}

	c.JSON(http.StatusOK, newNotesResp(items))
}
