package http

import (
	"io"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body. Scope and message presence are
// validated in the handler because the quiz-report branch has no message.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.scopeKey() == "" {
		return req, errMissingScope
	}
	return req, nil
}

func (h *handler) processResetReq(c *gin.Context) (resetReq, error) {
	var req resetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.scopeKey() == "" {
		return req, errMissingScope
	}
	return req, nil
}

// processAudioUpload pulls the uploaded audio out of the multipart form and
// rejects anything that does not declare an audio content type.
func (h *handler) processAudioUpload(c *gin.Context) (string, []byte, error) {
	fh, err := c.FormFile("audio_file")
	if err != nil {
		return "", nil, errMissingAudio
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "audio/") {
		return "", nil, errNotAudio
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	audio, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, audio, nil
}
