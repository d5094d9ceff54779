package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/binguliki/IntelliLearn/pkg/response"
)

func TestOK(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	data := map[string]string{"text": "hello"}
	response.OK(c, data)

	if w.Code != http.StatusOK {
		t.Errorf("expected %d but got %d", http.StatusOK, w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}

	if resp.ErrorCode != 0 {
		t.Errorf("expected ErrorCode 0, got %d", resp.ErrorCode)
	}
	if resp.Message != response.MessageSuccess {
		t.Errorf("expected message %q, got %q", response.MessageSuccess, resp.Message)
	}
	dMap, ok := resp.Data.(map[string]interface{})
	if !ok || dMap["text"] != "hello" {
		t.Errorf("unexpected data payload: %v", resp.Data)
	}
}
