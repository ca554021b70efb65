// File: handlers/chat_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ttravels/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssistant struct {
	result     *models.ChatResult
	modified   *models.TripPlan
	reply      string
	lastMsg    string
	lastConvID string
}

func (f *fakeAssistant) Respond(ctx context.Context, message, conversationID string) *models.ChatResult {
	f.lastMsg = message
	f.lastConvID = conversationID
	return f.result
}

func (f *fakeAssistant) ModifyPlan(ctx context.Context, message string, plan *models.TripPlan) (*models.TripPlan, string) {
	return f.modified, f.reply
}

type fakeTranslator struct {
	translated string
	err        error
}

func (f *fakeTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if f.err != nil {
		return text, f.err
	}
	return f.translated, nil
}

func (f *fakeTranslator) Languages() map[string]string {
	return map[string]string{"en": "English", "hi": "Hindi"}
}

func setupChatRouter(t *testing.T, a *fakeAssistant, tr *fakeTranslator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	InitHandlers(a, tr, nil, nil, nil, nil, nil)
	r := gin.New()
	r.POST("/api/chat", ChatHandler)
	r.POST("/api/modify-plan", ModifyPlanHandler)
	r.GET("/api/languages", LanguagesHandler)
	return r
}

func TestChatHandler(t *testing.T) {
	t.Run("returns the assistant reply with a conversation id", func(t *testing.T) {
		fa := &fakeAssistant{result: &models.ChatResult{Reply: "Where would you like to go?"}}
		r := setupChatRouter(t, fa, &fakeTranslator{})

		body, _ := json.Marshal(models.ChatRequest{Message: "plan a trip"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Where would you like to go?", resp["reply"])
		assert.NotEmpty(t, resp["conversation_id"], "a conversation id is generated when missing")
		assert.Equal(t, "plan a trip", fa.lastMsg)
	})

	t.Run("keeps the provided conversation id", func(t *testing.T) {
		fa := &fakeAssistant{result: &models.ChatResult{Reply: "ok"}}
		r := setupChatRouter(t, fa, &fakeTranslator{})

		body, _ := json.Marshal(models.ChatRequest{Message: "hi", ConversationID: "conv-42"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, "conv-42", fa.lastConvID)
	})

	t.Run("translates the reply when a language is set", func(t *testing.T) {
		fa := &fakeAssistant{result: &models.ChatResult{Reply: "Where would you like to go?"}}
		r := setupChatRouter(t, fa, &fakeTranslator{translated: "आप कहाँ जाना चाहेंगे?"})

		body, _ := json.Marshal(models.ChatRequest{Message: "hi", Language: "hi"})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "आप कहाँ जाना चाहेंगे?", resp["reply"])
	})

	t.Run("missing message is a 400", func(t *testing.T) {
		r := setupChatRouter(t, &fakeAssistant{result: &models.ChatResult{}}, &fakeTranslator{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestModifyPlanHandler(t *testing.T) {
	plan := &models.TripPlan{Details: models.TripContext{Destination: "Goa"}}
	fa := &fakeAssistant{modified: plan, reply: "Done!"}
	r := setupChatRouter(t, fa, &fakeTranslator{})

	body, _ := json.Marshal(models.ModifyPlanRequest{Message: "change my hotel", TripPlan: plan})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/modify-plan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.ModifyPlanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Done!", resp.Reply)
	assert.Equal(t, "Goa", resp.TripPlan.Details.Destination)
}

func TestLanguagesHandler(t *testing.T) {
	r := setupChatRouter(t, &fakeAssistant{}, &fakeTranslator{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Languages map[string]string `json:"languages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hindi", resp.Languages["hi"])
}
