package v1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-assist/campus-assist/app/core"
	v1 "github.com/campus-assist/campus-assist/app/logic/v1"
	"github.com/campus-assist/campus-assist/pkg/types"
)

var ctx = context.Background()

func setupCore(nlpBaseURL string) *core.Core {
	cfg := core.CoreConfig{}
	cfg.NLP.BaseURL = nlpBaseURL
	cfg.Log.Level = "error"
	return core.MustSetupCore(cfg)
}

func newNLPStub(t *testing.T, answer string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		json.NewEncoder(w).Encode(types.ChatResponse{
			Answer:  answer,
			Lang:    "en",
			Sources: []types.Source{{Title: "Admissions", URL: "https://example.edu/admissions", Type: types.SOURCE_TYPE_OFFICIAL}},
			Explain: types.ExplainData{
				DetectedLang:     "en",
				Intent:           "greeting",
				IntentConfidence: 0.92,
				RetrievalMethod:  types.RETRIEVAL_METHOD_TFIDF,
				Decision:         types.EXPLAIN_DECISION_ANSWER,
			},
		})
	}))
}

func Test_HandleChat(t *testing.T) {
	stub := newNLPStub(t, "Hi!")
	defer stub.Close()

	appCore := setupCore(stub.URL)
	logic := v1.NewChatLogic(ctx, appCore)

	resp, degraded := logic.HandleChat(types.ChatRequest{Message: "Hello", ConversationID: "c1", Language: "en"})
	require.False(t, degraded)
	assert.Equal(t, "Hi!", resp.Answer)
	assert.Equal(t, types.EXPLAIN_DECISION_ANSWER, resp.Explain.Decision)

	msgs := appCore.MessageStore().GetMessages(ctx, "c1")
	require.Len(t, msgs, 2)
	assert.Equal(t, types.USER_ROLE_USER, msgs[0].Role)
	assert.Equal(t, "Hello", msgs[0].Content)
	assert.Equal(t, types.USER_ROLE_ASSISTANT, msgs[1].Role)
	assert.Equal(t, "Hi!", msgs[1].Content)
	require.NotNil(t, msgs[1].Explain)
	assert.Equal(t, "greeting", msgs[1].Explain.Intent)
	require.Len(t, msgs[1].Sources, 1)
	assert.Equal(t, types.SOURCE_TYPE_OFFICIAL, msgs[1].Sources[0].Type)
}

func Test_HandleChatAutoVivify(t *testing.T) {
	stub := newNLPStub(t, "Welcome!")
	defer stub.Close()

	appCore := setupCore(stub.URL)
	logic := v1.NewChatLogic(ctx, appCore)

	// 从未创建过的会话 id：隐式建会话并照常记录两条消息
	_, degraded := logic.HandleChat(types.ChatRequest{Message: "Hello", ConversationID: "never-seen", Language: "fr"})
	require.False(t, degraded)

	list := appCore.Store().List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, "never-seen", list[0].ID)
	assert.Equal(t, 2, list[0].MessageCount)
}

func Test_HandleChatFallbackEnglish(t *testing.T) {
	// 无人监听的端口：传输失败走兜底
	appCore := setupCore("http://127.0.0.1:1")
	logic := v1.NewChatLogic(ctx, appCore)

	resp, degraded := logic.HandleChat(types.ChatRequest{Message: "Hello", ConversationID: "c1", Language: "en"})
	require.True(t, degraded)
	assert.Equal(t, "NLP service is unavailable right now. Please try again later.", resp.Answer)
	assert.Equal(t, "en", resp.Lang)
	assert.Empty(t, resp.Sources)
	assert.Equal(t, types.EXPLAIN_DECISION_FALLBACK, resp.Explain.Decision)
	assert.Equal(t, "error", resp.Explain.Intent)
	assert.Equal(t, types.RETRIEVAL_METHOD_TFIDF, resp.Explain.RetrievalMethod)

	// 失败时不落助手消息，transcript 只有用户这一轮
	msgs := appCore.MessageStore().GetMessages(ctx, "c1")
	require.Len(t, msgs, 1)
	assert.Equal(t, types.USER_ROLE_USER, msgs[0].Role)
}

func Test_HandleChatFallbackArabic(t *testing.T) {
	appCore := setupCore("http://127.0.0.1:1")
	logic := v1.NewChatLogic(ctx, appCore)

	resp, degraded := logic.HandleChat(types.ChatRequest{Message: "مرحبا", ConversationID: "c2", Language: "ar"})
	require.True(t, degraded)
	assert.Equal(t, "الخدمة الذكية غير متاحة حالياً. حاول لاحقاً.", resp.Answer)
	assert.Equal(t, "ar", resp.Lang)
	assert.Equal(t, "ar", resp.Explain.DetectedLang)
}

func Test_HandleChatFallbackUnknownLanguage(t *testing.T) {
	appCore := setupCore("http://127.0.0.1:1")
	logic := v1.NewChatLogic(ctx, appCore)

	resp, degraded := logic.HandleChat(types.ChatRequest{Message: "Bonjour", ConversationID: "c3", Language: "fr"})
	require.True(t, degraded)
	// fr 与未知语言都归一为 en
	assert.Equal(t, "en", resp.Lang)
	assert.Equal(t, "NLP service is unavailable right now. Please try again later.", resp.Answer)
}
