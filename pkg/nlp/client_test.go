package nlp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-assist/campus-assist/pkg/testutils"
	"github.com/campus-assist/campus-assist/pkg/types"
)

func TestChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/chat", r.URL.Path)

		var req types.ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Hello", req.Message)
		assert.Equal(t, "c1", req.ConversationID)

		json.NewEncoder(w).Encode(types.ChatResponse{
			Answer: "Hi!",
			Lang:   "en",
			Explain: types.ExplainData{
				Intent:          "greeting",
				RetrievalMethod: types.RETRIEVAL_METHOD_TFIDF,
				Decision:        types.EXPLAIN_DECISION_ANSWER,
			},
		})
	}))
	defer srv.Close()

	client := New(srv.URL+"/", 0)
	assert.Equal(t, srv.URL, client.BaseURL())

	resp, err := client.Chat(context.Background(), types.ChatRequest{Message: "Hello", ConversationID: "c1", Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, "Hi!", resp.Answer)
	assert.Equal(t, "greeting", resp.Explain.Intent)
}

func TestChatNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.Chat(context.Background(), types.ChatRequest{Message: "Hello", ConversationID: "c1"})
	assert.Error(t, err)
}

func TestChatBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)
	_, err := client.Chat(context.Background(), types.ChatRequest{Message: "Hello", ConversationID: "c1"})
	assert.Error(t, err)
}

func TestChatUnreachable(t *testing.T) {
	client := New("http://127.0.0.1:1", time.Second)
	_, err := client.Chat(context.Background(), types.ChatRequest{Message: "Hello", ConversationID: "c1"})
	assert.Error(t, err)
}

// 真实 NLP 服务联调，默认跳过
func TestChatLiveService(t *testing.T) {
	testutils.LoadEnv()
	baseURL := testutils.GetEnvOrDefault("NLP_SERVICE_URL", "")
	if baseURL == "" {
		t.Skip("NLP_SERVICE_URL not set")
	}

	client := New(baseURL, time.Second*30)
	resp, err := client.Chat(context.Background(), types.ChatRequest{
		Message:        "What are the library opening hours?",
		ConversationID: "live-test",
		Language:       "en",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Answer)
	t.Log(resp.Answer)
}
