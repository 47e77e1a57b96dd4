package v1

import (
	"context"
	"log/slog"
	"time"

	"github.com/campus-assist/campus-assist/app/core"
	"github.com/campus-assist/campus-assist/pkg/i18n"
	"github.com/campus-assist/campus-assist/pkg/types"
	"github.com/campus-assist/campus-assist/pkg/utils"
)

type ChatLogic struct {
	ctx  context.Context
	core *core.Core
}

func NewChatLogic(ctx context.Context, core *core.Core) *ChatLogic {
	return &ChatLogic{
		ctx:  ctx,
		core: core,
	}
}

// HandleChat 一轮对话：确保会话存在 → 落用户消息 → 请求 NLP → 落助手消息。
// degraded 为 true 时 resp 是本地合成的兜底载荷，此时不落助手消息，
// 调用方应以 502 返回。入参校验由 handler 层完成。
func (l *ChatLogic) HandleChat(req types.ChatRequest) (resp *types.ChatResponse, degraded bool) {
	l.core.Store().Ensure(l.ctx, req.ConversationID)

	l.core.MessageStore().AppendMessage(l.ctx, types.Message{
		ID:             utils.GenSpecIDStr(),
		ConversationID: req.ConversationID,
		Role:           types.USER_ROLE_USER,
		Content:        req.Message,
		Timestamp:      time.Now(),
	})

	// 语言值原样转发，归一只影响本地兜底
	timer := l.core.Metrics().NLPRequestTimer()
	chat, err := l.core.NLP().Chat(l.ctx, req)
	timer.ObserveDuration()
	if err != nil {
		l.core.Metrics().NLPErrorInc("transport")
		slog.Error("Failed to relay chat message to nlp service",
			slog.String("conversation", req.ConversationID),
			slog.String("error", err.Error()))
		return l.fallbackResponse(req.Language), true
	}

	l.core.MessageStore().AppendMessage(l.ctx, types.Message{
		ID:             utils.GenSpecIDStr(),
		ConversationID: req.ConversationID,
		Role:           types.USER_ROLE_ASSISTANT,
		Content:        chat.Answer,
		Timestamp:      time.Now(),
		Sources:        chat.Sources,
		Explain:        &chat.Explain,
	})

	return chat, false
}

// fallbackResponse 合成本地兜底应答，结构与 NLP 正常应答一致，保证前端总能渲染
func (l *ChatLogic) fallbackResponse(language string) *types.ChatResponse {
	lang := types.ResolveLanguage(language)
	return &types.ChatResponse{
		Answer:  l.core.Localizer().Get(lang, i18n.MESSAGE_CHAT_FALLBACK),
		Lang:    lang,
		Sources: []types.Source{},
		Explain: types.ExplainData{
			DetectedLang:     lang,
			RuleHit:          false,
			Intent:           "error",
			IntentConfidence: 0,
			RetrievalMethod:  types.RETRIEVAL_METHOD_TFIDF,
			TopMatches:       []types.TopMatch{},
			Decision:         types.EXPLAIN_DECISION_FALLBACK,
		},
	}
}
